// Package guard gates list operations on the acting identity. Every
// function takes the caller explicitly; a nil identity is an anonymous
// visitor.
package guard

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

// RequireAccount fails with model.ErrAuthRequired for anonymous callers.
func RequireAccount(id *model.Identity) error {
	if id == nil {
		return model.ErrAuthRequired
	}
	return nil
}

// OwnedList loads a list and checks that the caller owns it.
func OwnedList(ctx context.Context, db *sql.DB, id *model.Identity, listID int64) (*model.List, error) {
	if err := RequireAccount(id); err != nil {
		return nil, err
	}

	list, err := store.GetList(ctx, db, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("list %d: %w", listID, model.ErrNotFound)
	}
	if !list.OwnedBy(id) {
		return nil, fmt.Errorf("list %d: %w", listID, model.ErrForbidden)
	}
	return list, nil
}

// Lists returns the caller's saved lists.
func Lists(ctx context.Context, db *sql.DB, id *model.Identity) ([]model.List, error) {
	if err := RequireAccount(id); err != nil {
		return nil, err
	}
	return store.ListListsByOwner(ctx, db, id.AccountID)
}

// AddScratch validates and appends an item to the scratch list of scope.
// Anyone may add to the scratch list.
func AddScratch(ctx context.Context, db *sql.DB, scope, text, dueDate string) (*model.ScratchItem, error) {
	in, err := model.ValidateItem(text, dueDate)
	if err != nil {
		return nil, err
	}
	return store.AddScratchItem(ctx, db, scope, in.Text, in.DueDate)
}

// AddItem validates and appends an item to a list the caller owns.
func AddItem(ctx context.Context, db *sql.DB, id *model.Identity, listID int64, text, dueDate string) (*model.ListItem, error) {
	in, err := model.ValidateItem(text, dueDate)
	if err != nil {
		return nil, err
	}
	if _, err := OwnedList(ctx, db, id, listID); err != nil {
		return nil, err
	}
	return store.AddListItem(ctx, db, listID, in.Text, in.DueDate)
}

// DeleteItems removes items by text from a list the caller owns.
func DeleteItems(ctx context.Context, db *sql.DB, id *model.Identity, listID int64, texts []string) (int, error) {
	if _, err := OwnedList(ctx, db, id, listID); err != nil {
		return 0, err
	}
	return store.DeleteListItemsByText(ctx, db, listID, texts)
}

// DeleteList deletes a list the caller owns, together with its items.
func DeleteList(ctx context.Context, db *sql.DB, id *model.Identity, listID int64) error {
	if _, err := OwnedList(ctx, db, id, listID); err != nil {
		return err
	}
	return store.DeleteList(ctx, db, listID)
}

// DeleteSelected handles a bulk delete of checked items. Anonymous callers
// delete from the scratch list of scope. Authenticated callers delete from
// their saved lists: from listID when it is non-zero, otherwise from the
// first matching item across all of their own lists. They never reach the
// scratch list or another account's items.
func DeleteSelected(ctx context.Context, db *sql.DB, id *model.Identity, scope string, listID int64, texts []string) (int, error) {
	if id == nil {
		return store.DeleteScratchItemsByText(ctx, db, scope, texts)
	}
	if listID != 0 {
		return DeleteItems(ctx, db, id, listID, texts)
	}
	return store.DeleteOwnedItemsByText(ctx, db, id.AccountID, texts)
}

// Promote saves the scratch list of scope as a new list owned by the caller,
// labelled with now.
func Promote(ctx context.Context, db *sql.DB, id *model.Identity, scope string, now time.Time) (*model.List, error) {
	if err := RequireAccount(id); err != nil {
		return nil, err
	}
	return store.PromoteScratch(ctx, db, scope, id.AccountID, model.ListDate(now))
}
