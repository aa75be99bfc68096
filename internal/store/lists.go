package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/seznam/internal/model"
)

// CreateList creates a list owned by ownerID holding items, in one transaction.
func CreateList(ctx context.Context, db *sql.DB, ownerID int64, date string, items []model.ItemInput) (*model.List, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	listID, err := insertList(ctx, tx, ownerID, date, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing list: %w", err)
	}

	return GetList(ctx, db, listID)
}

// insertList writes a list row and its items inside tx.
func insertList(ctx context.Context, tx *sql.Tx, ownerID int64, date string, items []model.ItemInput) (int64, error) {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO lists (owner_id, date) VALUES (?, ?)`,
		ownerID, date,
	)
	if isForeignKeyViolation(err) {
		return 0, fmt.Errorf("creating list for account %d: %w", ownerID, model.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("creating list: %w", err)
	}

	listID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting list id: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO list_items (list_id, text, due_date) VALUES (?, ?, ?)`,
			listID, item.Text, nullString(item.DueDate),
		); err != nil {
			return 0, fmt.Errorf("adding %q to list: %w", item.Text, err)
		}
	}

	return listID, nil
}

// GetList returns a list with its items.
func GetList(ctx context.Context, db *sql.DB, id int64) (*model.List, error) {
	l := &model.List{}
	err := db.QueryRowContext(ctx,
		`SELECT id, owner_id, date, created_at FROM lists WHERE id = ?`, id,
	).Scan(&l.ID, &l.OwnerID, &l.Date, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, list_id, text, due_date FROM list_items WHERE list_id = ? ORDER BY id`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting list items: %w", err)
	}
	defer rows.Close()

	l.Items, err = scanListItems(rows)
	if err != nil {
		return nil, err
	}
	if l.Items == nil {
		l.Items = []model.ListItem{}
	}
	return l, nil
}

// ListListsByOwner returns all lists of an account, oldest first, with items.
func ListListsByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.List, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_id, date, created_at FROM lists WHERE owner_id = ? ORDER BY id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	var lists []model.List
	index := make(map[int64]int)
	for rows.Next() {
		var l model.List
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Date, &l.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning list: %w", err)
		}
		l.Items = []model.ListItem{}
		index[l.ID] = len(lists)
		lists = append(lists, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	if len(lists) == 0 {
		return lists, nil
	}

	itemRows, err := db.QueryContext(ctx,
		`SELECT li.id, li.list_id, li.text, li.due_date
		 FROM list_items li
		 JOIN lists l ON l.id = li.list_id
		 WHERE l.owner_id = ?
		 ORDER BY li.id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing list items: %w", err)
	}
	defer itemRows.Close()

	items, err := scanListItems(itemRows)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		i := index[item.ListID]
		lists[i].Items = append(lists[i].Items, item)
	}
	return lists, nil
}

// AddListItem appends an item to a list. It does not check ownership.
func AddListItem(ctx context.Context, db *sql.DB, listID int64, text, dueDate string) (*model.ListItem, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO list_items (list_id, text, due_date) VALUES (?, ?, ?)`,
		listID, text, nullString(dueDate),
	)
	if isForeignKeyViolation(err) {
		return nil, fmt.Errorf("adding item to list %d: %w", listID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("adding list item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting list item id: %w", err)
	}

	return &model.ListItem{ID: id, ListID: listID, Text: text, DueDate: dueDate}, nil
}

// DeleteListItemsByText deletes, for every entry of texts, the oldest item of
// the list with exactly that text. Returns the number of deleted items.
func DeleteListItemsByText(ctx context.Context, db *sql.DB, listID int64, texts []string) (int, error) {
	n, err := deleteFirstMatches(ctx, db,
		`DELETE FROM list_items WHERE id = (
		     SELECT id FROM list_items WHERE list_id = ? AND text = ? ORDER BY id LIMIT 1
		 )`,
		texts, listID,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting list items: %w", err)
	}
	return n, nil
}

// DeleteOwnedItemsByText is DeleteListItemsByText across every list owned
// by ownerID.
func DeleteOwnedItemsByText(ctx context.Context, db *sql.DB, ownerID int64, texts []string) (int, error) {
	n, err := deleteFirstMatches(ctx, db,
		`DELETE FROM list_items WHERE id = (
		     SELECT li.id FROM list_items li
		     JOIN lists l ON l.id = li.list_id
		     WHERE l.owner_id = ? AND li.text = ?
		     ORDER BY li.id LIMIT 1
		 )`,
		texts, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting owned list items: %w", err)
	}
	return n, nil
}

// DeleteList deletes a list and its items.
func DeleteList(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM list_items WHERE list_id = ?`, id); err != nil {
		return fmt.Errorf("deleting list items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting list: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("deleting list %d: %w", id, model.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing list delete: %w", err)
	}
	return nil
}

func scanListItems(rows *sql.Rows) ([]model.ListItem, error) {
	var items []model.ListItem
	for rows.Next() {
		var item model.ListItem
		var due sql.NullString
		if err := rows.Scan(&item.ID, &item.ListID, &item.Text, &due); err != nil {
			return nil, fmt.Errorf("scanning list item: %w", err)
		}
		item.DueDate = due.String
		items = append(items, item)
	}
	return items, rows.Err()
}
