package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/seznam/internal/model"
)

// The scratch list is partitioned by scope. With the default global scope
// every caller passes "" and shares one list.

// AddScratchItem appends an item to the scratch list of scope.
func AddScratchItem(ctx context.Context, db *sql.DB, scope, text, dueDate string) (*model.ScratchItem, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO scratch_items (scope, text, due_date) VALUES (?, ?, ?)`,
		scope, text, nullString(dueDate),
	)
	if err != nil {
		return nil, fmt.Errorf("adding scratch item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting scratch item id: %w", err)
	}

	return &model.ScratchItem{ID: id, Text: text, DueDate: dueDate}, nil
}

// ListScratchItems returns the scratch items of scope in insertion order.
func ListScratchItems(ctx context.Context, db *sql.DB, scope string) ([]model.ScratchItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, text, due_date FROM scratch_items WHERE scope = ? ORDER BY id`, scope,
	)
	if err != nil {
		return nil, fmt.Errorf("listing scratch items: %w", err)
	}
	defer rows.Close()

	return scanScratchItems(rows)
}

// DeleteScratchItemsByText deletes, for every entry of texts, the oldest
// scratch item of scope with exactly that text. Items are matched by
// content, not ID: a text given once removes one item even when several
// share it. Returns the number of deleted items.
func DeleteScratchItemsByText(ctx context.Context, db *sql.DB, scope string, texts []string) (int, error) {
	n, err := deleteFirstMatches(ctx, db,
		`DELETE FROM scratch_items WHERE id = (
		     SELECT id FROM scratch_items WHERE scope = ? AND text = ? ORDER BY id LIMIT 1
		 )`,
		texts, scope,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting scratch items: %w", err)
	}
	return n, nil
}

// ClearScratch removes every scratch item of scope.
func ClearScratch(ctx context.Context, db *sql.DB, scope string) (int, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM scratch_items WHERE scope = ?`, scope)
	if err != nil {
		return 0, fmt.Errorf("clearing scratch list: %w", err)
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}

func scanScratchItems(rows *sql.Rows) ([]model.ScratchItem, error) {
	var items []model.ScratchItem
	for rows.Next() {
		var item model.ScratchItem
		var due sql.NullString
		if err := rows.Scan(&item.ID, &item.Text, &due); err != nil {
			return nil, fmt.Errorf("scanning scratch item: %w", err)
		}
		item.DueDate = due.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// deleteFirstMatches runs query once per text in a single transaction. The
// query must delete at most one row and take the text as its last argument,
// after args.
func deleteFirstMatches(ctx context.Context, db *sql.DB, query string, texts []string, args ...any) (int, error) {
	if len(texts) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	deleted := 0
	for _, text := range texts {
		queryArgs := append(append([]any{}, args...), text)
		result, err := tx.ExecContext(ctx, query, queryArgs...)
		if err != nil {
			return 0, fmt.Errorf("deleting %q: %w", text, err)
		}
		n, _ := result.RowsAffected()
		deleted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing delete: %w", err)
	}
	return deleted, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
