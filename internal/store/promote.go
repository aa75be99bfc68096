package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/seznam/internal/model"
)

// PromoteScratch moves every scratch item of scope into a new list owned by
// ownerID and labelled date. The snapshot, the list, the copied items and the
// removal of the snapshotted scratch rows commit as one transaction: on any
// error the scratch list is left as it was and no list exists.
//
// An empty scratch list yields model.ErrEmptyScratch.
func PromoteScratch(ctx context.Context, db *sql.DB, scope string, ownerID int64, date string) (*model.List, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, text, due_date FROM scratch_items WHERE scope = ? ORDER BY id`, scope,
	)
	if err != nil {
		return nil, fmt.Errorf("reading scratch list: %w", err)
	}
	snapshot, err := scanScratchItems(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if len(snapshot) == 0 {
		return nil, model.ErrEmptyScratch
	}

	inputs := make([]model.ItemInput, len(snapshot))
	for i, item := range snapshot {
		inputs[i] = model.ItemInput{Text: item.Text, DueDate: item.DueDate}
	}

	listID, err := insertList(ctx, tx, ownerID, date, inputs)
	if err != nil {
		return nil, fmt.Errorf("promoting scratch list: %w", err)
	}

	for _, item := range snapshot {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scratch_items WHERE id = ?`, item.ID); err != nil {
			return nil, fmt.Errorf("removing promoted scratch item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing promotion: %w", err)
	}

	return GetList(ctx, db, listID)
}
