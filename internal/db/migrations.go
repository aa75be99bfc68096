package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: lookups by owner (my lists) and by list (list items).
	`CREATE INDEX IF NOT EXISTS idx_lists_owner ON lists(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_list_items_list ON list_items(list_id)`,

	// Migration 2: scratch items are always read per scope.
	`CREATE INDEX IF NOT EXISTS idx_scratch_items_scope ON scratch_items(scope)`,
}

// Migrate ensures the schema and runs the migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
