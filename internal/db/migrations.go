package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: time-window queries over history scan (item_id, timestamp),
	// so give both event tables a covering index.
	`CREATE INDEX IF NOT EXISTS idx_usage_events_item_used_at
	     ON usage_events(item_id, used_at)`,
	`CREATE INDEX IF NOT EXISTS idx_waste_events_item_wasted_at
	     ON waste_events(item_id, wasted_at)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
