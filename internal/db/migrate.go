package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements are idempotent;
// ALTER TABLE additions tolerate re-runs via the duplicate-column check
// in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshot_entries (
		area         TEXT NOT NULL,
		category     TEXT NOT NULL,
		aspect       TEXT NOT NULL DEFAULT '',
		complete     INTEGER NOT NULL DEFAULT 0,
		note         TEXT NOT NULL DEFAULT '',
		title        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT ''
		             CHECK(status IN ('', 'not_started','in_progress','complete')),
		actual_hours INTEGER,
		updated_at   TEXT NOT NULL,
		PRIMARY KEY (area, category, aspect)
	)`,

	`CREATE TABLE IF NOT EXISTS snapshot_meta (
		id       INTEGER PRIMARY KEY CHECK(id = 1),
		snap_id  TEXT NOT NULL DEFAULT '',
		saved_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_snapshot_entries_area ON snapshot_entries(area)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
