// Package repository implements the relational snapshot backend: one row per
// (area, category, aspect) key, with category-level fields stored on the row
// whose aspect column is empty.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rkarlsen/opboard/internal/db"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

// SQLiteSnapshotStore implements snapshot.Store on a SQLite database.
// Saves replace the full snapshot inside a single transaction, so a crash
// mid-save leaves the prior snapshot visible.
type SQLiteSnapshotStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

var _ snapshot.Store = (*SQLiteSnapshotStore)(nil)

// NewSQLiteSnapshotStore creates a store over an opened database handle.
func NewSQLiteSnapshotStore(database *sql.DB) *SQLiteSnapshotStore {
	return &SQLiteSnapshotStore{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
	}
}

func (s *SQLiteSnapshotStore) Load(ctx context.Context) (snapshot.State, error) {
	state := snapshot.NewState()

	var snapID, savedAtStr string
	err := s.db.QueryRowContext(ctx, `SELECT snap_id, saved_at FROM snapshot_meta WHERE id = 1`).
		Scan(&snapID, &savedAtStr)
	switch {
	case err == sql.ErrNoRows:
		// First run: no prior snapshot.
		return state, nil
	case err != nil:
		return snapshot.State{}, fmt.Errorf("%w: loading snapshot metadata: %v", snapshot.ErrStorageUnavailable, err)
	}
	state.ID = snapID
	if savedAt, parseErr := time.Parse(time.RFC3339, savedAtStr); parseErr == nil {
		state.SavedAt = savedAt
	}

	rows, err := s.db.QueryContext(ctx, `SELECT area, category, aspect, complete, note, title, description, status, actual_hours
		FROM snapshot_entries ORDER BY area, category, aspect`)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("%w: loading snapshot entries: %v", snapshot.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var area, category, aspect, note, title, description, status string
		var complete int
		var actualHours sql.NullInt64
		if err := rows.Scan(&area, &category, &aspect, &complete, &note, &title, &description, &status, &actualHours); err != nil {
			return snapshot.State{}, fmt.Errorf("%w: scanning snapshot entry: %v", snapshot.ErrCorruptSnapshot, err)
		}

		cs, ok := state.Category(area, category)
		if !ok {
			cs = snapshot.CategoryState{Aspects: make(map[string]snapshot.AspectState)}
		}
		if cs.Aspects == nil {
			cs.Aspects = make(map[string]snapshot.AspectState)
		}

		if aspect == "" {
			cs.Title = title
			cs.Description = description
			cs.Status = status
			if actualHours.Valid {
				h := int(actualHours.Int64)
				cs.ActualHours = &h
			}
		} else {
			cs.Aspects[aspect] = snapshot.AspectState{Complete: intToBool(complete), Note: note}
		}
		state.SetCategory(area, category, cs)
	}
	if err := rows.Err(); err != nil {
		return snapshot.State{}, fmt.Errorf("%w: iterating snapshot entries: %v", snapshot.ErrStorageUnavailable, err)
	}

	return state, nil
}

func (s *SQLiteSnapshotStore) Save(ctx context.Context, state snapshot.State) error {
	now := time.Now().UTC().Format(time.RFC3339)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_entries`); err != nil {
			return fmt.Errorf("clearing snapshot entries: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_meta`); err != nil {
			return fmt.Errorf("clearing snapshot metadata: %w", err)
		}

		savedAt := state.SavedAt
		if savedAt.IsZero() {
			savedAt = time.Now().UTC()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_meta (id, snap_id, saved_at) VALUES (1, ?, ?)`,
			state.ID, savedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting snapshot metadata: %w", err)
		}

		const insertEntry = `INSERT INTO snapshot_entries
			(area, category, aspect, complete, note, title, description, status, actual_hours, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		for area, as := range state.Areas {
			for category, cs := range as.Categories {
				if _, err := tx.ExecContext(ctx, insertEntry,
					area, category, "", 0, "",
					cs.Title, cs.Description, cs.Status,
					nullableIntToValue(cs.ActualHours), now,
				); err != nil {
					return fmt.Errorf("inserting category row %s/%s: %w", area, category, err)
				}
				for aspect, aspState := range cs.Aspects {
					if _, err := tx.ExecContext(ctx, insertEntry,
						area, category, aspect,
						boolToInt(aspState.Complete), aspState.Note,
						"", "", "", nil, now,
					); err != nil {
						return fmt.Errorf("inserting aspect row %s/%s/%s: %w", area, category, aspect, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: saving snapshot: %v", snapshot.ErrStorageUnavailable, err)
	}
	return nil
}
