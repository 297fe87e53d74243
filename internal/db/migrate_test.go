package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Migrations applied: the snapshot tables exist.
	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'snapshot_entries'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "snapshot_entries", name)

	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'snapshot_meta'`,
	).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestOpenDB_OnDisk(t *testing.T) {
	path := t.TempDir() + "/nested/opboard.db"
	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO snapshot_entries (area, category, aspect, updated_at) VALUES ('HR', 'Recruiting', '', '2026-01-01T00:00:00Z')`,
	)
	assert.NoError(t, err)
}
