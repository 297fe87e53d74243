package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"OPBOARD_SOURCE", "OPBOARD_BACKEND", "OPBOARD_SNAPSHOT", "OPBOARD_DB", "OPBOARD_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Base(cfg.Snapshot), "snapshot.json")
	assert.Equal(t, filepath.Base(cfg.DBPath), "opboard.db")
}

func TestLoad_Explicit(t *testing.T) {
	t.Setenv("OPBOARD_SOURCE", "/data/workplan.xlsx")
	t.Setenv("OPBOARD_BACKEND", "sqlite")
	t.Setenv("OPBOARD_SNAPSHOT", "/data/snap.json")
	t.Setenv("OPBOARD_DB", "/data/board.db")
	t.Setenv("OPBOARD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/workplan.xlsx", cfg.Source)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/data/snap.json", cfg.Snapshot)
	assert.Equal(t, "/data/board.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("OPBOARD_BACKEND", "postgres")

	_, err := Load()
	assert.Error(t, err)
}
