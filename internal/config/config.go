// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Backend selects the primary snapshot store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the runtime settings. Unset paths default under ~/.opboard.
type Config struct {
	// Source is the workplan spreadsheet (.xlsx or .csv).
	Source string `env:"OPBOARD_SOURCE"`

	// Backend is the primary snapshot store: file or sqlite.
	Backend string `env:"OPBOARD_BACKEND" envDefault:"file"`

	// Snapshot is the JSON snapshot path. With the sqlite backend it serves
	// as the local fallback store.
	Snapshot string `env:"OPBOARD_SNAPSHOT"`

	// DBPath is the SQLite database path.
	DBPath string `env:"OPBOARD_DB"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"OPBOARD_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and fills path defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("invalid OPBOARD_BACKEND %q (expected file or sqlite)", cfg.Backend)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolving home directory: %w", err)
	}
	base := filepath.Join(home, ".opboard")
	if cfg.Snapshot == "" {
		cfg.Snapshot = filepath.Join(base, "snapshot.json")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(base, "opboard.db")
	}

	return cfg, nil
}

// SlogLevel maps the configured level string onto a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
