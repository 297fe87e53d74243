package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rkarlsen/opboard/internal/cli"
	"github.com/rkarlsen/opboard/internal/config"
	"github.com/rkarlsen/opboard/internal/db"
	"github.com/rkarlsen/opboard/internal/repository"
	"github.com/rkarlsen/opboard/internal/service"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		return fmt.Errorf("OPBOARD_SOURCE is not set (path to the workplan .xlsx or .csv)")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)),
	}

	var primary snapshot.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		primary = repository.NewSQLiteSnapshotStore(database)
		// Local JSON snapshot doubles as the fallback store.
		opts = append(opts, service.WithFallbackStore(snapshot.NewFileStore(cfg.Snapshot)))
	default:
		primary = snapshot.NewFileStore(cfg.Snapshot)
	}

	app := &cli.App{
		Board: service.NewBoardService(cfg.Source, primary, opts...),
	}

	return cli.NewRootCmd(app).Execute()
}
