// Package service coordinates parsing, merging and write-through persistence
// for the board. The rendering layer (CLI and TUI) talks only to BoardService.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/model"
	"github.com/rkarlsen/opboard/internal/parser"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

// ParseFunc parses a tabular source into a board. Defaults to
// parser.ParseSource; tests substitute fixtures.
type ParseFunc func(path string) (*domain.Board, error)

type boardService struct {
	sourcePath string
	parse      ParseFunc
	primary    snapshot.Store
	fallback   snapshot.Store
	logger     *slog.Logger
	observer   UseCaseObserver

	model *model.Model

	// consecutive primary save failures; the second one is surfaced.
	saveFailures int
}

// Option customizes a board service.
type Option func(*boardService)

// WithFallbackStore sets the local store used when the primary is unreachable.
func WithFallbackStore(store snapshot.Store) Option {
	return func(s *boardService) { s.fallback = store }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *boardService) { s.logger = logger }
}

// WithObserver sets the use-case observer.
func WithObserver(obs UseCaseObserver) Option {
	return func(s *boardService) { s.observer = obs }
}

// WithParser overrides the source parser.
func WithParser(parse ParseFunc) Option {
	return func(s *boardService) { s.parse = parse }
}

// NewBoardService creates a board service over a source path and a primary
// snapshot store.
func NewBoardService(sourcePath string, primary snapshot.Store, opts ...Option) BoardService {
	s := &boardService{
		sourcePath: sourcePath,
		parse:      parser.ParseSource,
		primary:    primary,
		logger:     slog.Default(),
		observer:   NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *boardService) Load(ctx context.Context) (result *LoadResult, err error) {
	defer s.observe(ctx, "load", time.Now(), map[string]any{"source": s.sourcePath}, &err)

	board, err := s.parse(s.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}

	state, usedFallback, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	s.model = model.New(board)
	dropped := s.model.ApplyState(state)
	for _, key := range dropped {
		s.logger.Warn("saved entry no longer matches a source row, dropping",
			"key", key.String())
	}
	s.model.ComputeRollups()
	s.saveFailures = 0

	return &LoadResult{Board: board, DroppedKeys: dropped, UsedFallback: usedFallback}, nil
}

// loadState reads the snapshot from the primary store, degrading to the
// fallback store (or an empty state) when the primary is unreachable.
func (s *boardService) loadState(ctx context.Context) (snapshot.State, bool, error) {
	state, err := s.primary.Load(ctx)
	if err == nil {
		return state, false, nil
	}
	if !errors.Is(err, snapshot.ErrStorageUnavailable) {
		return snapshot.State{}, false, fmt.Errorf("loading snapshot: %w", err)
	}

	s.logger.Warn("primary snapshot store unavailable", "error", err)
	if s.fallback == nil {
		s.logger.Warn("no fallback store configured, starting with empty state")
		return snapshot.NewState(), true, nil
	}

	state, fbErr := s.fallback.Load(ctx)
	if fbErr != nil {
		return snapshot.State{}, false, fmt.Errorf("loading fallback snapshot: %w", fbErr)
	}
	s.logger.Info("loaded snapshot from fallback store")
	return state, true, nil
}

func (s *boardService) Board() *domain.Board {
	if s.model == nil {
		return nil
	}
	return s.model.Board()
}

func (s *boardService) SetAspectComplete(ctx context.Context, area, category, aspect string, v bool) (err error) {
	defer s.observe(ctx, "set_aspect_complete", time.Now(),
		map[string]any{"area": area, "category": category, "aspect": aspect, "complete": v}, &err)

	if err = s.requireLoaded(); err != nil {
		return err
	}
	if err = s.model.SetAspectComplete(area, category, aspect, v); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *boardService) SetAspectNote(ctx context.Context, area, category, aspect, note string) (err error) {
	defer s.observe(ctx, "set_aspect_note", time.Now(),
		map[string]any{"area": area, "category": category, "aspect": aspect}, &err)

	if err = s.requireLoaded(); err != nil {
		return err
	}
	if err = s.model.SetAspectNote(area, category, aspect, note); err != nil {
		return err
	}
	return s.persist(ctx)
}

func (s *boardService) EditCategory(ctx context.Context, area, category string, edit CategoryEdit) (err error) {
	defer s.observe(ctx, "edit_category", time.Now(),
		map[string]any{"area": area, "category": category}, &err)

	if err = s.requireLoaded(); err != nil {
		return err
	}
	if edit.Title != nil {
		if err = s.model.SetCategoryTitle(area, category, *edit.Title); err != nil {
			return err
		}
	}
	if edit.Description != nil {
		if err = s.model.SetCategoryDescription(area, category, *edit.Description); err != nil {
			return err
		}
	}
	if edit.Status != nil {
		if err = s.model.SetCategoryStatus(area, category, *edit.Status); err != nil {
			return err
		}
	}
	if edit.ActualHours != nil {
		if err = s.model.SetCategoryHours(area, category, *edit.ActualHours); err != nil {
			return err
		}
	}
	return s.persist(ctx)
}

func (s *boardService) CreateCategory(ctx context.Context, area, name string, aspects []string) (cat *domain.Category, err error) {
	defer s.observe(ctx, "create_category", time.Now(),
		map[string]any{"area": area, "category": name}, &err)

	if err = s.requireLoaded(); err != nil {
		return nil, err
	}
	cat, err = s.model.CreateCategory(area, name, aspects)
	if err != nil {
		return nil, err
	}
	if err = s.persist(ctx); err != nil {
		return nil, err
	}
	return cat, nil
}

// persist recomputes rollups and writes the full snapshot through. The first
// consecutive primary failure degrades to the fallback store; the second is
// returned to the caller.
func (s *boardService) persist(ctx context.Context) error {
	s.model.ComputeRollups()
	state := s.model.Snapshot()

	err := s.primary.Save(ctx, state)
	if err == nil {
		s.saveFailures = 0
		return nil
	}

	s.saveFailures++
	if s.saveFailures >= 2 {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	s.logger.Warn("primary snapshot save failed", "error", err)
	if s.fallback == nil {
		return nil
	}
	if fbErr := s.fallback.Save(ctx, state); fbErr != nil {
		return fmt.Errorf("saving fallback snapshot: %w", fbErr)
	}
	s.logger.Info("snapshot saved to fallback store")
	return nil
}

func (s *boardService) requireLoaded() error {
	if s.model == nil {
		return errors.New("board not loaded")
	}
	return nil
}

func (s *boardService) observe(ctx context.Context, name string, started time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
		StartedAt: started,
	})
}
