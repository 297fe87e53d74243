package service

import (
	"context"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

// LoadResult holds the outcome of loading a board: the merged tree plus any
// saved keys that no longer match a row in the source.
type LoadResult struct {
	Board       *domain.Board
	DroppedKeys []snapshot.Key
	// UsedFallback is true when the primary store was unreachable and the
	// snapshot came from the local fallback (or started empty).
	UsedFallback bool
}

// CategoryEdit carries the editable category fields. Nil fields are left
// untouched.
type CategoryEdit struct {
	Title       *string
	Description *string
	Status      *domain.CategoryStatus
	ActualHours *int
}

// BoardService owns the load → merge → mutate → write-through cycle. Every
// mutation persists the full snapshot before returning.
type BoardService interface {
	Load(ctx context.Context) (*LoadResult, error)
	Board() *domain.Board
	SetAspectComplete(ctx context.Context, area, category, aspect string, v bool) error
	SetAspectNote(ctx context.Context, area, category, aspect, note string) error
	EditCategory(ctx context.Context, area, category string, edit CategoryEdit) error
	CreateCategory(ctx context.Context, area, name string, aspects []string) (*domain.Category, error)
}
