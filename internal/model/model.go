// Package model holds the canonical in-memory board and exposes the mutation
// operations the rendering layer calls. Mutations never touch storage; the
// service layer writes through after each successful mutation.
package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

var (
	// ErrNotFound indicates the (area, category, aspect) key path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates a (area, category) pair already exists.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Model wraps a board and tracks which categories have pending rollup
// recomputation. There are no ambient globals: callers pass the model by
// reference through the call chain.
type Model struct {
	board *domain.Board
	dirty map[string]bool // "area/category" keys mutated since last rollup
}

// New creates a model around a parsed (and optionally merged) board.
func New(board *domain.Board) *Model {
	return &Model{board: board, dirty: make(map[string]bool)}
}

// Board returns the canonical board for read access.
func (m *Model) Board() *domain.Board {
	return m.board
}

// DirtyCategories returns the "area/category" keys mutated since the last
// ComputeRollups call.
func (m *Model) DirtyCategories() []string {
	keys := make([]string, 0, len(m.dirty))
	for k := range m.dirty {
		keys = append(keys, k)
	}
	return keys
}

// ComputeRollups recomputes all derived percentages bottom-up and clears the
// dirty set. Idempotent between mutations.
func (m *Model) ComputeRollups() {
	m.board.ComputeRollups()
	m.dirty = make(map[string]bool)
}

// SetAspectComplete flips the completion flag for an aspect and marks the
// category dirty.
func (m *Model) SetAspectComplete(area, category, aspect string, v bool) error {
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	asp := cat.Aspect(aspect)
	if asp == nil {
		return fmt.Errorf("aspect %s/%s/%s: %w", area, category, aspect, ErrNotFound)
	}
	asp.Complete = v
	m.markDirty(area, category)
	return nil
}

// SetAspectNote sets the free-text note on an aspect.
func (m *Model) SetAspectNote(area, category, aspect, note string) error {
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	asp := cat.Aspect(aspect)
	if asp == nil {
		return fmt.Errorf("aspect %s/%s/%s: %w", area, category, aspect, ErrNotFound)
	}
	asp.Note = note
	return nil
}

// SetCategoryStatus sets the category status enum.
func (m *Model) SetCategoryStatus(area, category string, status domain.CategoryStatus) error {
	if !domain.ValidCategoryStatuses[string(status)] {
		return fmt.Errorf("invalid status %q (expected not_started|in_progress|complete)", status)
	}
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	cat.Status = status
	return nil
}

// SetCategoryTitle sets the editable category title.
func (m *Model) SetCategoryTitle(area, category, title string) error {
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	cat.Title = title
	return nil
}

// SetCategoryDescription sets the editable category description.
func (m *Model) SetCategoryDescription(area, category, description string) error {
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	cat.Description = description
	return nil
}

// SetCategoryHours sets the actual-hours field.
func (m *Model) SetCategoryHours(area, category string, hours int) error {
	if hours < 0 {
		return fmt.Errorf("actual hours must be non-negative, got %d", hours)
	}
	cat, err := m.category(area, category)
	if err != nil {
		return err
	}
	cat.ActualHours = &hours
	return nil
}

// CreateCategory appends a new category under an existing or newly created
// area. The aspect set is fixed at creation; names are validated against the
// canonical set and stored in canonical column order.
func (m *Model) CreateCategory(area, name string, aspects []string) (*domain.Category, error) {
	requested := make(map[string]bool, len(aspects))
	for _, a := range aspects {
		if !domain.ValidAspectNames[a] {
			return nil, fmt.Errorf("invalid aspect name %q", a)
		}
		requested[a] = true
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("category %s/%s: at least one aspect is required", area, name)
	}

	ar := m.board.Area(area)
	if ar != nil && ar.Category(name) != nil {
		return nil, fmt.Errorf("category %s/%s: %w", area, name, ErrDuplicateKey)
	}
	if ar == nil {
		m.board.Areas = append(m.board.Areas, domain.Area{Name: area})
		ar = &m.board.Areas[len(m.board.Areas)-1]
	}

	cat := domain.Category{
		ID:     uuid.New().String(),
		Name:   name,
		Status: domain.StatusNotStarted,
	}
	for _, canonical := range domain.CanonicalAspects {
		if requested[canonical] {
			cat.Aspects = append(cat.Aspects, domain.Aspect{Name: canonical, Applicable: true})
		}
	}

	ar.Categories = append(ar.Categories, cat)
	m.markDirty(area, name)
	return ar.Category(name), nil
}

// ApplyState merges saved state onto the board by name keys and returns the
// saved keys that no longer match anything.
func (m *Model) ApplyState(state snapshot.State) []snapshot.Key {
	return snapshot.Merge(m.board, state)
}

// Snapshot extracts all persisted user state from the board. Each snapshot
// gets a fresh ID so stores can tell writes apart.
func (m *Model) Snapshot() snapshot.State {
	state := snapshot.NewState()
	state.ID = uuid.New().String()
	for i := range m.board.Areas {
		a := &m.board.Areas[i]
		for j := range a.Categories {
			c := &a.Categories[j]
			cs := snapshot.CategoryState{
				Title:       c.Title,
				Description: c.Description,
				Status:      string(c.Status),
				Aspects:     make(map[string]snapshot.AspectState, len(c.Aspects)),
			}
			if c.ActualHours != nil {
				h := *c.ActualHours
				cs.ActualHours = &h
			}
			for _, asp := range c.Aspects {
				cs.Aspects[asp.Name] = snapshot.AspectState{Complete: asp.Complete, Note: asp.Note}
			}
			state.SetCategory(a.Name, c.Name, cs)
		}
	}
	return state
}

func (m *Model) category(area, category string) (*domain.Category, error) {
	ar := m.board.Area(area)
	if ar == nil {
		return nil, fmt.Errorf("area %s: %w", area, ErrNotFound)
	}
	cat := ar.Category(category)
	if cat == nil {
		return nil, fmt.Errorf("category %s/%s: %w", area, category, ErrNotFound)
	}
	return cat, nil
}

func (m *Model) markDirty(area, category string) {
	m.dirty[area+"/"+category] = true
}
