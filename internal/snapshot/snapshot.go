// Package snapshot persists user edits (aspect flags, category text, status,
// hours) and merges them back onto a freshly parsed board. Two backing stores
// satisfy the same contract: a JSON file and a SQLite table.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrStorageUnavailable indicates the backing store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptSnapshot indicates a prior snapshot exists but cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// Key identifies a saved entry by name path. Aspect is empty for
// category-level state (title, description, status, hours).
type Key struct {
	Area     string
	Category string
	Aspect   string
}

func (k Key) String() string {
	if k.Aspect == "" {
		return fmt.Sprintf("%s/%s", k.Area, k.Category)
	}
	return fmt.Sprintf("%s/%s/%s", k.Area, k.Category, k.Aspect)
}

// AspectState is the persisted per-aspect state.
type AspectState struct {
	Complete bool   `json:"complete"`
	Note     string `json:"note,omitempty"`
}

// CategoryState is the persisted per-category state.
type CategoryState struct {
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Status      string                 `json:"status,omitempty"`
	ActualHours *int                   `json:"actual_hours,omitempty"`
	Aspects     map[string]AspectState `json:"aspects,omitempty"`
}

// AreaState groups category state under one area.
type AreaState struct {
	Categories map[string]CategoryState `json:"categories,omitempty"`
}

// State is a full snapshot of all user edits at a point in time. Unknown
// fields in a stored snapshot are ignored on decode so the schema can grow
// without breaking old files.
type State struct {
	ID      string               `json:"id,omitempty"`
	SavedAt time.Time            `json:"saved_at"`
	Areas   map[string]AreaState `json:"areas"`
}

// NewState returns an empty snapshot state.
func NewState() State {
	return State{Areas: make(map[string]AreaState)}
}

// Empty reports whether the state holds no entries.
func (s State) Empty() bool {
	return len(s.Areas) == 0
}

// Category returns the saved state for (area, category) and whether it exists.
func (s State) Category(area, category string) (CategoryState, bool) {
	as, ok := s.Areas[area]
	if !ok {
		return CategoryState{}, false
	}
	cs, ok := as.Categories[category]
	return cs, ok
}

// SetCategory stores category state, creating intermediate maps as needed.
func (s *State) SetCategory(area, category string, cs CategoryState) {
	if s.Areas == nil {
		s.Areas = make(map[string]AreaState)
	}
	as, ok := s.Areas[area]
	if !ok {
		as = AreaState{Categories: make(map[string]CategoryState)}
	}
	if as.Categories == nil {
		as.Categories = make(map[string]CategoryState)
	}
	as.Categories[category] = cs
	s.Areas[area] = as
}

// Store is the persistence contract shared by the file and SQLite backends.
// Load returns an empty state (not an error) when no prior snapshot exists.
// Save is atomic with respect to process crashes: either the prior snapshot
// remains intact or the new one is fully visible.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}
