// Package testutil provides shared fixtures for board and persistence tests.
package testutil

import (
	"github.com/google/uuid"
	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

// CategoryOption customizes a fixture category.
type CategoryOption func(*domain.Category)

// WithAspects replaces the default aspect set.
func WithAspects(names ...string) CategoryOption {
	return func(c *domain.Category) {
		c.Aspects = nil
		for _, n := range names {
			c.Aspects = append(c.Aspects, domain.Aspect{Name: n, Applicable: true})
		}
	}
}

// WithStatus sets the category status.
func WithStatus(s domain.CategoryStatus) CategoryOption {
	return func(c *domain.Category) { c.Status = s }
}

// NewTestCategory builds a category with Process/Policy/People aspects by default.
func NewTestCategory(name string, opts ...CategoryOption) domain.Category {
	c := domain.Category{
		ID:     uuid.New().String(),
		Name:   name,
		Status: domain.StatusNotStarted,
		Aspects: []domain.Aspect{
			{Name: domain.AspectProcess, Applicable: true},
			{Name: domain.AspectPolicy, Applicable: true},
			{Name: domain.AspectPeople, Applicable: true},
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestBoard builds a one-area board named "HR" with a Recruiting category.
func NewTestBoard() *domain.Board {
	return &domain.Board{
		Name: "test-board",
		Areas: []domain.Area{{
			Name:       "HR",
			Categories: []domain.Category{NewTestCategory("Recruiting")},
		}},
	}
}

// NewTestState builds a snapshot state with one completed aspect under
// HR/Recruiting.
func NewTestState() snapshot.State {
	state := snapshot.NewState()
	state.SetCategory("HR", "Recruiting", snapshot.CategoryState{
		Status: string(domain.StatusInProgress),
		Aspects: map[string]snapshot.AspectState{
			domain.AspectProcess: {Complete: true},
		},
	})
	return state
}
