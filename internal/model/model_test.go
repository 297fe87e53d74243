package model

import (
	"testing"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *Model {
	return New(&domain.Board{
		Areas: []domain.Area{{
			Name: "HR",
			Categories: []domain.Category{{
				Name:   "Recruiting",
				Status: domain.StatusNotStarted,
				Aspects: []domain.Aspect{
					{Name: domain.AspectProcess, Applicable: true},
					{Name: domain.AspectPolicy, Applicable: true},
					{Name: domain.AspectPeople, Applicable: true},
				},
			}},
		}},
	})
}

func TestSetAspectComplete(t *testing.T) {
	m := newTestModel()

	require.NoError(t, m.SetAspectComplete("HR", "Recruiting", domain.AspectProcess, true))
	require.NoError(t, m.SetAspectComplete("HR", "Recruiting", domain.AspectPeople, true))

	assert.Equal(t, []string{"HR/Recruiting"}, m.DirtyCategories())

	m.ComputeRollups()
	assert.Empty(t, m.DirtyCategories())

	// Spec scenario: 2 of 3 aspects complete at every level.
	assert.InDelta(t, 66.6667, m.Board().Area("HR").Category("Recruiting").Percent, 0.01)
	assert.InDelta(t, 66.6667, m.Board().Area("HR").Percent, 0.01)
	assert.InDelta(t, 66.6667, m.Board().Percent, 0.01)
}

func TestSetAspectComplete_NotFound(t *testing.T) {
	m := newTestModel()

	err := m.SetAspectComplete("HR", "Recruiting", domain.AspectReports, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "HR/Recruiting/Reports")

	err = m.SetAspectComplete("HR", "Payroll", domain.AspectProcess, true)
	assert.ErrorIs(t, err, ErrNotFound)

	err = m.SetAspectComplete("Legal", "Recruiting", domain.AspectProcess, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategorySetters(t *testing.T) {
	m := newTestModel()

	require.NoError(t, m.SetCategoryTitle("HR", "Recruiting", "Talent Acquisition"))
	require.NoError(t, m.SetCategoryDescription("HR", "Recruiting", "Hiring pipeline"))
	require.NoError(t, m.SetCategoryStatus("HR", "Recruiting", domain.StatusInProgress))
	require.NoError(t, m.SetCategoryHours("HR", "Recruiting", 24))

	cat := m.Board().Area("HR").Category("Recruiting")
	assert.Equal(t, "Talent Acquisition", cat.Title)
	assert.Equal(t, "Hiring pipeline", cat.Description)
	assert.Equal(t, domain.StatusInProgress, cat.Status)
	require.NotNil(t, cat.ActualHours)
	assert.Equal(t, 24, *cat.ActualHours)
}

func TestCategorySetters_Validation(t *testing.T) {
	m := newTestModel()

	err := m.SetCategoryStatus("HR", "Recruiting", "blocked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")

	err = m.SetCategoryHours("HR", "Recruiting", -1)
	require.Error(t, err)

	err = m.SetCategoryTitle("HR", "Missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	m := newTestModel()

	cat, err := m.CreateCategory("HR", "Onboarding", []string{domain.AspectTechnology, domain.AspectProcess})
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.NotEmpty(t, cat.ID)

	// Aspects stored in canonical column order regardless of input order.
	require.Len(t, cat.Aspects, 2)
	assert.Equal(t, domain.AspectProcess, cat.Aspects[0].Name)
	assert.Equal(t, domain.AspectTechnology, cat.Aspects[1].Name)

	// Spec scenario: area percent becomes the mean of the two categories.
	require.NoError(t, m.SetAspectComplete("HR", "Recruiting", domain.AspectProcess, true))
	require.NoError(t, m.SetAspectComplete("HR", "Recruiting", domain.AspectPeople, true))
	m.ComputeRollups()
	assert.InDelta(t, (66.6667+0)/2, m.Board().Area("HR").Percent, 0.01)
}

func TestCreateCategory_NewArea(t *testing.T) {
	m := newTestModel()

	_, err := m.CreateCategory("Legal", "Contracts", []string{domain.AspectPolicy})
	require.NoError(t, err)
	require.NotNil(t, m.Board().Area("Legal"))
	assert.NotNil(t, m.Board().Area("Legal").Category("Contracts"))
}

func TestCreateCategory_DuplicateKey(t *testing.T) {
	m := newTestModel()

	_, err := m.CreateCategory("HR", "Recruiting", []string{domain.AspectProcess})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "HR/Recruiting")
}

func TestCreateCategory_InvalidAspect(t *testing.T) {
	m := newTestModel()

	_, err := m.CreateCategory("HR", "Onboarding", []string{"Vibes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vibes")

	_, err = m.CreateCategory("HR", "Onboarding", nil)
	require.Error(t, err)
}

func TestSnapshot_CapturesUserState(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.SetAspectComplete("HR", "Recruiting", domain.AspectProcess, true))
	require.NoError(t, m.SetAspectNote("HR", "Recruiting", domain.AspectProcess, "audited"))
	require.NoError(t, m.SetCategoryStatus("HR", "Recruiting", domain.StatusInProgress))
	require.NoError(t, m.SetCategoryHours("HR", "Recruiting", 6))

	state := m.Snapshot()
	cs, ok := state.Category("HR", "Recruiting")
	require.True(t, ok)
	assert.Equal(t, string(domain.StatusInProgress), cs.Status)
	require.NotNil(t, cs.ActualHours)
	assert.Equal(t, 6, *cs.ActualHours)
	assert.True(t, cs.Aspects[domain.AspectProcess].Complete)
	assert.Equal(t, "audited", cs.Aspects[domain.AspectProcess].Note)
	assert.False(t, cs.Aspects[domain.AspectPolicy].Complete)
}
