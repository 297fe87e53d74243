package snapshot

import (
	"testing"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() *domain.Board {
	return &domain.Board{
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
	}
}

func TestMerge_AppliesSavedFlags(t *testing.T) {
	board := testBoard()
	hours := 12

	state := NewState()
	state.SetCategory("HR", "Recruiting", CategoryState{
		Title:       "Talent Acquisition",
		Description: "End-to-end hiring pipeline",
		Status:      string(domain.StatusInProgress),
		ActualHours: &hours,
		Aspects: map[string]AspectState{
			domain.AspectProcess: {Complete: true, Note: "signed off"},
			domain.AspectPeople:  {Complete: true},
		},
	})

	dropped := Merge(board, state)
	assert.Empty(t, dropped)

	cat := board.Area("HR").Category("Recruiting")
	assert.Equal(t, "Talent Acquisition", cat.Title)
	assert.Equal(t, domain.StatusInProgress, cat.Status)
	require.NotNil(t, cat.ActualHours)
	assert.Equal(t, 12, *cat.ActualHours)
	assert.True(t, cat.Aspect(domain.AspectProcess).Complete)
	assert.Equal(t, "signed off", cat.Aspect(domain.AspectProcess).Note)
	assert.True(t, cat.Aspect(domain.AspectPeople).Complete)
	assert.False(t, cat.Aspect(domain.AspectPolicy).Complete)
}

func TestMerge_DropsAndReportsUnmatchedKeys(t *testing.T) {
	board := testBoard()

	state := NewState()
	// Area removed from the source spreadsheet.
	state.SetCategory("Legacy Area", "Old Category", CategoryState{
		Aspects: map[string]AspectState{domain.AspectProcess: {Complete: true}},
	})
	// Category removed under a surviving area.
	state.SetCategory("HR", "Payroll", CategoryState{
		Aspects: map[string]AspectState{domain.AspectPolicy: {Complete: true}},
	})
	// Aspect no longer in the category's fixed set.
	state.SetCategory("HR", "Recruiting", CategoryState{
		Aspects: map[string]AspectState{
			domain.AspectProcess: {Complete: true},
			domain.AspectReports: {Complete: true},
		},
	})

	dropped := Merge(board, state)

	var keys []string
	for _, k := range dropped {
		keys = append(keys, k.String())
	}
	assert.ElementsMatch(t, []string{
		"Legacy Area/Old Category",
		"Legacy Area/Old Category/Process",
		"HR/Payroll",
		"HR/Payroll/Policy",
		"HR/Recruiting/Reports",
	}, keys)

	// Matched entries still applied.
	assert.True(t, board.Area("HR").Category("Recruiting").Aspect(domain.AspectProcess).Complete)
}

func TestMerge_UnmatchedBoardEntriesStayIncomplete(t *testing.T) {
	board := testBoard()
	dropped := Merge(board, NewState())
	assert.Empty(t, dropped)

	cat := board.Area("HR").Category("Recruiting")
	for _, a := range cat.Aspects {
		assert.False(t, a.Complete)
	}
	assert.Equal(t, domain.StatusNotStarted, cat.Status)
}

func TestMerge_InvalidStatusIgnored(t *testing.T) {
	board := testBoard()
	state := NewState()
	state.SetCategory("HR", "Recruiting", CategoryState{Status: "blocked"})

	Merge(board, state)
	assert.Equal(t, domain.StatusNotStarted, board.Area("HR").Category("Recruiting").Status)
}

func TestMerge_ReportedKeysAreSorted(t *testing.T) {
	board := testBoard()
	state := NewState()
	state.SetCategory("Z Area", "Z Cat", CategoryState{})
	state.SetCategory("A Area", "A Cat", CategoryState{})

	dropped := Merge(board, state)
	require.Len(t, dropped, 2)
	assert.Equal(t, "A Area/A Cat", dropped[0].String())
	assert.Equal(t, "Z Area/Z Cat", dropped[1].String())
}
