package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/testutil"
)

func TestFormatStatus(t *testing.T) {
	board := testutil.NewTestBoard()
	board.Areas[0].Categories[0].Aspects[0].Complete = true
	board.ComputeRollups()

	out := FormatStatus(board)
	assert.Contains(t, out, "test-board")
	assert.Contains(t, out, "HR")
	assert.Contains(t, out, " 33%")
}

func TestFormatArea(t *testing.T) {
	board := testutil.NewTestBoard()
	cat := &board.Areas[0].Categories[0]
	cat.Title = "Talent Pipeline"
	cat.Status = domain.StatusInProgress
	hours := 4
	cat.ActualHours = &hours
	board.ComputeRollups()

	out := FormatArea(&board.Areas[0])
	assert.Contains(t, out, "Talent Pipeline")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "4h")
	for _, name := range domain.CanonicalAspects {
		assert.Contains(t, out, name)
	}
}

func TestFormatCategory(t *testing.T) {
	cat := testutil.NewTestCategory("Recruiting")
	cat.Description = "End to end hiring flow"
	cat.Aspects[0].Complete = true
	cat.Aspects[1].Note = "policy draft in review"

	out := FormatCategory("HR", &cat)
	assert.Contains(t, out, "HR")
	assert.Contains(t, out, "Recruiting")
	assert.Contains(t, out, "End to end hiring flow")
	assert.Contains(t, out, "policy draft in review")
}

func TestFormatDroppedKeys(t *testing.T) {
	assert.Empty(t, FormatDroppedKeys(nil))

	out := FormatDroppedKeys([]string{"HR/Old", "HR/Old/Process"})
	assert.Contains(t, out, "2 saved entries")
	assert.Contains(t, out, "HR/Old/Process")
}
