package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		width   int
		wantPct string
	}{
		{"zero", 0, 10, "  0%"},
		{"two thirds", 100.0 * 2 / 3, 10, " 67%"},
		{"full", 100, 10, "100%"},
		{"over 100 clamps", 150, 10, "100%"},
		{"negative clamps", -5, 10, "  0%"},
		{"tiny width clamps to 2", 50, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, tt.wantPct)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
		})
	}
}

func TestRenderProgressBlocks(t *testing.T) {
	assert.NotContains(t, RenderProgress(0, 4), filledBlock)
	assert.NotContains(t, RenderProgress(100, 4), emptyBlock)
}
