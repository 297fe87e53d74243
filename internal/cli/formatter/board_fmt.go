// Package formatter renders board views for the CLI. All functions return
// plain strings; commands decide where to print them.
package formatter

import (
	"fmt"
	"strings"

	"github.com/rkarlsen/opboard/internal/domain"
)

const progressBarWidth = 20

// FormatStatus formats the overall and per-area completion rollups.
func FormatStatus(board *domain.Board) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(board.Name), RenderProgress(board.Percent, progressBarWidth)))

	headers := []string{"AREA", "CATEGORIES", "PROGRESS"}
	rows := make([][]string, 0, len(board.Areas))
	for _, area := range board.Areas {
		rows = append(rows, []string{
			StyleBlue.Render(area.Name),
			fmt.Sprintf("%d", len(area.Categories)),
			RenderProgress(area.Percent, progressBarWidth),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Status", b.String())
}

// FormatArea formats the category table for one area, one aspect mark per
// canonical column.
func FormatArea(area *domain.Area) string {
	headers := []string{"CATEGORY", "STATUS"}
	headers = append(headers, domain.CanonicalAspects...)
	headers = append(headers, "HOURS", "PROGRESS")

	rows := make([][]string, 0, len(area.Categories))
	for i := range area.Categories {
		cat := &area.Categories[i]
		row := []string{Bold(cat.DisplayTitle()), StatusPill(cat.Status)}
		for _, name := range domain.CanonicalAspects {
			asp := cat.Aspect(name)
			if asp == nil {
				row = append(row, StyleDim.Render("–"))
				continue
			}
			row = append(row, AspectMark(*asp))
		}
		row = append(row, formatHours(cat.ActualHours), RenderProgress(cat.Percent, progressBarWidth))
		rows = append(rows, row)
	}

	return RenderBox(area.Name, RenderTable(headers, rows))
}

// FormatCategory formats the full detail view for one category.
func FormatCategory(area string, cat *domain.Category) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s / %s\n", StyleBlue.Render(area), Bold(cat.DisplayTitle())))
	if cat.Description != "" {
		b.WriteString(Dim(cat.Description) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n",
		StatusPill(cat.Status),
		RenderProgress(cat.Percent, progressBarWidth),
		Dim("hours: "+formatHours(cat.ActualHours))))

	for _, asp := range cat.Aspects {
		line := fmt.Sprintf("  %s %s", AspectMark(asp), asp.Name)
		if asp.Note != "" {
			line += "  " + Dim(asp.Note)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// FormatDroppedKeys formats the warning block for snapshot entries that no
// longer match a source row.
func FormatDroppedKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d saved entries no longer match the source:", len(keys))) + "\n")
	for _, k := range keys {
		b.WriteString("  " + Dim(k) + "\n")
	}
	return b.String()
}

func formatHours(h *int) string {
	if h == nil {
		return "--"
	}
	return fmt.Sprintf("%dh", *h)
}
