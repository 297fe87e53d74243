// Package parser reads a tabular checklist source (.xlsx or .csv) and emits a
// normalized Area → Category → Aspect board.
//
// The source must contain a header row naming the aspect columns, followed by
// area header rows (text in the first column, all aspect cells blank) and
// category sub-rows (non-blank aspect cells). A blank aspect cell means the
// aspect is not applicable to the category and is excluded from rollup
// denominators; it is not the same as "incomplete".
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rkarlsen/opboard/internal/domain"
)

var (
	// ErrSourceNotFound indicates the source path does not resolve to a file.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrMalformedSource indicates the source has no recognizable aspect
	// header or no area header rows.
	ErrMalformedSource = errors.New("malformed source")
)

// minHeaderAspects is the number of canonical aspect names a row must contain
// to be recognized as the aspect header row.
const minHeaderAspects = 2

// ParseSource reads the file at path and produces a fully populated board
// with all completion flags unset. The source is never mutated.
func ParseSource(path string) (*domain.Board, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	default:
		rows, err = readWorkbook(path)
	}
	if err != nil {
		return nil, err
	}

	return buildBoard(path, rows)
}

// buildBoard converts raw rows into the board hierarchy.
func buildBoard(path string, rows [][]string) (*domain.Board, error) {
	headerIdx, aspectCols := findAspectHeader(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: %s: no aspect header row recognized", ErrMalformedSource, path)
	}

	board := &domain.Board{
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SourcePath: path,
		ParsedAt:   time.Now().UTC(),
	}

	for rowNum, row := range rows[headerIdx+1:] {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}

		if rowIsAreaHeader(row, aspectCols) {
			board.Areas = append(board.Areas, domain.Area{Name: name})
			continue
		}

		if len(board.Areas) == 0 {
			return nil, fmt.Errorf("%w: %s: row %d: category %q appears before any area header",
				ErrMalformedSource, path, headerIdx+rowNum+2, name)
		}

		area := &board.Areas[len(board.Areas)-1]
		area.Categories = append(area.Categories, buildCategory(name, row, aspectCols))
	}

	if len(board.Areas) == 0 {
		return nil, fmt.Errorf("%w: %s: no area header rows recognized", ErrMalformedSource, path)
	}

	return board, nil
}

// aspectColumn maps a source column index to a canonical aspect name.
type aspectColumn struct {
	col  int
	name string
}

// findAspectHeader locates the row naming the aspect columns. Returns -1 if
// no row contains at least minHeaderAspects canonical aspect names.
func findAspectHeader(rows [][]string) (int, []aspectColumn) {
	for i, row := range rows {
		var cols []aspectColumn
		for j, raw := range row {
			name := canonicalAspect(raw)
			if name != "" {
				cols = append(cols, aspectColumn{col: j, name: name})
			}
		}
		if len(cols) >= minHeaderAspects {
			return i, cols
		}
	}
	return -1, nil
}

// canonicalAspect matches a header cell against the canonical aspect names,
// ignoring case and surrounding whitespace.
func canonicalAspect(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, name := range domain.CanonicalAspects {
		if strings.EqualFold(trimmed, name) {
			return name
		}
	}
	return ""
}

// rowIsAreaHeader reports whether every aspect cell in the row is blank.
func rowIsAreaHeader(row []string, aspectCols []aspectColumn) bool {
	for _, ac := range aspectCols {
		if strings.TrimSpace(cell(row, ac.col)) != "" {
			return false
		}
	}
	return true
}

// buildCategory creates a category whose aspect set is fixed by the non-blank
// cells of the row. All completion flags start false.
func buildCategory(name string, row []string, aspectCols []aspectColumn) domain.Category {
	cat := domain.Category{
		ID:     uuid.New().String(),
		Name:   name,
		Status: domain.StatusNotStarted,
	}
	for _, ac := range aspectCols {
		cat.Aspects = append(cat.Aspects, domain.Aspect{
			Name:       ac.name,
			Applicable: strings.TrimSpace(cell(row, ac.col)) != "",
		})
	}
	return cat
}

// cell returns the trimmed-length-safe cell at index i. Spreadsheet readers
// drop trailing empty cells, so short rows are common.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
