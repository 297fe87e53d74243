package snapshot

import (
	"sort"

	"github.com/rkarlsen/opboard/internal/domain"
)

// Merge applies a saved state onto a freshly parsed board, matching entries
// by (area, category, aspect) name. Saved keys with no match in the board are
// returned so callers can report them; board entries with no saved state stay
// incomplete. The source spreadsheet may change between runs, so missing and
// extra keys are expected and never an error.
func Merge(board *domain.Board, state State) []Key {
	var dropped []Key

	for areaName, as := range state.Areas {
		area := board.Area(areaName)
		if area == nil {
			dropped = append(dropped, areaKeys(areaName, as)...)
			continue
		}
		for catName, cs := range as.Categories {
			cat := area.Category(catName)
			if cat == nil {
				dropped = append(dropped, categoryKeys(areaName, catName, cs)...)
				continue
			}
			applyCategory(cat, cs)
			for aspName, aspState := range cs.Aspects {
				asp := cat.Aspect(aspName)
				if asp == nil {
					dropped = append(dropped, Key{Area: areaName, Category: catName, Aspect: aspName})
					continue
				}
				asp.Complete = aspState.Complete
				asp.Note = aspState.Note
			}
		}
	}

	sort.Slice(dropped, func(i, j int) bool {
		return dropped[i].String() < dropped[j].String()
	})
	return dropped
}

// applyCategory copies the editable category fields from saved state.
// The status is applied only when it is a valid enum value, guarding against
// snapshots written by newer versions with unknown statuses.
func applyCategory(cat *domain.Category, cs CategoryState) {
	cat.Title = cs.Title
	cat.Description = cs.Description
	if domain.ValidCategoryStatuses[cs.Status] {
		cat.Status = domain.CategoryStatus(cs.Status)
	}
	if cs.ActualHours != nil {
		h := *cs.ActualHours
		cat.ActualHours = &h
	}
}

func areaKeys(areaName string, as AreaState) []Key {
	var keys []Key
	for catName, cs := range as.Categories {
		keys = append(keys, categoryKeys(areaName, catName, cs)...)
	}
	return keys
}

func categoryKeys(areaName, catName string, cs CategoryState) []Key {
	keys := []Key{{Area: areaName, Category: catName}}
	for aspName := range cs.Aspects {
		keys = append(keys, Key{Area: areaName, Category: catName, Aspect: aspName})
	}
	return keys
}
