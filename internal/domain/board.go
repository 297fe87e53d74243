package domain

import "time"

// Aspect is the leaf unit of tracked work within a category.
// Applicable is fixed at parse time: a blank source cell means the aspect
// does not apply to the category and is excluded from rollup denominators.
type Aspect struct {
	Name       string
	Applicable bool
	Complete   bool
	Note       string
}

// Category is a named grouping within an area. The aspect set is fixed at
// parse time; only completion flags and the descriptive fields are mutable.
// Percent is derived and always recomputed before being read.
type Category struct {
	ID          string
	Name        string
	Title       string
	Description string
	Status      CategoryStatus
	ActualHours *int
	Aspects     []Aspect
	Percent     float64
}

// Area is a top-level business function (e.g. HR, Governance, IT).
type Area struct {
	Name       string
	Categories []Category
	Percent    float64
}

// Board is the root aggregate: the full parsed hierarchy plus derived
// completion percentages.
type Board struct {
	Name       string
	SourcePath string
	ParsedAt   time.Time
	Areas      []Area
	Percent    float64
}

// Area returns the area with the given name, or nil.
func (b *Board) Area(name string) *Area {
	for i := range b.Areas {
		if b.Areas[i].Name == name {
			return &b.Areas[i]
		}
	}
	return nil
}

// Category returns the category with the given name, or nil.
func (a *Area) Category(name string) *Category {
	for i := range a.Categories {
		if a.Categories[i].Name == name {
			return &a.Categories[i]
		}
	}
	return nil
}

// Aspect returns the aspect with the given name, or nil.
func (c *Category) Aspect(name string) *Aspect {
	for i := range c.Aspects {
		if c.Aspects[i].Name == name {
			return &c.Aspects[i]
		}
	}
	return nil
}

// ApplicableCount returns the number of aspects that count toward the
// category denominator.
func (c *Category) ApplicableCount() int {
	n := 0
	for i := range c.Aspects {
		if c.Aspects[i].Applicable {
			n++
		}
	}
	return n
}

// CompleteCount returns the number of applicable aspects marked complete.
func (c *Category) CompleteCount() int {
	n := 0
	for i := range c.Aspects {
		if c.Aspects[i].Applicable && c.Aspects[i].Complete {
			n++
		}
	}
	return n
}

// DisplayTitle returns the editable title if set, otherwise the category name.
func (c *Category) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}
