package domain

// ComputeRollups recomputes every derived percentage bottom-up: aspect flags
// feed category percents, categories average into area percents (equal weight
// per category, not per aspect), and areas average into the board percent.
// Values are kept unrounded; formatters round for display. The function is
// idempotent: with no intervening mutation, repeated calls yield identical
// percentages.
func (b *Board) ComputeRollups() {
	var areaSum float64
	for i := range b.Areas {
		a := &b.Areas[i]
		var catSum float64
		for j := range a.Categories {
			c := &a.Categories[j]
			c.Percent = c.rollup()
			catSum += c.Percent
		}
		if len(a.Categories) == 0 {
			a.Percent = 0
		} else {
			a.Percent = catSum / float64(len(a.Categories))
		}
		areaSum += a.Percent
	}
	if len(b.Areas) == 0 {
		b.Percent = 0
	} else {
		b.Percent = areaSum / float64(len(b.Areas))
	}
}

// rollup returns 100*k/N over applicable aspects, or 0 when none apply.
func (c *Category) rollup() float64 {
	n := c.ApplicableCount()
	if n == 0 {
		return 0
	}
	return 100 * float64(c.CompleteCount()) / float64(n)
}
