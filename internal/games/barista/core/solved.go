package core

// IsSolved reports whether every cup is monochrome and no two non-empty
// cups show the same liquid on top. It stops at the first violation,
// scanning cups in index order.
func IsSolved(r Roster) bool {
	seen := make(map[Liquid]bool, len(r))
	for _, c := range r {
		if !c.IsMonochrome() {
			return false
		}
		top, ok := c.Top()
		if !ok {
			continue
		}
		if seen[top] {
			return false
		}
		seen[top] = true
	}
	return true
}

// Winnable reports whether a roster could ever satisfy IsSolved: each
// liquid must fit into a single cup. It says nothing about whether the
// current layout can reach that state under the pour rule.
func Winnable(r Roster) bool {
	maxCap := 0
	for _, c := range r {
		maxCap = max(maxCap, c.Capacity())
	}
	for _, n := range r.CountByLiquid() {
		if n > maxCap {
			return false
		}
	}
	return true
}
