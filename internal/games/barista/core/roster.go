package core

import "strings"

// Roster is the ordered set of cups in one round, addressed by index.
type Roster []Cup

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, c := range r {
		out[i] = NewCup(c.capacity, c.contents...)
	}
	return out
}

// TotalUnits returns the number of liquid units across all cups.
func (r Roster) TotalUnits() int {
	n := 0
	for _, c := range r {
		n += c.Len()
	}
	return n
}

// TotalCapacity returns the sum of cup capacities.
func (r Roster) TotalCapacity() int {
	n := 0
	for _, c := range r {
		n += c.Capacity()
	}
	return n
}

// CountByLiquid returns the number of units of each liquid present.
func (r Roster) CountByLiquid() map[Liquid]int {
	counts := make(map[Liquid]int)
	for _, c := range r {
		for _, l := range c.contents {
			counts[l]++
		}
	}
	return counts
}

// InRange reports whether i addresses a cup in the roster.
func (r Roster) InRange(i int) bool {
	return i >= 0 && i < len(r)
}

// String renders the roster as space-separated cups.
func (r Roster) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
