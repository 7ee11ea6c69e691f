package core

import (
	"fmt"
	"strings"
)

// Cup is a fixed-capacity stack of liquid units, bottom first.
// Cups are values: no method modifies a cup in place, and a cup never
// shares its backing storage with another cup it produced.
type Cup struct {
	capacity int
	contents []Liquid
}

// NewCup creates a cup holding the given units bottom to top.
// It panics if the contents exceed the capacity or the capacity is negative.
func NewCup(capacity int, contents ...Liquid) Cup {
	if capacity < 0 {
		panic(fmt.Sprintf("barista: negative cup capacity %d", capacity))
	}
	if len(contents) > capacity {
		panic(fmt.Sprintf("barista: %d units do not fit in a cup of %d", len(contents), capacity))
	}
	c := Cup{capacity: capacity}
	if len(contents) > 0 {
		c.contents = append([]Liquid(nil), contents...)
	}
	return c
}

// FullCup returns a cup filled to capacity with one liquid.
func FullCup(capacity int, l Liquid) Cup {
	contents := make([]Liquid, capacity)
	for i := range contents {
		contents[i] = l
	}
	return NewCup(capacity, contents...)
}

// EmptyCup returns a cup with nothing in it.
func EmptyCup(capacity int) Cup {
	return NewCup(capacity)
}

// Capacity returns the maximum number of units the cup holds.
func (c Cup) Capacity() int { return c.capacity }

// Len returns the number of units in the cup.
func (c Cup) Len() int { return len(c.contents) }

// Free returns the remaining room in the cup.
func (c Cup) Free() int { return c.capacity - len(c.contents) }

// IsEmpty reports whether the cup holds no units.
func (c Cup) IsEmpty() bool { return len(c.contents) == 0 }

// IsFull reports whether the cup is at capacity.
func (c Cup) IsFull() bool { return len(c.contents) == c.capacity }

// Top returns the uppermost unit. ok is false for an empty cup.
func (c Cup) Top() (l Liquid, ok bool) {
	if len(c.contents) == 0 {
		return 0, false
	}
	return c.contents[len(c.contents)-1], true
}

// Contents returns a copy of the units, bottom to top.
func (c Cup) Contents() []Liquid {
	out := make([]Liquid, len(c.contents))
	copy(out, c.contents)
	return out
}

// IsMonochrome reports whether every unit in the cup is the same liquid.
// An empty cup is monochrome.
func (c Cup) IsMonochrome() bool {
	for _, l := range c.contents {
		if l != c.contents[0] {
			return false
		}
	}
	return true
}

// Equal reports whether two cups have the same capacity and contents.
func (c Cup) Equal(o Cup) bool {
	if c.capacity != o.capacity || len(c.contents) != len(o.contents) {
		return false
	}
	for i := range c.contents {
		if c.contents[i] != o.contents[i] {
			return false
		}
	}
	return true
}

// String renders the cup as "[RGG..]" with one dot per free slot.
func (c Cup) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, l := range c.contents {
		sb.WriteRune(l.Char())
	}
	sb.WriteString(strings.Repeat(".", c.Free()))
	sb.WriteByte(']')
	return sb.String()
}

// withTop returns a new cup with l added on top.
func (c Cup) withTop(l Liquid) Cup {
	contents := make([]Liquid, len(c.contents), len(c.contents)+1)
	copy(contents, c.contents)
	return Cup{capacity: c.capacity, contents: append(contents, l)}
}

// withoutTop returns a new cup with the top unit removed.
func (c Cup) withoutTop() Cup {
	if len(c.contents) == 0 {
		return c
	}
	n := len(c.contents) - 1
	if n == 0 {
		return Cup{capacity: c.capacity}
	}
	contents := make([]Liquid, n)
	copy(contents, c.contents[:n])
	return Cup{capacity: c.capacity, contents: contents}
}
