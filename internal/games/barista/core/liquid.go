package core

import "strings"

// Liquid is one colour of the closed liquid set.
type Liquid uint8

const (
	LiquidRed Liquid = iota
	LiquidGreen
	LiquidBlue
	LiquidPink
	LiquidBabyBlue
	LiquidYellow
	LiquidCount // Sentinel value for iteration
)

// String returns the config name of a liquid.
func (l Liquid) String() string {
	switch l {
	case LiquidRed:
		return "red"
	case LiquidGreen:
		return "green"
	case LiquidBlue:
		return "blue"
	case LiquidPink:
		return "pink"
	case LiquidBabyBlue:
		return "baby_blue"
	case LiquidYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Label returns the display name of a liquid.
func (l Liquid) Label() string {
	switch l {
	case LiquidRed:
		return "Red"
	case LiquidGreen:
		return "Green"
	case LiquidBlue:
		return "Blue"
	case LiquidPink:
		return "Pink"
	case LiquidBabyBlue:
		return "Baby Blue"
	case LiquidYellow:
		return "Yellow"
	default:
		return "?"
	}
}

// Char returns a single character for plain-text rendering.
func (l Liquid) Char() rune {
	switch l {
	case LiquidRed:
		return 'R'
	case LiquidGreen:
		return 'G'
	case LiquidBlue:
		return 'B'
	case LiquidPink:
		return 'P'
	case LiquidBabyBlue:
		return 'C'
	case LiquidYellow:
		return 'Y'
	default:
		return '?'
	}
}

// Valid reports whether l is a member of the liquid set.
func (l Liquid) Valid() bool {
	return l < LiquidCount
}

// ParseLiquid converts a config name to a Liquid.
// Returns LiquidRed and false if the name is not recognized.
func ParseLiquid(s string) (Liquid, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return LiquidRed, true
	case "green", "g":
		return LiquidGreen, true
	case "blue", "b":
		return LiquidBlue, true
	case "pink", "p":
		return LiquidPink, true
	case "baby_blue", "babyblue", "baby blue", "c":
		return LiquidBabyBlue, true
	case "yellow", "y":
		return LiquidYellow, true
	default:
		return LiquidRed, false
	}
}

// AllLiquids returns every liquid in declaration order.
func AllLiquids() []Liquid {
	return []Liquid{LiquidRed, LiquidGreen, LiquidBlue, LiquidPink, LiquidBabyBlue, LiquidYellow}
}
