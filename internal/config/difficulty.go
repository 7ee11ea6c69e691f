package config

import (
	baristacore "github.com/vovakirdan/tui-barista/internal/games/barista/core"
)

// TierInfo summarizes one tier for listings.
type TierInfo struct {
	Difficulty baristacore.Difficulty
	Colors     []string
	FullCups   int
	EmptyCups  int
	Default    bool

	// Winnable is false when a color fills more than one cup, which the
	// solved check can never accept.
	Winnable bool
}

// Cups returns the tier's total cup count.
func (t TierInfo) Cups() int {
	return t.FullCups + t.EmptyCups
}

// TierInfos lists the configured tiers from easiest to hardest.
func (c BaristaConfig) TierInfos() []TierInfo {
	def := c.Difficulty()
	var out []TierInfo
	for _, d := range baristacore.AllDifficulties() {
		tier, ok := c.Tiers[d.String()]
		if !ok {
			continue
		}
		out = append(out, TierInfo{
			Difficulty: d,
			Colors:     distinct(tier.Colors),
			FullCups:   len(tier.Colors),
			EmptyCups:  tier.EmptyCups,
			Default:    d == def,
			Winnable:   len(distinct(tier.Colors)) == len(tier.Colors),
		})
	}
	return out
}

// distinct returns the canonical liquid names in first-seen order.
func distinct(colors []string) []string {
	seen := make(map[baristacore.Liquid]bool, len(colors))
	var out []string
	for _, col := range colors {
		l, ok := baristacore.ParseLiquid(col)
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l.String())
	}
	return out
}
