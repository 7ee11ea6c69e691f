// Package config loads the YAML tier configuration for the barista game.
package config

import (
	"errors"
	"fmt"
	"sort"

	platformcore "github.com/vovakirdan/tui-barista/internal/core"
	baristacore "github.com/vovakirdan/tui-barista/internal/games/barista/core"
)

// BaristaConfig contains all tunables for puzzle generation.
type BaristaConfig struct {
	CupCapacity        int                   `yaml:"cup_capacity"`
	ScrambleIterations int                   `yaml:"scramble_iterations"`
	MaxRescrambles     int                   `yaml:"max_rescrambles"`
	DefaultDifficulty  string                `yaml:"default_difficulty"`
	Tiers              map[string]TierConfig `yaml:"tiers"`
}

// TierConfig is the unscrambled layout of one difficulty.
type TierConfig struct {
	Colors    []string `yaml:"colors"`     // one full cup per entry, repeats allowed
	EmptyCups int      `yaml:"empty_cups"` // empty cups appended after the full ones
}

// Cups returns the total cup count of the tier.
func (t TierConfig) Cups() int {
	return len(t.Colors) + t.EmptyCups
}

// Validate checks the config for values the game cannot play with.
// All problems are reported together.
func (c BaristaConfig) Validate() error {
	var errs []error

	if c.CupCapacity < 1 {
		errs = append(errs, fmt.Errorf("cup_capacity must be at least 1, got %d", c.CupCapacity))
	}
	if c.ScrambleIterations < 0 {
		errs = append(errs, fmt.Errorf("scramble_iterations must not be negative, got %d", c.ScrambleIterations))
	}
	if c.MaxRescrambles < 0 {
		errs = append(errs, fmt.Errorf("max_rescrambles must not be negative, got %d", c.MaxRescrambles))
	}
	if _, ok := baristacore.ParseDifficulty(c.DefaultDifficulty); !ok {
		errs = append(errs, fmt.Errorf("unknown default_difficulty %q", c.DefaultDifficulty))
	}

	for _, d := range baristacore.AllDifficulties() {
		if _, ok := c.Tiers[d.String()]; !ok {
			errs = append(errs, fmt.Errorf("tier %q is missing", d))
		}
	}

	for _, name := range c.tierNames() {
		tier := c.Tiers[name]
		d, ok := baristacore.ParseDifficulty(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown tier %q", name))
			continue
		}
		if d.String() != name {
			errs = append(errs, fmt.Errorf("tier %q must be named %q", name, d.String()))
			continue
		}
		if len(tier.Colors) < 1 {
			errs = append(errs, fmt.Errorf("tier %q needs at least one color", name))
		}
		for _, col := range tier.Colors {
			if _, ok := baristacore.ParseLiquid(col); !ok {
				errs = append(errs, fmt.Errorf("tier %q: unknown color %q", name, col))
			}
		}
		if tier.EmptyCups < 1 {
			errs = append(errs, fmt.Errorf("tier %q: empty_cups must be at least 1, got %d", name, tier.EmptyCups))
		}
		if tier.Cups() > platformcore.MaxPicks {
			errs = append(errs, fmt.Errorf("tier %q has %d cups, at most %d can be picked", name, tier.Cups(), platformcore.MaxPicks))
		}
	}

	return errors.Join(errs...)
}

// GenParams converts the config into generator parameters.
func (c BaristaConfig) GenParams() (baristacore.GenParams, error) {
	if err := c.Validate(); err != nil {
		return baristacore.GenParams{}, fmt.Errorf("invalid barista config: %w", err)
	}

	p := baristacore.GenParams{
		Capacity:       c.CupCapacity,
		Iterations:     c.ScrambleIterations,
		MaxRescrambles: c.MaxRescrambles,
		Tiers:          make(map[baristacore.Difficulty]baristacore.Tier, len(c.Tiers)),
	}
	for name, tc := range c.Tiers {
		d, _ := baristacore.ParseDifficulty(name)
		tier := baristacore.Tier{EmptyCups: tc.EmptyCups}
		for _, col := range tc.Colors {
			l, _ := baristacore.ParseLiquid(col)
			tier.Colors = append(tier.Colors, l)
		}
		p.Tiers[d] = tier
	}
	return p, nil
}

// Difficulty returns the configured default tier.
func (c BaristaConfig) Difficulty() baristacore.Difficulty {
	d, _ := baristacore.ParseDifficulty(c.DefaultDifficulty)
	return d
}

func (c BaristaConfig) tierNames() []string {
	names := make([]string, 0, len(c.Tiers))
	for name := range c.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
