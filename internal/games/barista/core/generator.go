package core

import (
	"fmt"
	"strings"
)

// Difficulty selects a tier layout.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the tier name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label returns the tier name for display.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a tier name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, true
	case "medium", "m", "normal":
		return Medium, true
	case "hard", "h":
		return Hard, true
	default:
		return Medium, false
	}
}

// AllDifficulties returns every tier from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Tier describes the unscrambled layout of a difficulty: one full cup per
// entry in Colors (repeats allowed) followed by EmptyCups empty cups.
type Tier struct {
	Colors    []Liquid
	EmptyCups int
}

// Cups returns the number of cups the tier lays out.
func (t Tier) Cups() int {
	return len(t.Colors) + t.EmptyCups
}

// GenParams configures puzzle generation.
type GenParams struct {
	Capacity       int // Units per cup
	Iterations     int // Unrestricted pour attempts per scramble
	MaxRescrambles int // Extra scrambles when the result is already solved
	Tiers          map[Difficulty]Tier
}

// DefaultGenParams returns the stock tiers with cups of five.
func DefaultGenParams() GenParams {
	return GenParams{
		Capacity:       5,
		Iterations:     10000,
		MaxRescrambles: 8,
		Tiers: map[Difficulty]Tier{
			Easy: {
				Colors:    []Liquid{LiquidRed, LiquidGreen},
				EmptyCups: 1,
			},
			Medium: {
				Colors:    []Liquid{LiquidRed, LiquidGreen, LiquidBlue, LiquidBabyBlue, LiquidPink, LiquidYellow},
				EmptyCups: 2,
			},
			Hard: {
				Colors: []Liquid{
					LiquidRed, LiquidGreen, LiquidBlue, LiquidBabyBlue,
					LiquidPink, LiquidYellow, LiquidGreen, LiquidPink,
				},
				EmptyCups: 2,
			},
		},
	}
}

// Rand is the source of randomness used by the scrambler.
// *math/rand.Rand and *SimpleRNG both satisfy it.
type Rand interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Generator builds scrambled rosters for a set of tiers.
type Generator struct {
	params GenParams
	rng    Rand
}

// NewGenerator creates a generator. A nil rng uses a fixed-seed SimpleRNG.
func NewGenerator(p GenParams, rng Rand) *Generator {
	if rng == nil {
		rng = NewRNG(0)
	}
	return &Generator{params: p, rng: rng}
}

// Params returns the generation parameters.
func (g *Generator) Params() GenParams {
	return g.params
}

// Layout returns the sorted, unscrambled roster for a tier.
func (g *Generator) Layout(d Difficulty) (Roster, error) {
	tier, ok := g.params.Tiers[d]
	if !ok {
		return nil, fmt.Errorf("no layout for difficulty %q", d)
	}
	if g.params.Capacity < 0 {
		return nil, fmt.Errorf("invalid cup capacity %d", g.params.Capacity)
	}
	r := make(Roster, 0, tier.Cups())
	for _, l := range tier.Colors {
		if !l.Valid() {
			return nil, fmt.Errorf("difficulty %q: invalid liquid %d", d, l)
		}
		r = append(r, FullCup(g.params.Capacity, l))
	}
	for i := 0; i < tier.EmptyCups; i++ {
		r = append(r, EmptyCup(g.params.Capacity))
	}
	return r, nil
}

// Generate lays out a tier and scrambles it. If a scramble leaves the roster
// solved it scrambles again, at most MaxRescrambles times. The result is not
// checked for solvability.
func (g *Generator) Generate(d Difficulty) (Roster, error) {
	r, err := g.Layout(d)
	if err != nil {
		return nil, err
	}
	r = g.Scramble(r)
	for i := 0; i < g.params.MaxRescrambles && IsSolved(r); i++ {
		r = g.Scramble(r)
	}
	return r, nil
}

// Scramble returns a shuffled copy of r. Each iteration picks a source and
// a destination uniformly with replacement and tries an unrestricted pour;
// failed pours are skipped. Capacities and per-liquid totals are preserved.
func (g *Generator) Scramble(r Roster) Roster {
	out := r.Clone()
	if len(out) == 0 {
		return out
	}
	for i := 0; i < g.params.Iterations; i++ {
		s, d := g.rng.Intn(len(out)), g.rng.Intn(len(out))
		src, dst, err := PourUnrestricted(&out[s], &out[d])
		if err != nil {
			continue
		}
		out[s], out[d] = src, dst
	}
	return out
}
