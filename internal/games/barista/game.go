// Package barista adapts the liquid sort puzzle to the runner: it turns
// input actions into cup picks and draws the round onto a Screen.
package barista

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-barista/internal/config"
	platformcore "github.com/vovakirdan/tui-barista/internal/core"
	"github.com/vovakirdan/tui-barista/internal/games/barista/core"
	"github.com/vovakirdan/tui-barista/internal/registry"
)

// GameID is the registry key of the entry that opens on the tier menu.
const GameID = "barista"

// Game implements the terminal barista puzzle.
type Game struct {
	fixed    bool // start straight into a tier, skipping the welcome screen
	tier     core.Difficulty
	cfg      config.BaristaConfig
	cfgErr   error
	round    *core.Round
	roundID  string
	started  time.Time
	finished time.Time
	now      func() time.Time
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets an explicit tier config file for games created later.
// An empty path uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// GetConfigPath returns the configured tier config path.
func GetConfigPath() string {
	return configPath
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	for _, d := range core.AllDifficulties() {
		registry.Register(TierID(d), func() registry.Game {
			return NewWithDifficulty(d)
		})
	}
}

// TierID returns the registry key that starts directly in tier d.
func TierID(d core.Difficulty) string {
	return GameID + "_" + d.String()
}

// New creates a game that opens on the tier menu.
func New() *Game {
	return &Game{now: time.Now}
}

// NewWithDifficulty creates a game that starts directly in tier d.
func NewWithDifficulty(d core.Difficulty) *Game {
	return &Game{fixed: true, tier: d, now: time.Now}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.fixed {
		return TierID(g.tier)
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fixed {
		return "Terminal Barista (" + g.tier.Label() + ")"
	}
	return "Terminal Barista"
}

// Reset loads the tier config and prepares a new round.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.cfg, g.cfgErr = config.LoadBarista(configPath)
	if g.cfgErr != nil {
		g.cfg = config.DefaultBaristaConfig()
	}
	params, err := g.cfg.GenParams()
	if err != nil {
		g.cfgErr = err
		params = core.DefaultGenParams()
	}

	gen := core.NewGenerator(params, rand.New(rand.NewSource(seed)))
	g.round = core.NewRound(gen)
	g.roundID = ""
	g.started, g.finished = time.Time{}, time.Time{}

	if g.fixed {
		g.startRound(g.tier)
	}
}

// startRound generates a roster for d and stamps a new round ID.
func (g *Game) startRound(d core.Difficulty) {
	if err := g.round.Start(d); err != nil {
		g.cfgErr = err
		return
	}
	g.tier = d
	g.stamp()
}

// stamp gives the freshly generated round its ID and start time.
func (g *Game) stamp() {
	g.roundID = uuid.NewString()
	g.started = g.now()
	g.finished = time.Time{}
}

// Step applies the frame's actions in arrival order.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	solved := false
	for _, a := range in.Actions() {
		if g.apply(a) {
			solved = true
		}
	}
	return platformcore.StepResult{State: g.State(), Solved: solved}
}

// apply handles one action and reports whether it finished the round.
func (g *Game) apply(a platformcore.Action) bool {
	switch g.round.Phase() {
	case core.PhaseWelcome:
		if idx, ok := a.PickIndex(); ok {
			tiers := core.AllDifficulties()
			if idx < len(tiers) {
				g.startRound(tiers[idx])
			}
			return false
		}
		if a == platformcore.ActionConfirm {
			g.startRound(g.cfg.Difficulty())
		}

	case core.PhasePlaying:
		if idx, ok := a.PickIndex(); ok {
			out, _ := g.round.Pick(idx)
			if out == core.OutcomeSolved {
				g.finished = g.now()
				return true
			}
			return false
		}
		if a == platformcore.ActionCancel {
			g.round.Cancel()
		}

	case core.PhaseFinished:
		if a == platformcore.ActionConfirm || a == platformcore.ActionRestart {
			if err := g.round.Restart(); err == nil {
				g.stamp()
			}
		}
	}
	return false
}

// State returns the current round snapshot.
func (g *Game) State() platformcore.GameState {
	if g.round == nil {
		return platformcore.GameState{}
	}
	st := platformcore.GameState{
		RoundID:  g.roundID,
		Moves:    g.round.Moves(),
		Elapsed:  g.Elapsed(),
		Playing:  g.round.Phase() == core.PhasePlaying,
		Finished: g.round.Phase() == core.PhaseFinished,
	}
	if g.round.Phase() != core.PhaseWelcome {
		st.Difficulty = g.round.Difficulty().String()
	}
	return st
}

// Elapsed returns the time spent in the current round. The clock stops
// when the round is solved.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.started.IsZero():
		return 0
	case !g.finished.IsZero():
		return g.finished.Sub(g.started)
	default:
		return g.now().Sub(g.started)
	}
}

// ConfigError returns the error hit while loading the tier config, if any.
// The game falls back to the built-in tiers in that case.
func (g *Game) ConfigError() error {
	return g.cfgErr
}
