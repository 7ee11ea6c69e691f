package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-barista/internal/core"
	"github.com/vovakirdan/tui-barista/internal/platform/ops"
	"github.com/vovakirdan/tui-barista/internal/registry"
	"github.com/vovakirdan/tui-barista/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// ModelOptions tunes a runner for local or remote play.
type ModelOptions struct {
	AllowBack     bool         // b leaves the game (SSH sessions return to the menu)
	Metrics       *ops.Metrics // may be nil
	Logger        *log.Logger  // may be nil
	ScreenshotDir string       // defaults to ~/.barista/screenshots
}

// Model is the Bubble Tea model for running a game.
// Every key press becomes one input frame; the clock only refreshes the HUD.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	state      core.GameState
	seenRound  string // last round counted as started
	savedRound string // last round written to the store
	quitting   bool
	back       bool
	lastShot   string
}

// NewModel creates a runner for the game and starts it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ClockRate <= 0 {
		cfg.ClockRate = 1
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		opts:      opts,
		keys:      keys,
		keyMapper: &KeyMapper{keys: keys},
		help:      h,
	}

	game.Reset(m.gameConfig())
	m.observe(game.State(), false)
	return m
}

// gameHeight is the screen height left to the game under the help bar.
func gameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// gameConfig is the runtime config handed to the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the HUD clock.
func (m Model) Init() tea.Cmd {
	return clockCmd(m.config.ClockRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		m.state = m.game.State()
		return m, clockCmd(m.config.ClockRate)
	}

	return m, nil
}

// handleKey turns one key press into one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.AllowBack {
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionNone:
		return m, nil
	}

	result := m.game.Step(core.NewInputFrame(action))
	m.observe(result.State, result.Solved)
	return m, nil
}

// observe records metrics and solve history for a new game state.
func (m *Model) observe(st core.GameState, solved bool) {
	prev := m.state
	m.state = st

	if st.RoundID == "" {
		return
	}
	if st.RoundID != m.seenRound {
		m.seenRound = st.RoundID
		m.opts.Metrics.RoundStarted(st.Difficulty)
	} else if st.RoundID == prev.RoundID {
		m.opts.Metrics.Poured(st.Difficulty, st.Moves-prev.Moves)
	}

	if (solved || st.Finished) && m.savedRound != st.RoundID {
		m.savedRound = st.RoundID
		m.recordSolve(st)
	}
}

// recordSolve stores a finished round once.
func (m *Model) recordSolve(st core.GameState) {
	m.opts.Metrics.Solved(st.Difficulty, st.Moves)
	if m.opts.Logger != nil {
		m.opts.Logger.Info("round solved",
			"game", m.game.ID(),
			"difficulty", st.Difficulty,
			"moves", st.Moves,
			"elapsed", st.Elapsed.Round(time.Second),
		)
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveSolve(storage.Solve{
		RoundID:    st.RoundID,
		GameID:     m.game.ID(),
		Difficulty: st.Difficulty,
		Moves:      st.Moves,
		Duration:   st.Elapsed,
	})
	if err != nil && !errors.Is(err, storage.ErrDuplicateSolve) && m.opts.Logger != nil {
		m.opts.Logger.Warn("cannot save solve", "round", st.RoundID, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".barista", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("cannot create screenshot dir", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("cannot save screenshot", err)
		return
	}
	m.lastShot = path
}

func (m *Model) warn(msg string, err error) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, "error", err)
	}
}

// View renders the game and the help bar.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// WantsBack reports whether the player asked to leave the game.
func (m Model) WantsBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LastScreenshot returns the path of the last screenshot written.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunGame runs a game that may hand control back to a menu.
// Returns true if the player pressed back rather than quit.
func RunGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (back bool, err error) {
	opts.AllowBack = true
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
