package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/tui-barista/internal/core"
	"github.com/vovakirdan/tui-barista/internal/platform/ops"
	"github.com/vovakirdan/tui-barista/internal/storage"
)

// stubGame counts picks as moves and finishes on Confirm.
type stubGame struct {
	resets int
	steps  []core.Action
	rounds int
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.newRound()
}

func (g *stubGame) newRound() {
	g.rounds++
	g.state = core.GameState{
		RoundID:    "round-" + string(rune('0'+g.rounds)),
		Difficulty: "easy",
		Playing:    true,
	}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	var solved bool
	for _, a := range in.Actions() {
		g.steps = append(g.steps, a)
		switch {
		case a == core.ActionConfirm && g.state.Playing:
			g.state.Playing, g.state.Finished = false, true
			g.state.Elapsed = 3 * time.Second
			solved = true
		case a == core.ActionRestart && g.state.Finished:
			g.newRound()
		case g.state.Playing:
			if _, ok := a.PickIndex(); ok {
				g.state.Moves++
			}
		}
	}
	return core.StepResult{State: g.state, Solved: solved}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState { return g.state }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, ClockRate: 1, Seed: 1}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestModelOneStepPerKey(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), ModelOptions{})

	m, _ = press(t, m, runeKey('1'), runeKey('x'), runeKey('0'), tea.KeyMsg{Type: tea.KeyEsc})

	want := []core.Action{core.ActionPick1, core.ActionPick10, core.ActionCancel}
	if len(g.steps) != len(want) {
		t.Fatalf("steps = %v, expected %v", g.steps, want)
	}
	for i := range want {
		if g.steps[i] != want[i] {
			t.Errorf("step %d = %v, expected %v", i, g.steps[i], want[i])
		}
	}
	if m.State().Moves != 2 {
		t.Errorf("Moves = %d, expected 2", m.State().Moves)
	}
}

func TestModelRecordsSolveOnce(t *testing.T) {
	g := &stubGame{}
	store := openStore(t)
	reg := prometheus.NewRegistry()
	m := NewModel(g, store, testConfig(), ModelOptions{Metrics: ops.NewMetrics(reg)})

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	m, _ = press(t, m, runeKey('1'), runeKey('2'), enter, enter)
	if !m.State().Finished {
		t.Fatal("round should be finished")
	}

	solves, err := store.BestSolves("easy", 10)
	if err != nil {
		t.Fatalf("BestSolves() error = %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("expected 1 solve, got %d", len(solves))
	}
	if s := solves[0]; s.RoundID != "round-1" || s.GameID != "stub" || s.Moves != 2 || s.Duration != 3*time.Second {
		t.Errorf("solve = %+v", s)
	}

	// A restart starts a new round that can be recorded again.
	m, _ = press(t, m, runeKey('r'), runeKey('3'), enter)
	solves, _ = store.BestSolves("", 10)
	if len(solves) != 2 {
		t.Errorf("expected 2 solves after second round, got %d", len(solves))
	}

	if v := counterValue(t, reg, "barista_rounds_started_total"); v != 2 {
		t.Errorf("rounds started = %v, expected 2", v)
	}
	if v := counterValue(t, reg, "barista_rounds_pours_total"); v != 3 {
		t.Errorf("pours = %v, expected 3", v)
	}
	if v := counterValue(t, reg, "barista_rounds_solved_total"); v != 2 {
		t.Errorf("solves = %v, expected 2", v)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), ModelOptions{})
	m, _ = press(t, m, runeKey('1'), tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not reset the round", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if g.state.Moves != 1 {
		t.Errorf("moves lost on resize: %d", g.state.Moves)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &stubGame{}
	local := NewModel(g, nil, testConfig(), ModelOptions{})
	local, cmd := press(t, local, runeKey('b'))
	if local.WantsBack() || cmd != nil {
		t.Error("b should be ignored when back is not allowed")
	}

	remote := NewModel(&stubGame{}, nil, testConfig(), ModelOptions{AllowBack: true})
	remote, cmd = press(t, remote, runeKey('b'))
	if !remote.WantsBack() || !isQuit(cmd) {
		t.Error("b should leave the game when back is allowed")
	}
	if remote.View() != "" {
		t.Error("view should be empty after leaving")
	}

	local, cmd = press(t, local, runeKey('q'))
	if !local.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit")
	}
}

func TestModelClockRefreshesState(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), ModelOptions{})
	g.state.Elapsed = 42 * time.Second

	m, cmd := press(t, m, ClockMsg(time.Now()))
	if m.State().Elapsed != 42*time.Second {
		t.Errorf("Elapsed = %v", m.State().Elapsed)
	}
	if cmd == nil {
		t.Error("clock should keep ticking")
	}
	if len(g.steps) != 0 {
		t.Error("clock must not step the game")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{}, nil, testConfig(), ModelOptions{ScreenshotDir: dir})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	path := m.LastScreenshot()
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("screenshot path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "stub board") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), ModelOptions{})
	view := m.View()
	if !strings.Contains(view, "stub board") {
		t.Error("view should contain the game")
	}
	if !strings.Contains(view, "pick cup") {
		t.Error("view should contain the help bar")
	}
	if strings.Contains(view, "menu") {
		t.Error("back binding should be hidden for local play")
	}
}
