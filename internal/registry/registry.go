// Package registry maps game IDs to factories for the runner.
//
// The barista package registers its entries in init(): "barista" opens on
// the tier-picking welcome screen, and "barista_easy", "barista_medium"
// and "barista_hard" start a round of that tier directly. The play
// command, the main menu and SSH sessions all build games through Create,
// so a blank import of the barista package is enough to make them
// launchable. Every solve is stored under the ID of the entry it was
// played from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-barista/internal/core"
)

// Game is what the runner drives. Implementations hold pure logic with no
// Bubble Tea dependency; the platform maps keys to actions, keeps time and
// paints the screen.
type Game interface {
	// ID returns the registry key, also stored with each solve.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset prepares a fresh round. Called once at start and again on
	// restart; the RuntimeConfig carries screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions of one input event in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current round snapshot.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. The factory is called once
// here to read the menu title. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID, so the welcome entry
// "barista" comes before the tier entries.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a fresh game by ID. Each call returns a new
// instance, so concurrent SSH sessions never share round state.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
