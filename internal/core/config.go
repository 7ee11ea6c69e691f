package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	ClockRate int   // HUD clock refreshes per second (default 1)
	Seed      int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ClockRate: 1,
		Seed:      0,
	}
}

// GameState is the snapshot a game reports to the platform after each step.
type GameState struct {
	RoundID    string        // Unique ID of the current round, empty before one starts
	Difficulty string        // Tier name of the current round
	Moves      int           // Successful pours so far
	Elapsed    time.Duration // Time spent in the current round
	Playing    bool          // Whether a round is in progress
	Finished   bool          // Whether the current round has been solved
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState

	// Solved is true only for the step that finished the round.
	Solved bool
}
