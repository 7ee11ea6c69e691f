package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barista/internal/games/barista"
	baristacore "github.com/vovakirdan/tui-barista/internal/games/barista/core"
	"github.com/vovakirdan/tui-barista/internal/platform/tui"
	"github.com/vovakirdan/tui-barista/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Terminal Barista.

Without --difficulty the game opens on a welcome screen where 1-3 pick
a tier and Enter starts the configured default.

Controls:
  1-9, 0     - Pick cup 1-9, 0 picks cup 10 (first pick = source, second = destination)
  Esc        - Cancel the picked source
  Enter/R    - New game after a win
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 2 colors, 1 empty cup
  medium - 6 colors, 2 empty cups
  hard   - 8 cups of 6 colors (green and pink twice), 2 empty cups

Examples:
  barista play
  barista play --difficulty easy
  barista play --seed 42 --difficulty medium
  barista play --config ./my-tiers.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tier config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Tier to start: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID := barista.GameID
	if flagDifficulty != "" {
		d, ok := baristacore.ParseDifficulty(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", flagDifficulty)
		}
		gameID = barista.TierID(d)
	}

	barista.SetConfigPath(flagConfig)
	warnConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// The runner owns the terminal, so warnings go out before it starts.
	if err := tui.Run(game, store, runtimeConfig(), tui.ModelOptions{}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
