package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barista/internal/platform/tui"
	"github.com/vovakirdan/tui-barista/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a tier picker menu",
	Long: `Start Terminal Barista in interactive menu mode.

Use arrow keys or j/k to navigate, Enter or 1-3 to pick a tier.
Press B during a round to return to the menu, Q to quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/1-3    - Play tier
  Tab          - Best solves
  Q            - Quit

Examples:
  barista menu
  barista menu --db ./solves.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	warnConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		back, err := tui.RunGame(game, store, cfg, tui.ModelOptions{AllowBack: true})
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
