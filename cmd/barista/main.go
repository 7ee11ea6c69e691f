// barista is a liquid sort puzzle for the terminal.
//
// Usage:
//
//	barista play [--difficulty easy|medium|hard]  - Play a round
//	barista menu                                  - Pick tiers from a menu, view solves
//	barista tiers                                 - List the configured tiers
//	barista scores [difficulty]                   - Show the best solves
//	barista serve                                 - Serve the game over SSH
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible scrambles
//	--db <path>          - Set database path (default: ~/.barista/solves.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-barista/internal/config"
	"github.com/vovakirdan/tui-barista/internal/core"
	"github.com/vovakirdan/tui-barista/internal/games/barista"
	"github.com/vovakirdan/tui-barista/internal/storage"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barista",
	Short: "Terminal Barista - sort the liquids into cups",
	Long: `Terminal Barista is a liquid sort puzzle for the terminal.

Pour the top unit of one cup onto another cup with the same top color
(or an empty one) until every cup holds a single color.

Available commands:
  play     - Play a round directly
  menu     - Interactive tier picker menu
  tiers    - Show the configured tiers
  scores   - View the best solves
  serve    - Start SSH server for remote play

Examples:
  barista play
  barista play --difficulty hard
  barista menu
  barista scores easy
  barista serve --ssh :2222 --metrics :9100`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "barista",
			Level:           level,
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barista/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runner config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// warnConfig reports a tier config the game will replace with the built-in tiers.
func warnConfig() {
	if _, err := config.LoadBarista(barista.GetConfigPath()); err != nil {
		logger.Warn("tier config rejected, using built-in tiers", "error", err)
	}
}

// openStore opens the solves database. Play continues without history
// when it cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database, history disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
