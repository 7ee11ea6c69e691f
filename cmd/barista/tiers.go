package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barista/internal/config"
	"github.com/vovakirdan/tui-barista/internal/games/barista"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the configured tiers",
	Long: `Shows each tier with its cup count, colors and empty cups.

The tier config is read from --config, ~/.barista/configs/barista.yaml,
./configs/barista.yaml or the built-in defaults, in that order.`,
	Args: cobra.NoArgs,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tier config YAML")
}

func runTiers(_ *cobra.Command, _ []string) error {
	barista.SetConfigPath(flagConfig)
	cfg, err := config.LoadBarista(flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Cup capacity: %d  |  Scramble: %d pours\n\n", cfg.CupCapacity, cfg.ScrambleIterations)
	fmt.Printf("  %-3s  %-8s  %-4s  %-5s  %s\n", "Key", "Tier", "Cups", "Empty", "Colors")
	fmt.Printf("  %-3s  %-8s  %-4s  %-5s  %s\n", "---", "----", "----", "-----", "------")

	for i, t := range cfg.TierInfos() {
		name := t.Difficulty.Label()
		if t.Default {
			name += "*"
		}
		colors := strings.Join(t.Colors, ", ")
		if !t.Winnable {
			colors += " (no solved state: a color fills more than one cup)"
		}
		fmt.Printf("  %-3d  %-8s  %-4d  %-5d  %s\n", i+1, name, t.Cups(), t.EmptyCups, colors)
	}

	fmt.Println()
	fmt.Println("* default tier. Run 'barista play --difficulty <tier>' to start one.")
	return nil
}
