package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barista/internal/core"
	baristacore "github.com/vovakirdan/tui-barista/internal/games/barista/core"
	"github.com/vovakirdan/tui-barista/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best solves",
	Long: `Display the 10 best solves, fewest moves first and then fastest.

Without a difficulty every tier is listed, followed by a per-tier summary.

Examples:
  barista scores
  barista scores hard
  barista scores --recent
  barista scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent solves instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the solves of the given difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulty := ""
	if len(args) == 1 {
		d, ok := baristacore.ParseDifficulty(args[0])
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", args[0])
		}
		difficulty = d.String()
	}
	if flagClear && difficulty == "" {
		return fmt.Errorf("--clear needs a difficulty")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening solves database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSolves(difficulty); err != nil {
			return fmt.Errorf("error clearing solves: %w", err)
		}
		logger.Info("cleared solves", "difficulty", difficulty)
		return nil
	}

	var solves []storage.Solve
	heading := "Best Solves"
	if flagRecent {
		heading = "Recent Solves"
		solves, err = store.RecentSolves(10)
	} else {
		solves, err = store.BestSolves(difficulty, 10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving solves: %w", err)
	}

	title := "all tiers"
	if difficulty != "" && !flagRecent {
		title = difficulty
	}
	fmt.Printf("%s - %s\n\n", heading, title)

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'barista play' and finish a round to get on the board!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "Rank", "Tier", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-8s  %s\n", "----", "----", "-----", "----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-7s  %-6d  %-8s  %s\n",
			i+1, s.Difficulty, s.Moves, core.FormatClock(s.Duration), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if difficulty != "" {
		if stats, err := store.Stats(difficulty); err == nil && stats.Count > 0 {
			fmt.Printf("\n%d solved, average %.1f moves\n", stats.Count, stats.AvgMoves)
		}
		return nil
	}

	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	for _, d := range baristacore.AllDifficulties() {
		st, ok := all[d.String()]
		if !ok {
			continue
		}
		fmt.Printf("%-7s %3d solved  best %d moves  fastest %s  last %s\n",
			d.Label(), st.Count, st.BestMoves, core.FormatClock(st.BestDuration), st.LastPlayed.Format("2006-01-02"))
	}
	return nil
}
