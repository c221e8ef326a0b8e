package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the run history",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  dinodash scores
  dinodash scores --limit 25
  dinodash scores --recent`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history interactively",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	var runs []storage.Run
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Dino Dash - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinodash play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-4s  %-12s  %s\n", "Rank", "Score", "Lvl", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-4s  %-12s  %s\n", "----", "-----", "---", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-4d  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.PlayTime.Round(1e9))
	}
	return nil
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, width, height)
}
