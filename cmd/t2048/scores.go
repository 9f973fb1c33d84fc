package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded games",
	Long: `Display the best recorded games, ranked by highest tile,
then by tile sum, then by fewest turns.

Examples:
  t2048 scores
  t2048 scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(os.Stdout, store, flagScoresLimit); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the ranking table and aggregate stats.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.TopResults(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Best Games - 2048")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to record the first game!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-6s  %-6s  %s\n", "Rank", "Max", "Sum", "Turns", "Origin", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-6s  %-6s  %s\n", "----", "---", "---", "-----", "------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-7d  %-7d  %-6d  %-6s  %s\n", i+1, r.MaxTile, r.TileSum, r.Turns, r.Origin, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Best tile: %d  Average max tile: %.1f  Total turns: %d\n",
		stats.Games, stats.BestTile, stats.AvgMaxTile, stats.TotalTurns)
	return nil
}
