package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var flagScoresClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and campaign progress",
	Long: `Display the top 10 recorded runs, run statistics and campaign progress.

Examples:
  starfall scores
  starfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			logger.Error("could not clear scores", "error", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		logger.Error("could not retrieve scores", "error", err)
		return
	}

	fmt.Println("High Scores - Starfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Reached", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-------", "----")
		for i, entry := range scores {
			reached := fmt.Sprintf("L%dW%d", entry.Level, entry.Wave)
			if entry.Completed {
				reached = "cleared"
			}
			fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, reached, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.Stats(); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Cleared: %d\n",
				stats.HighScore, stats.RunsCount, stats.AvgScore, stats.Completed)
		}
	}

	c := openProgress().Campaign()
	fmt.Println()
	switch {
	case c.Completed:
		fmt.Println("Campaign: cleared")
	case c.BestLevel > 0:
		fmt.Printf("Campaign: reached level %d\n", c.BestLevel)
	default:
		fmt.Println("Campaign: not started")
	}
}
