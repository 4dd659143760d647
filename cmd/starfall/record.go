package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/balance"
	"github.com/vovakirdan/starfall/internal/progress"
	"github.com/vovakirdan/starfall/internal/run"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagRecScore     int
	flagRecLevel     int
	flagRecWave      int
	flagRecCompleted bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a finished run",
	Long: `Stores the result of a run in the scores database and updates campaign
progress. Reports when the score beats the previous best.

Examples:
  starfall record --score 4200 --level 2 --wave 1
  starfall record --score 31000 --level 3 --wave 3 --completed`,
	Args: cobra.NoArgs,
	Run:  runRecord,
}

func init() {
	recordCmd.Flags().IntVar(&flagRecScore, "score", 0, "Final score")
	recordCmd.Flags().IntVar(&flagRecLevel, "level", 1, "Level reached")
	recordCmd.Flags().IntVar(&flagRecWave, "wave", 1, "Wave reached")
	recordCmd.Flags().BoolVar(&flagRecCompleted, "completed", false, "The final boss was beaten")
}

func runRecord(_ *cobra.Command, _ []string) {
	if !balance.IsValidLevel(flagRecLevel) {
		fail("invalid level %d (want %d-%d)", flagRecLevel, balance.MinLevel, balance.MaxLevel)
	}
	if flagRecWave < 1 || flagRecScore < 0 {
		fail("wave must be positive and score non-negative")
	}

	recordResult(run.Result{
		Score:     flagRecScore,
		Level:     flagRecLevel,
		Wave:      flagRecWave,
		Completed: flagRecCompleted,
	})
}

// recordResult saves a run and updates campaign progress.
func recordResult(res run.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open scores database: %v", err)
	}
	defer store.Close()

	newHigh, err := store.RecordResult(res)
	if err != nil {
		logger.Error("could not record score", "error", err)
		return
	}
	if newHigh {
		fmt.Println("NEW HIGH SCORE")
	}
	fmt.Printf("Recorded %d (level %d, wave %d)\n", res.Score, res.Level, res.Wave)

	mgr := openProgress()
	changed := mgr.RecordLevel(res.Level)
	if res.Completed {
		mgr.MarkCompleted()
		changed = true
	}
	if changed {
		if err := mgr.Save(); err != nil {
			logger.Warn("could not save progress", "error", err)
		}
	}
}

// openProgress opens campaign progress, falling back to memory only.
func openProgress() *progress.Manager {
	data, err := progress.Open()
	if err != nil {
		logger.Warn("progress will not persist", "error", err)
	}
	mgr, err := progress.NewManager(data)
	if err != nil {
		logger.Warn("could not load progress", "error", err)
	}
	return mgr
}
