// starfall inspects and exercises the difficulty model of the Starfall
// shoot-em-up from the terminal.
//
// Usage:
//
//	starfall waves                 - Show spawn parameters for every stage
//	starfall plan <level> <wave>   - Show a seeded spawn schedule
//	starfall tables                - Show damage, score and powerup tables
//	starfall simulate              - Play a headless campaign run
//	starfall record                - Record a finished run
//	starfall scores                - Show high scores and campaign progress
//	starfall browse                - Interactive balance browser
//	starfall serve                 - Serve the browser over SSH
//
// Global flags:
//
//	--config <path>    - Balance config YAML (default: search path, then embedded)
//	--seed <value>     - RNG seed for reproducible plans
//	--db <path>        - Set database path (default: ~/.starfall/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
	})

	// balanceCfg is loaded before any subcommand runs.
	balanceCfg config.BalanceConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - difficulty and progression tables for the arcade shooter",
	Long: `Starfall computes enemy counts, spawn timing, type odds, hit points,
damage and score values for every level and wave of the campaign.

Available commands:
  waves     - Spawn parameters for every stage
  plan      - Seeded spawn schedule for one wave
  tables    - Damage, score and powerup tables
  simulate  - Headless campaign run
  record    - Record a finished run
  scores    - High scores and campaign progress
  browse    - Interactive balance browser
  serve     - Serve the browser over SSH

Examples:
  starfall waves
  starfall plan 2 3 --seed 42
  starfall simulate --difficulty hard --record
  starfall record --score 12500 --level 3 --wave 2
  starfall serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to balance config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(wavesCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and loads the balance config.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	cfg, err := config.LoadBalance(flagConfig, logger)
	if err != nil {
		return err
	}
	balanceCfg = cfg
	logger.Debug("balance config loaded", "path", flagConfig)
	return nil
}
