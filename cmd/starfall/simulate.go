package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/balance"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/run"
	"github.com/vovakirdan/starfall/internal/spawn"
)

var (
	flagSimDifficulty string
	flagSimHitChance  float64
	flagSimRuns       int
	flagSimRecord     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless campaign runs",
	Long: `Plays the campaign without graphics. Every spawned enemy is either
destroyed or, with --hit-chance probability, hits the player by ramming or
shooting. Destroyed enemies roll for powerup drops, which are collected at
once. Run i of --runs uses seed+i.

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 2
  hard   - Start at level 3

Examples:
  starfall simulate
  starfall simulate --difficulty hard --hit-chance 0.1
  starfall simulate --seed 7 --runs 20 --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().Float64Var(&flagSimHitChance, "hit-chance", 0.05, "Chance that an enemy hits the player instead of dying")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs to play")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the results in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	preset, err := config.ParseDifficultyPreset(flagSimDifficulty)
	if err != nil {
		fail("%v", err)
	}
	if flagSimRuns < 1 {
		fail("--runs must be at least 1")
	}

	startLevel := config.StartLevelForPreset(preset)
	seed := resolveSeed()
	sim := newSimulator(balanceCfg, seed)

	cleared := 0
	for i := 0; i < flagSimRuns; i++ {
		runSeed := seed + int64(i)
		sim.reseed(runSeed)
		res := sim.play(startLevel, flagSimHitChance)

		outcome := "destroyed"
		if res.Completed {
			outcome = "campaign cleared"
			cleared++
		}
		fmt.Printf("Run (seed %d): %s at level %d wave %d, score %d\n", runSeed, outcome, res.Level, res.Wave, res.Score)

		if flagSimRecord {
			recordResult(res)
		}
	}

	if flagSimRuns > 1 {
		fmt.Printf("\nCleared %d of %d runs\n", cleared, flagSimRuns)
	}
}

// simulator plays headless runs against one balance config.
type simulator struct {
	cfg     config.BalanceConfig
	tables  config.Tables
	planner *spawn.Planner
	dice    *spawn.RNG
}

func newSimulator(cfg config.BalanceConfig, seed int64) *simulator {
	tables := cfg.Tables()
	return &simulator{
		cfg:     cfg,
		tables:  tables,
		planner: spawn.NewPlanner(tables.Powerup, seed),
		dice:    spawn.NewRNG(seed + 1),
	}
}

// reseed restarts both random streams so the next run replays seed.
func (s *simulator) reseed(seed int64) {
	s.planner.Reset(seed)
	s.dice = spawn.NewRNG(seed + 1)
}

// hitKind picks how a regular enemy hurts the player.
func (s *simulator) hitKind() balance.DamageKind {
	if s.dice.Intn(2) == 0 {
		return balance.DamageEnemyCollision
	}
	return balance.DamageBulletHit
}

// play runs one campaign from startLevel to the end.
func (s *simulator) play(startLevel int, hitChance float64) run.Result {
	r := run.New(s.tables, s.cfg.Player, startLevel)

	for !r.Over() {
		st := r.Stage()

		if st.Boss {
			boss, err := s.planner.PlanBoss(st.Level)
			if err != nil {
				logger.Error("cannot plan boss", "stage", st, "error", err)
				break
			}
			// The boss rams the player once per ten points of its HP unless dodged.
			for i := 0; i < boss.HP/10 && !r.Over(); i++ {
				if s.dice.Float64() < hitChance {
					r.Hit(balance.DamageBossCollision)
				}
			}
			if r.Over() {
				break
			}
			r.Kill(balance.TierBoss)
		} else {
			w, err := s.planner.Plan(st.Level, st.Wave)
			if err != nil {
				logger.Error("cannot plan wave", "stage", st, "error", err)
				break
			}
			for _, e := range w.Enemies {
				if r.Over() {
					break
				}
				if s.dice.Float64() < hitChance {
					r.Hit(s.hitKind())
					continue
				}
				r.Kill(e.Tier)
				if kind, ok := s.planner.RollDrop(); ok {
					r.Collect(kind)
				}
			}
		}

		if r.Over() {
			break
		}
		logger.Debug("stage cleared", "stage", st, "score", r.Score(), "lives", r.Lives(),
			"bar", fmt.Sprintf("%.0fpx", r.HealthBarWidth()))
		r.AdvanceStage()
	}

	return r.Result()
}

// simulate plays a single run with a fresh simulator.
func simulate(cfg config.BalanceConfig, startLevel int, hitChance float64, seed int64) run.Result {
	return newSimulator(cfg, seed).play(startLevel, hitChance)
}
