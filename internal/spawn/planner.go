// Package spawn turns the balance model into concrete spawn schedules: which
// enemy appears when, with how many hit points, and whether a destroyed
// enemy drops a powerup.
package spawn

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starfall/internal/balance"
)

// ErrInvalidWave is returned for wave numbers outside 1..MaxPlanWave.
var ErrInvalidWave = errors.New("spawn: invalid wave")

// MaxPlanWave is the highest wave the planner schedules. A schedule holds
// one entry per enemy, so its size grows with the wave.
const MaxPlanWave = 1000

// Enemy is a single scheduled spawn.
type Enemy struct {
	Index int          // Position in the wave, from 0
	AtMs  int          // Offset from wave start in milliseconds
	Tier  balance.Tier // Enemy class
	HP    int          // Hit points at spawn
}

// Wave is the spawn schedule of one wave.
type Wave struct {
	Level         int
	Wave          int
	Count         int
	DelayMs       int
	Probabilities balance.Probabilities
	Enemies       []Enemy
}

// DurationMs returns the offset of the last spawn.
func (w Wave) DurationMs() int {
	if len(w.Enemies) == 0 {
		return 0
	}
	return w.Enemies[len(w.Enemies)-1].AtMs
}

// TierCounts returns how many enemies of each tier the wave holds.
func (w Wave) TierCounts() map[balance.Tier]int {
	counts := make(map[balance.Tier]int, 3)
	for _, e := range w.Enemies {
		counts[e.Tier]++
	}
	return counts
}

// Planner builds spawn schedules from a seed.
// A Planner is not safe for concurrent use; give each game its own.
type Planner struct {
	powerup balance.PowerupConfig
	rng     *RNG
}

// NewPlanner creates a planner drawing powerups from cfg.
func NewPlanner(cfg balance.PowerupConfig, seed int64) *Planner {
	return &Planner{
		powerup: cfg,
		rng:     NewRNG(seed),
	}
}

// Reset reseeds the planner.
func (p *Planner) Reset(seed int64) {
	p.rng = NewRNG(seed)
}

// Plan schedules a wave. Enemy i spawns at i*SpawnDelayMs; its tier is
// drawn from the wave's type probabilities.
func (p *Planner) Plan(level, wave int) (Wave, error) {
	if !balance.IsValidLevel(level) {
		return Wave{}, fmt.Errorf("%w: %d", balance.ErrInvalidLevel, level)
	}
	if wave < 1 || wave > MaxPlanWave {
		return Wave{}, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidWave, wave, MaxPlanWave)
	}

	w := Wave{
		Level:         level,
		Wave:          wave,
		Count:         balance.EnemyCount(level, wave),
		DelayMs:       balance.SpawnDelayMs(level, wave),
		Probabilities: balance.EnemyTypeProbabilities(level, wave),
	}

	w.Enemies = make([]Enemy, w.Count)
	for i := range w.Enemies {
		tier := w.Probabilities.Pick(p.rng.Float64())
		w.Enemies[i] = Enemy{
			Index: i,
			AtMs:  i * w.DelayMs,
			Tier:  tier,
			HP:    balance.EnemyHealth(tier, level),
		}
	}

	return w, nil
}

// PlanBoss returns the boss that closes a level.
func (p *Planner) PlanBoss(level int) (Enemy, error) {
	if !balance.IsValidLevel(level) {
		return Enemy{}, fmt.Errorf("%w: %d", balance.ErrInvalidLevel, level)
	}
	return Enemy{
		Tier: balance.TierBoss,
		HP:   balance.BossHP(level),
	}, nil
}

// RollDrop decides whether a destroyed enemy drops a powerup, and which.
func (p *Planner) RollDrop() (balance.PowerupKind, bool) {
	if p.rng.Float64() >= p.powerup.DropRate {
		return 0, false
	}
	return p.powerup.Pick(p.rng.Float64()), true
}
