// Package run tracks the state of a single playthrough: score, health, lives
// and campaign stage. It applies the balance tables to game events reported
// by the caller; it does no timing or collision detection itself.
package run

import (
	"github.com/vovakirdan/starfall/internal/balance"
	"github.com/vovakirdan/starfall/internal/config"
)

// Result is the summary of a finished (or abandoned) run.
type Result struct {
	Score     int
	Level     int
	Wave      int
	Completed bool
}

// Run is the state of one playthrough.
// A Run is owned by a single game loop and is not safe for concurrent use.
type Run struct {
	tables config.Tables
	player config.PlayerConfig

	stage     balance.Stage
	score     int
	health    int
	lives     int
	kills     map[balance.Tier]int
	powerups  map[balance.PowerupKind]int
	over      bool
	completed bool
}

// New starts a run at the first wave of startLevel. An invalid start level
// falls back to level 1.
func New(tables config.Tables, player config.PlayerConfig, startLevel int) *Run {
	stage, err := balance.Start(startLevel)
	if err != nil {
		stage, _ = balance.Start(balance.MinLevel)
	}

	return &Run{
		tables:   tables,
		player:   player,
		stage:    stage,
		health:   player.MaxHealth,
		lives:    player.Lives,
		kills:    make(map[balance.Tier]int),
		powerups: make(map[balance.PowerupKind]int),
	}
}

// Stage returns the current campaign stage.
func (r *Run) Stage() balance.Stage { return r.stage }

// Score returns the current score.
func (r *Run) Score() int { return r.score }

// Health returns the current health.
func (r *Run) Health() int { return r.health }

// Lives returns the remaining lives, including the current one.
func (r *Run) Lives() int { return r.lives }

// Over reports whether the run has ended, by defeat or by completion.
func (r *Run) Over() bool { return r.over }

// Completed reports whether the final boss was beaten.
func (r *Run) Completed() bool { return r.completed }

// Kills returns the number of enemies destroyed of a tier.
func (r *Run) Kills(tier balance.Tier) int { return r.kills[tier] }

// Powerups returns the number of powerups collected of a kind.
func (r *Run) Powerups(kind balance.PowerupKind) int { return r.powerups[kind] }

// Kill records a destroyed enemy and returns the score awarded.
func (r *Run) Kill(tier balance.Tier) int {
	if r.over {
		return 0
	}
	award := r.tables.Score.Award(tier)
	r.score += award
	r.kills[tier]++
	return award
}

// Hit applies damage from an event. When health runs out a life is lost and
// health refills; losing the last life ends the run. It returns the damage
// applied.
func (r *Run) Hit(kind balance.DamageKind) int {
	if r.over {
		return 0
	}
	dmg := r.tables.Damage.Amount(kind)
	r.health -= dmg
	if r.health <= 0 {
		r.lives--
		if r.lives <= 0 {
			r.lives = 0
			r.health = 0
			r.over = true
		} else {
			r.health = r.player.MaxHealth
		}
	}
	return dmg
}

// Collect applies a collected powerup. Life grants an extra life and shield
// restores full health; the other kinds only affect the ship's weapons and
// movement, which the caller owns, so they are just counted.
func (r *Run) Collect(kind balance.PowerupKind) {
	if r.over {
		return
	}
	r.powerups[kind]++
	switch kind {
	case balance.PowerupLife:
		r.lives++
	case balance.PowerupShield:
		r.health = r.player.MaxHealth
	}
}

// AdvanceStage moves to the next stage once the current one is cleared.
// Clearing the final boss completes the run. It returns the new stage and
// false when there is none.
func (r *Run) AdvanceStage() (balance.Stage, bool) {
	if r.over {
		return r.stage, false
	}
	next, ok := balance.Next(r.stage)
	if !ok {
		r.completed = true
		r.over = true
		return r.stage, false
	}
	r.stage = next
	return next, true
}

// HealthBarWidth returns the HUD health bar width in pixels.
func (r *Run) HealthBarWidth() float64 {
	return balance.HealthBarWidth(float64(r.health), float64(r.player.MaxHealth))
}

// Result summarises the run for the scoreboard.
func (r *Run) Result() Result {
	return Result{
		Score:     r.score,
		Level:     r.stage.Level,
		Wave:      r.stage.Wave,
		Completed: r.completed,
	}
}
