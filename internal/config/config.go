// Package config provides YAML-based loading of the balance tables and the
// difficulty presets used to pick a starting level.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starfall/internal/balance"
)

// weightTolerance is how far the powerup weights may drift from 1.
const weightTolerance = 0.001

// BalanceConfig contains every tunable table of the game.
type BalanceConfig struct {
	Damage  DamageConfig  `yaml:"damage"`
	Score   ScoreConfig   `yaml:"score"`
	Powerup PowerupConfig `yaml:"powerup"`
	Player  PlayerConfig  `yaml:"player"`
}

// DamageConfig defines damage dealt to the player per event.
type DamageConfig struct {
	EnemyCollision int `yaml:"enemy_collision"`
	BossCollision  int `yaml:"boss_collision"`
	BulletHit      int `yaml:"bullet_hit"`
}

// ScoreConfig defines the score per destroyed enemy tier.
type ScoreConfig struct {
	SmallEnemy  int `yaml:"small_enemy"`
	MediumEnemy int `yaml:"medium_enemy"`
	BigEnemy    int `yaml:"big_enemy"`
	Boss        int `yaml:"boss"`
}

// PowerupConfig defines powerup drop chance and kind weights.
type PowerupConfig struct {
	DropRate float64            `yaml:"drop_rate"` // 0.0 to 1.0
	Weights  map[string]float64 `yaml:"weights"`   // keyed by powerup name, sums to 1
}

// PlayerConfig defines the player's starting resources.
type PlayerConfig struct {
	MaxHealth int `yaml:"max_health"`
	Lives     int `yaml:"lives"`
}

// Tables holds the balance tables in the form the game code consumes.
type Tables struct {
	Damage  balance.DamageTable
	Score   balance.ScoreTable
	Powerup balance.PowerupConfig
}

// Validate checks the config for values the game cannot work with.
func (c BalanceConfig) Validate() error {
	d := c.Damage
	if d.EnemyCollision < 0 || d.BossCollision < 0 || d.BulletHit < 0 {
		return fmt.Errorf("config: damage values must not be negative")
	}

	s := c.Score
	if s.SmallEnemy < 0 || s.MediumEnemy < 0 || s.BigEnemy < 0 || s.Boss < 0 {
		return fmt.Errorf("config: score values must not be negative")
	}

	if c.Powerup.DropRate < 0 || c.Powerup.DropRate > 1 {
		return fmt.Errorf("config: powerup drop_rate %v outside [0, 1]", c.Powerup.DropRate)
	}

	total := 0.0
	for name, w := range c.Powerup.Weights {
		if _, err := balance.ParsePowerupKind(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if w < 0 {
			return fmt.Errorf("config: powerup weight %q must not be negative", name)
		}
		total += w
	}
	if math.Abs(total-1) >= weightTolerance {
		return fmt.Errorf("config: powerup weights sum to %.3f, want 1", total)
	}

	// HealthBarWidth needs a positive maximum.
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("config: player max_health must be positive")
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("config: player lives must be at least 1")
	}

	return nil
}

// Tables converts the config into balance tables.
// Unknown powerup names are skipped; call Validate first to reject them.
func (c BalanceConfig) Tables() Tables {
	weights := make(map[balance.PowerupKind]float64, len(c.Powerup.Weights))
	for name, w := range c.Powerup.Weights {
		if kind, err := balance.ParsePowerupKind(name); err == nil {
			weights[kind] = w
		}
	}

	return Tables{
		Damage: balance.DamageTable{
			EnemyCollision: c.Damage.EnemyCollision,
			BossCollision:  c.Damage.BossCollision,
			BulletHit:      c.Damage.BulletHit,
		},
		Score: balance.ScoreTable{
			SmallEnemy:  c.Score.SmallEnemy,
			MediumEnemy: c.Score.MediumEnemy,
			BigEnemy:    c.Score.BigEnemy,
			Boss:        c.Score.Boss,
		},
		Powerup: balance.PowerupConfig{
			DropRate: c.Powerup.DropRate,
			Weights:  weights,
		},
	}
}
