package balance

import (
	"fmt"
	"strings"
)

// Tier identifies an enemy class.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierBig
	TierBoss
)

// String returns the name of the tier.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierBig:
		return "big"
	case TierBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyHealth returns the hit points of an enemy of the given tier.
// Small and medium enemies do not scale with the level.
func EnemyHealth(tier Tier, level int) int {
	switch tier {
	case TierMedium:
		return 2
	case TierBig:
		return BigEnemyHealth(level)
	case TierBoss:
		return BossHP(level)
	default:
		return 1
	}
}

// DamageKind identifies an event that hurts the player.
type DamageKind int

const (
	DamageEnemyCollision DamageKind = iota
	DamageBossCollision
	DamageBulletHit
)

// String returns the name of the damage kind.
func (k DamageKind) String() string {
	switch k {
	case DamageEnemyCollision:
		return "enemy_collision"
	case DamageBossCollision:
		return "boss_collision"
	case DamageBulletHit:
		return "bullet_hit"
	default:
		return "unknown"
	}
}

// DamageTable holds the damage dealt to the player per event.
type DamageTable struct {
	EnemyCollision int
	BossCollision  int
	BulletHit      int
}

// DefaultDamage returns the stock damage table.
func DefaultDamage() DamageTable {
	return DamageTable{
		EnemyCollision: 50,
		BossCollision:  30,
		BulletHit:      20,
	}
}

// Amount returns the damage for an event kind, or 0 for unknown kinds.
func (d DamageTable) Amount(kind DamageKind) int {
	switch kind {
	case DamageEnemyCollision:
		return d.EnemyCollision
	case DamageBossCollision:
		return d.BossCollision
	case DamageBulletHit:
		return d.BulletHit
	default:
		return 0
	}
}

// ScoreTable holds the score awarded per destroyed enemy tier.
type ScoreTable struct {
	SmallEnemy  int
	MediumEnemy int
	BigEnemy    int
	Boss        int
}

// DefaultScore returns the stock score table.
func DefaultScore() ScoreTable {
	return ScoreTable{
		SmallEnemy:  100,
		MediumEnemy: 200,
		BigEnemy:    500,
		Boss:        2000,
	}
}

// Award returns the score for destroying an enemy of the given tier.
func (s ScoreTable) Award(tier Tier) int {
	switch tier {
	case TierSmall:
		return s.SmallEnemy
	case TierMedium:
		return s.MediumEnemy
	case TierBig:
		return s.BigEnemy
	case TierBoss:
		return s.Boss
	default:
		return 0
	}
}

// PowerupKind identifies a powerup.
type PowerupKind int

const (
	PowerupWeapon PowerupKind = iota
	PowerupShield
	PowerupSpeed
	PowerupLife
	PowerupFireball
	powerupCount
)

// String returns the name of the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupWeapon:
		return "weapon"
	case PowerupShield:
		return "shield"
	case PowerupSpeed:
		return "speed"
	case PowerupLife:
		return "life"
	case PowerupFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// PowerupKinds returns every powerup kind in a fixed order.
func PowerupKinds() []PowerupKind {
	kinds := make([]PowerupKind, 0, powerupCount)
	for k := PowerupWeapon; k < powerupCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParsePowerupKind parses a powerup name as returned by String.
func ParsePowerupKind(name string) (PowerupKind, error) {
	for _, k := range PowerupKinds() {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("balance: unknown powerup %q", name)
}

// PowerupConfig holds the chance that a destroyed enemy drops a powerup and
// the relative weight of each kind once a drop happens.
type PowerupConfig struct {
	DropRate float64
	Weights  map[PowerupKind]float64
}

// DefaultPowerup returns the stock powerup configuration.
func DefaultPowerup() PowerupConfig {
	return PowerupConfig{
		DropRate: 0.20,
		Weights: map[PowerupKind]float64{
			PowerupWeapon:   0.30,
			PowerupShield:   0.25,
			PowerupSpeed:    0.20,
			PowerupLife:     0.05,
			PowerupFireball: 0.20,
		},
	}
}

// TotalWeight returns the sum of all weights.
func (p PowerupConfig) TotalWeight() float64 {
	total := 0.0
	for _, w := range p.Weights {
		total += w
	}
	return total
}

// Pick maps roll in [0, 1) to a powerup kind according to the weights.
// With no positive weight it returns PowerupWeapon.
func (p PowerupConfig) Pick(roll float64) PowerupKind {
	options := make([]weighted[PowerupKind], 0, len(p.Weights))
	for _, k := range PowerupKinds() {
		options = append(options, weighted[PowerupKind]{value: k, weight: p.Weights[k]})
	}
	return pick(options, roll, PowerupWeapon)
}

// Pick maps roll in [0, 1) to an enemy tier according to the odds.
func (p Probabilities) Pick(roll float64) Tier {
	return pick([]weighted[Tier]{
		{value: TierBig, weight: p.Big},
		{value: TierMedium, weight: p.Medium},
		{value: TierSmall, weight: p.Small},
	}, roll, TierSmall)
}
