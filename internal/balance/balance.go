// Package balance holds the difficulty and progression model of the game:
// pure functions mapping a level and wave to spawn counts, spawn timing,
// enemy type odds and hit points, plus the fixed damage, score and powerup
// tables.
//
// Nothing in this package keeps state. Every function may be called from
// any goroutine.
package balance

import "math"

// Level bounds. Levels outside this range are not part of the campaign.
const (
	MinLevel = 1
	MaxLevel = 3
)

// HealthBarMaxWidth is the width of a full health bar in pixels.
const HealthBarMaxWidth = 196.0

// Probability caps for the big and medium tiers.
const (
	BigChanceCap    = 0.30
	MediumChanceCap = 0.50
)

// Tuning constants. Delays are in milliseconds.
const (
	minSpawnDelayMs       = 250
	minSpawnDelayFinalMs  = 180
	finalLevelDelayCutMs  = 50
	defaultBossHP         = 50
	bigEnemyBaseHealth    = 3
	firstLevelWaveCount   = 2
	defaultLevelWaveCount = 3
)

// Probabilities is the chance of each enemy tier being chosen for a spawn.
type Probabilities struct {
	Big    float64
	Medium float64
	Small  float64
}

// Sum returns Big + Medium + Small.
func (p Probabilities) Sum() float64 {
	return p.Big + p.Medium + p.Small
}

// EnemyCount returns how many enemies spawn in the given wave.
// Levels 2 and 3 get a flat bonus on top of the linear base.
func EnemyCount(level, wave int) int {
	count := 8 + level*4 + wave*4
	switch level {
	case 2:
		return count + 4
	case 3:
		return count + 6
	default:
		return count
	}
}

// SpawnDelayMs returns the delay between two enemy spawns in milliseconds.
// The floor is 250ms. Level 3 takes a further 50ms off the floored value and
// is floored again at 180ms, so in practice it bottoms out at 200ms.
func SpawnDelayMs(level, wave int) int {
	delay := max(minSpawnDelayMs, 800-level*80-wave*40)
	if level == 3 {
		delay = max(minSpawnDelayFinalMs, delay-finalLevelDelayCutMs)
	}
	return delay
}

// EnemyTypeProbabilities returns the tier odds for a wave.
//
// Big and medium are clamped independently, then small takes whatever is
// left, so the three always sum to 1. For levels 1-3 small never drops below
// 0.20.
func EnemyTypeProbabilities(level, wave int) Probabilities {
	big := math.Min(0.08+float64(level)*0.06+float64(wave)*0.03, BigChanceCap)
	medium := math.Min(0.25+float64(level)*0.08+float64(wave)*0.04, MediumChanceCap)
	return Probabilities{
		Big:    big,
		Medium: medium,
		Small:  1 - big - medium,
	}
}

// BossHP returns the boss hit points for a level. Unknown levels get the
// level 1 value.
func BossHP(level int) int {
	switch level {
	case 1:
		return 50
	case 2:
		return 75
	case 3:
		return 100
	default:
		return defaultBossHP
	}
}

// BigEnemyHealth returns the hit points of a big enemy on a level.
func BigEnemyHealth(level int) int {
	return bigEnemyBaseHealth + level
}

// WavesPerLevel returns the number of waves before the boss. Level 1 is a
// short level; every other level has three waves.
func WavesPerLevel(level int) int {
	if level == 1 {
		return firstLevelWaveCount
	}
	return defaultLevelWaveCount
}

// IsValidLevel reports whether level is a campaign level.
func IsValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// HealthBarWidth projects health onto the HUD bar, in pixels.
// The result is never negative. A non-positive maxHealth yields 0.
func HealthBarWidth(health, maxHealth float64) float64 {
	if maxHealth <= 0 {
		return 0
	}
	return math.Max(0, (health/maxHealth)*HealthBarMaxWidth)
}
