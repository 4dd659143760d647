package config

import (
	_ "embed"

	"github.com/vovakirdan/starfall/internal/balance"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// DefaultBalanceConfig returns the stock balance configuration, built from
// the literal tables of the balance package.
func DefaultBalanceConfig() BalanceConfig {
	d := balance.DefaultDamage()
	s := balance.DefaultScore()
	p := balance.DefaultPowerup()

	weights := make(map[string]float64, len(p.Weights))
	for kind, w := range p.Weights {
		weights[kind.String()] = w
	}

	return BalanceConfig{
		Damage: DamageConfig{
			EnemyCollision: d.EnemyCollision,
			BossCollision:  d.BossCollision,
			BulletHit:      d.BulletHit,
		},
		Score: ScoreConfig{
			SmallEnemy:  s.SmallEnemy,
			MediumEnemy: s.MediumEnemy,
			BigEnemy:    s.BigEnemy,
			Boss:        s.Boss,
		},
		Powerup: PowerupConfig{
			DropRate: p.DropRate,
			Weights:  weights,
		},
		Player: PlayerConfig{
			MaxHealth: 100,
			Lives:     3,
		},
	}
}

// DefaultYAML returns the embedded default balance YAML.
func DefaultYAML() []byte {
	return defaultBalanceYAML
}
