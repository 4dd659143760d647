package run

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/balance"
	"github.com/vovakirdan/starfall/internal/config"
)

func newTestRun(startLevel int) *Run {
	cfg := config.DefaultBalanceConfig()
	return New(cfg.Tables(), cfg.Player, startLevel)
}

func TestNewRun(t *testing.T) {
	r := newTestRun(2)

	if r.Stage() != (balance.Stage{Level: 2, Wave: 1}) {
		t.Errorf("Expected to start at L2W1, got %s", r.Stage())
	}
	if r.Health() != 100 || r.Lives() != 3 {
		t.Errorf("Expected 100 health and 3 lives, got %d/%d", r.Health(), r.Lives())
	}
	if r.HealthBarWidth() != 196 {
		t.Errorf("Expected full health bar, got %v", r.HealthBarWidth())
	}
}

func TestNewRunInvalidLevel(t *testing.T) {
	for _, level := range []int{0, 4, -2} {
		r := newTestRun(level)
		if r.Stage().Level != 1 {
			t.Errorf("Start level %d should fall back to 1, got %d", level, r.Stage().Level)
		}
	}
}

func TestKillScoring(t *testing.T) {
	r := newTestRun(1)

	r.Kill(balance.TierSmall)
	r.Kill(balance.TierSmall)
	r.Kill(balance.TierMedium)
	r.Kill(balance.TierBig)
	award := r.Kill(balance.TierBoss)

	if award != 2000 {
		t.Errorf("Expected boss award 2000, got %d", award)
	}
	if r.Score() != 100+100+200+500+2000 {
		t.Errorf("Unexpected score %d", r.Score())
	}
	if r.Kills(balance.TierSmall) != 2 {
		t.Errorf("Expected 2 small kills, got %d", r.Kills(balance.TierSmall))
	}
}

func TestHitAndLives(t *testing.T) {
	r := newTestRun(1)

	r.Hit(balance.DamageBulletHit) // 100 -> 80
	if r.Health() != 80 {
		t.Errorf("Expected 80 health, got %d", r.Health())
	}
	if r.HealthBarWidth() != 80.0/100*196 {
		t.Errorf("Unexpected health bar width %v", r.HealthBarWidth())
	}

	r.Hit(balance.DamageEnemyCollision) // 80 -> 30
	r.Hit(balance.DamageBossCollision)  // 30 -> 0, life lost
	if r.Lives() != 2 || r.Health() != 100 {
		t.Errorf("Expected a life lost and health refilled, got lives=%d health=%d", r.Lives(), r.Health())
	}

	// Burn through the remaining two lives.
	for i := 0; i < 4; i++ {
		r.Hit(balance.DamageEnemyCollision)
	}
	if !r.Over() {
		t.Fatal("Expected run to be over after losing all lives")
	}
	if r.Completed() {
		t.Error("A lost run should not be completed")
	}
	if r.Lives() != 0 || r.HealthBarWidth() != 0 {
		t.Errorf("Expected no lives and empty bar, got %d/%v", r.Lives(), r.HealthBarWidth())
	}

	if r.Hit(balance.DamageBulletHit) != 0 || r.Kill(balance.TierBig) != 0 {
		t.Error("No events should apply after the run is over")
	}
}

func TestCollect(t *testing.T) {
	r := newTestRun(1)

	r.Collect(balance.PowerupLife)
	if r.Lives() != 4 {
		t.Errorf("Expected 4 lives after life powerup, got %d", r.Lives())
	}

	r.Hit(balance.DamageEnemyCollision)
	r.Collect(balance.PowerupShield)
	if r.Health() != 100 {
		t.Errorf("Expected shield to restore health, got %d", r.Health())
	}

	r.Collect(balance.PowerupWeapon)
	r.Collect(balance.PowerupWeapon)
	if r.Powerups(balance.PowerupWeapon) != 2 {
		t.Errorf("Expected 2 weapon powerups, got %d", r.Powerups(balance.PowerupWeapon))
	}
}

func TestAdvanceToVictory(t *testing.T) {
	r := newTestRun(1)

	stages := 1
	for {
		_, ok := r.AdvanceStage()
		if !ok {
			break
		}
		stages++
	}

	if stages != len(balance.Campaign()) {
		t.Errorf("Expected %d stages, visited %d", len(balance.Campaign()), stages)
	}
	if !r.Completed() || !r.Over() {
		t.Error("Expected run to be completed after the final boss")
	}

	res := r.Result()
	if !res.Completed || res.Level != 3 {
		t.Errorf("Unexpected result %+v", res)
	}
}
