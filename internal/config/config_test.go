package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starfall/internal/balance"
)

func TestEmbeddedDefaultsMatchTables(t *testing.T) {
	var cfg BalanceConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultBalanceConfig()) {
		t.Errorf("Embedded YAML differs from DefaultBalanceConfig:\n%+v\n%+v", cfg, DefaultBalanceConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultBalanceConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestTablesConversion(t *testing.T) {
	tables := DefaultBalanceConfig().Tables()

	if tables.Damage != balance.DefaultDamage() {
		t.Errorf("Damage table mismatch: %+v", tables.Damage)
	}
	if tables.Score != balance.DefaultScore() {
		t.Errorf("Score table mismatch: %+v", tables.Score)
	}
	if !reflect.DeepEqual(tables.Powerup, balance.DefaultPowerup()) {
		t.Errorf("Powerup config mismatch: %+v", tables.Powerup)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BalanceConfig)
		want   string
	}{
		{"negative damage", func(c *BalanceConfig) { c.Damage.BulletHit = -1 }, "damage"},
		{"negative score", func(c *BalanceConfig) { c.Score.Boss = -5 }, "score"},
		{"drop rate above one", func(c *BalanceConfig) { c.Powerup.DropRate = 1.5 }, "drop_rate"},
		{"unknown powerup", func(c *BalanceConfig) { c.Powerup.Weights["laser"] = 0 }, "unknown powerup"},
		{"negative weight", func(c *BalanceConfig) {
			c.Powerup.Weights["life"] = -0.05
			c.Powerup.Weights["weapon"] = 0.40
		}, "negative"},
		{"weights off", func(c *BalanceConfig) { c.Powerup.Weights["life"] = 0.5 }, "sum"},
		{"zero max health", func(c *BalanceConfig) { c.Player.MaxHealth = 0 }, "max_health"},
		{"no lives", func(c *BalanceConfig) { c.Player.Lives = 0 }, "lives"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBalanceConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadBalanceCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
damage:
  enemy_collision: 40
  boss_collision: 25
  bullet_hit: 10
score:
  small_enemy: 150
  medium_enemy: 300
  big_enemy: 600
  boss: 5000
powerup:
  drop_rate: 0.5
  weights:
    weapon: 0.5
    life: 0.5
player:
  max_health: 200
  lives: 1
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBalance(path, nil)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}

	if cfg.Damage.BulletHit != 10 {
		t.Errorf("Expected bullet_hit 10, got %d", cfg.Damage.BulletHit)
	}
	if cfg.Score.Boss != 5000 {
		t.Errorf("Expected boss score 5000, got %d", cfg.Score.Boss)
	}
	if cfg.Player.MaxHealth != 200 {
		t.Errorf("Expected max_health 200, got %d", cfg.Player.MaxHealth)
	}

	tables := cfg.Tables()
	if math.Abs(tables.Powerup.TotalWeight()-1) >= 0.001 {
		t.Errorf("Expected weights to sum to 1, got %f", tables.Powerup.TotalWeight())
	}
	if tables.Powerup.Weights[balance.PowerupShield] != 0 {
		t.Error("Shield should have no weight in custom config")
	}
}

func TestLoadBalanceCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBalance(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("damage: [not a map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadBalance(bad, nil); err == nil {
		t.Error("Expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("powerup:\n  drop_rate: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadBalance(invalid, nil); err == nil {
		t.Error("Expected error for invalid custom config")
	}
}

func TestLoadBalanceUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".starfall", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	cfg := DefaultBalanceConfig()
	cfg.Score.SmallEnemy = 123
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "balance.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := LoadBalance("", nil)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}
	if loaded.Score.SmallEnemy != 123 {
		t.Errorf("Expected user config to be used, got small_enemy %d", loaded.Score.SmallEnemy)
	}
}

func TestLoadBalanceFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBalance("", nil)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBalanceConfig()) {
		t.Errorf("Expected embedded defaults, got %+v", cfg)
	}
}

// writeUserBalance writes data as the user balance config under a fresh HOME.
func writeUserBalance(t *testing.T, data string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".starfall", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	path := filepath.Join(dir, "balance.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadBalancePartialFileMerges(t *testing.T) {
	writeUserBalance(t, "damage:\n  bullet_hit: 35\n")

	cfg, err := LoadBalance("", nil)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}

	want := DefaultBalanceConfig()
	want.Damage.BulletHit = 35
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Expected defaults with bullet_hit 35, got %+v", cfg)
	}
}

func TestLoadBalanceWeightsReplaceDefaults(t *testing.T) {
	writeUserBalance(t, "powerup:\n  weights:\n    shield: 1.0\n")

	cfg, err := LoadBalance("", nil)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}
	if len(cfg.Powerup.Weights) != 1 || cfg.Powerup.Weights["shield"] != 1.0 {
		t.Errorf("Expected only shield weight, got %v", cfg.Powerup.Weights)
	}
	if cfg.Powerup.DropRate != DefaultBalanceConfig().Powerup.DropRate {
		t.Errorf("Expected default drop rate, got %v", cfg.Powerup.DropRate)
	}
}

func TestLoadBalanceWarnsOnSkippedFile(t *testing.T) {
	path := writeUserBalance(t, "player:\n  lives: 0\n")

	var buf bytes.Buffer
	logger := log.New(&buf)

	cfg, err := LoadBalance("", logger)
	if err != nil {
		t.Fatalf("LoadBalance() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBalanceConfig()) {
		t.Errorf("Expected embedded defaults after skipping, got %+v", cfg)
	}

	out := buf.String()
	if !strings.Contains(out, "skipping balance config") || !strings.Contains(out, path) {
		t.Errorf("Expected a warning naming %s, got %q", path, out)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"", 1},
		{"easy", 1},
		{"Normal", 2},
		{"hard", 3},
	}

	for _, tt := range tests {
		preset, err := ParseDifficultyPreset(tt.name)
		if err != nil {
			t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tt.name, err)
		}
		if got := StartLevelForPreset(preset); got != tt.level {
			t.Errorf("StartLevelForPreset(%q) = %d, want %d", tt.name, got, tt.level)
		}
	}

	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}
