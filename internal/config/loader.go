package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const balanceFile = "balance.yaml"

// LoadBalance loads the balance configuration.
// Search order: customPath -> ~/.starfall/configs/balance.yaml -> ./configs/balance.yaml -> embedded default
//
// Files are merged over the defaults, so a file may override a single table.
// A powerup weights block replaces the default weights as a whole. A custom
// path must exist and parse. Files found along the search path are skipped
// if they fail to parse or validate, with a warning on logger (nil is
// silent). Whatever is returned has passed Validate.
func LoadBalance(customPath string, logger *log.Logger) (BalanceConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readBalance(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", balanceFile)}
	if userCfgPath := userConfigPath(balanceFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := readBalance(path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			if logger != nil {
				logger.Warn("skipping balance config", "path", path, "error", err)
			}
			continue
		}
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg BalanceConfig
	if err := yaml.Unmarshal(defaultBalanceYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBalanceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readBalance reads a balance YAML file and merges it over the defaults.
func readBalance(path string) (BalanceConfig, error) {
	cfg := DefaultBalanceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	defaultWeights := cfg.Powerup.Weights
	cfg.Powerup.Weights = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Powerup.Weights == nil {
		cfg.Powerup.Weights = defaultWeights
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", "configs", filename)
}
