package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/starfall/internal/balance"
)

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset parses a preset name. The empty string means easy.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "":
		return DifficultyEasy, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// StartLevelForPreset returns the campaign level a preset starts on.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return balance.MaxLevel
	default:
		return balance.MinLevel
	}
}
