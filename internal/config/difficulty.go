package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower coins, wider catch"
	case DifficultyNormal:
		return "Config as loaded"
	case DifficultyHard:
		return "Faster coins, tighter catch"
	case DifficultyFixed:
		return "Config as loaded, no adjustments"
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed leave the loaded values untouched.
func ApplyPreset(cfg *CoinsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Coin.BaseSpeed *= 0.75
		cfg.Coin.CaptureRadius *= 1.5
		cfg.Spawn.Interval *= 0.8
	case DifficultyHard:
		cfg.Coin.BaseSpeed *= 1.25
		cfg.Coin.SpeedJitter *= 1.5
		cfg.Coin.CaptureRadius *= 0.75
		cfg.Spawn.Interval *= 1.5
	}
}
