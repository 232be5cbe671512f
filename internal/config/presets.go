package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// timingScale returns the percentage applied to the reveal and scramble
// timings for a preset.
func timingScale(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 60
	default:
		return 100
	}
}

// ApplyMemoryPreset modifies the config based on a difficulty preset.
// Easy gives more time to memorize and follow the scrambles; hard gives less.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	scale := timingScale(preset)
	if scale == 100 {
		return
	}

	cfg.Timing.RevealPerButtonMs = cfg.Timing.RevealPerButtonMs * scale / 100
	cfg.Timing.ScrambleIntervalMs = max(cfg.Timing.ScrambleIntervalMs*scale/100, 1)
	cfg.Timing.EnableDelayMs = cfg.Timing.EnableDelayMs * scale / 100
}
