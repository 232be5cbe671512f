// Package config provides YAML-based configuration loading and difficulty
// presets for the memory game.
package config

import (
	"fmt"
	"time"
)

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Buttons  ButtonsConfig  `yaml:"buttons"`
	Timing   TimingConfig   `yaml:"timing"`
	Layout   LayoutConfig   `yaml:"layout"`
	Palette  []string       `yaml:"palette"`
	Messages MessagesConfig `yaml:"messages"`
}

// ButtonsConfig bounds the number of buttons a round may have.
type ButtonsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig holds the round timings in milliseconds.
type TimingConfig struct {
	RevealPerButtonMs  int `yaml:"reveal_per_button_ms"`
	ScrambleIntervalMs int `yaml:"scramble_interval_ms"`
	EnableDelayMs      int `yaml:"enable_delay_ms"`
	WinDelayMs         int `yaml:"win_delay_ms"`
	NoticeMs           int `yaml:"notice_ms"` // how long a banner stays in the prompt strip
}

// LayoutConfig sizes the buttons and the prompt strip in terminal cells.
type LayoutConfig struct {
	ButtonWidth  int `yaml:"button_width"`
	ButtonHeight int `yaml:"button_height"`
	PromptHeight int `yaml:"prompt_height"`
}

// MessagesConfig is the text shown to the player.
type MessagesConfig struct {
	ButtonPrompt    string `yaml:"button_prompt"`
	ExcellentMemory string `yaml:"excellent_memory"`
	WrongOrder      string `yaml:"wrong_order"`
	InvalidRange    string `yaml:"invalid_range"`
}

// RevealPerButton returns the memorization time granted per button.
func (t TimingConfig) RevealPerButton() time.Duration {
	return ms(t.RevealPerButtonMs)
}

// ScrambleInterval returns the time between scrambles.
func (t TimingConfig) ScrambleInterval() time.Duration {
	return ms(t.ScrambleIntervalMs)
}

// EnableDelay returns the pause between the last scramble and enabling input.
func (t TimingConfig) EnableDelay() time.Duration {
	return ms(t.EnableDelayMs)
}

// WinDelay returns the pause before an outcome is announced.
func (t TimingConfig) WinDelay() time.Duration {
	return ms(t.WinDelayMs)
}

// Notice returns how long a notice stays on screen.
func (t TimingConfig) Notice() time.Duration {
	return ms(t.NoticeMs)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate checks the values the loader cannot fill in on its own.
func (c MemoryConfig) Validate() error {
	switch {
	case c.Buttons.Min < 1 || c.Buttons.Min > c.Buttons.Max:
		return fmt.Errorf("config: invalid button range [%d, %d]", c.Buttons.Min, c.Buttons.Max)
	case c.Buttons.Max > 9:
		// Buttons are chosen with a single digit key.
		return fmt.Errorf("config: at most 9 buttons are supported, got %d", c.Buttons.Max)
	case len(c.Palette) < c.Buttons.Max:
		return fmt.Errorf("config: palette has %d colors, need at least %d", len(c.Palette), c.Buttons.Max)
	case c.Timing.RevealPerButtonMs < 0 || c.Timing.EnableDelayMs < 0 ||
		c.Timing.WinDelayMs < 0 || c.Timing.NoticeMs < 0:
		return fmt.Errorf("config: timings must not be negative")
	case c.Timing.ScrambleIntervalMs <= 0:
		return fmt.Errorf("config: scramble interval must be positive")
	case c.Layout.ButtonWidth < 3 || c.Layout.ButtonHeight < 3:
		return fmt.Errorf("config: buttons must be at least 3x3 cells")
	case c.Layout.PromptHeight < 1:
		return fmt.Errorf("config: prompt strip must be at least 1 row")
	}
	return nil
}
