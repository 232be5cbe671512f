package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Buttons: ButtonsConfig{
			Min: 3,
			Max: 7,
		},
		Timing: TimingConfig{
			RevealPerButtonMs:  1000,
			ScrambleIntervalMs: 2000,
			EnableDelayMs:      500,
			WinDelayMs:         100,
			NoticeMs:           3000,
		},
		Layout: LayoutConfig{
			ButtonWidth:  10,
			ButtonHeight: 5,
			PromptHeight: 3,
		},
		Palette: []string{"blue", "orange", "green", "grey", "purple", "cyan", "magenta"},
		Messages: MessagesConfig{
			ButtonPrompt:    "How many buttons to create? (3-7)",
			ExcellentMemory: "Excellent memory!",
			WrongOrder:      "Wrong order!",
			InvalidRange:    "Please enter a number between 3-7",
		},
	}
}
