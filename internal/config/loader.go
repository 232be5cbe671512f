package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const memoryFile = "memory.yaml"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadMemory(customPath string) (MemoryConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultMemoryConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	for _, path := range []string{userConfigPath(memoryFile), filepath.Join("configs", memoryFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := readMemory(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(defaultMemoryYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readMemory decodes path over the defaults. Unreadable or invalid files are skipped.
func readMemory(path string) (MemoryConfig, bool) {
	cfg := DefaultMemoryConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}
