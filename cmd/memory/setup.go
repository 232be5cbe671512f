package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// loadConfig loads the game config and applies a difficulty preset.
func loadConfig(difficulty string) (config.MemoryConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.MemoryConfig{}, err
	}

	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyMemoryPreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns a logger writing to w with the command's level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the --log-file for appending. The returned closer is never nil.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return io.Discard, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
