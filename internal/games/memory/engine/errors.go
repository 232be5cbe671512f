package engine

import "fmt"

// ConfigError reports an invalid game configuration, such as a palette with
// fewer colors than the largest allowed button count.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "memory: invalid config: " + e.Reason
}

func errPaletteTooSmall(have, need int) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf("palette has %d colors, need at least %d", have, need)}
}

// RangeError reports a requested button count outside the allowed bounds.
// It is recoverable: the player is told and may try again.
type RangeError struct {
	N        int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("memory: button count %d out of range [%d, %d]", e.N, e.Min, e.Max)
}
