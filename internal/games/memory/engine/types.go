// Package engine implements the memory sequence game: a timed reveal of numbered
// buttons, a series of scrambles, and an ordered recall by the player.
//
// The engine is pure. Time comes from a core.Scheduler owned by the caller,
// randomness from a Source, screen size from a Viewport, and user-facing
// messages leave through a Notifier.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// ColorTag names a palette color, e.g. "blue".
type ColorTag string

// Config holds the game tunables. It is immutable once a session is created.
type Config struct {
	MinButtons int
	MaxButtons int

	// RevealPerButton is the memorization time granted per button.
	RevealPerButton  time.Duration
	ScrambleInterval time.Duration
	EnableDelay      time.Duration
	// WinDelay is the pause between a terminal click and the outcome notice,
	// long enough for the revealed label to paint.
	WinDelay time.Duration

	ButtonWidth  float64
	ButtonHeight float64

	Palette []ColorTag
}

// DefaultConfig returns the classic timings and palette.
func DefaultConfig() Config {
	return Config{
		MinButtons:       3,
		MaxButtons:       7,
		RevealPerButton:  time.Second,
		ScrambleInterval: 2 * time.Second,
		EnableDelay:      500 * time.Millisecond,
		WinDelay:         100 * time.Millisecond,
		ButtonWidth:      10,
		ButtonHeight:     5,
		Palette:          []ColorTag{"blue", "orange", "green", "grey", "purple", "cyan", "magenta"},
	}
}

// Validate checks the config for programmer errors.
func (c Config) Validate() error {
	switch {
	case c.MinButtons < 1:
		return &ConfigError{Reason: "min buttons must be at least 1"}
	case c.MinButtons > c.MaxButtons:
		return &ConfigError{Reason: "min buttons exceeds max buttons"}
	case c.RevealPerButton < 0 || c.ScrambleInterval <= 0 || c.EnableDelay < 0 || c.WinDelay < 0:
		return &ConfigError{Reason: "delays must not be negative and the scramble interval must be positive"}
	case c.ButtonWidth <= 0 || c.ButtonHeight <= 0:
		return &ConfigError{Reason: "button size must be positive"}
	case len(c.Palette) < c.MaxButtons:
		return errPaletteTooSmall(len(c.Palette), c.MaxButtons)
	}
	return nil
}

// Messages are the opaque strings shown to the player. The engine never builds them.
type Messages struct {
	ExcellentMemory string
	WrongOrder      string
	InvalidRange    string
}

// DefaultMessages returns the English message table.
func DefaultMessages() Messages {
	return Messages{
		ExcellentMemory: "Excellent memory!",
		WrongOrder:      "Wrong order!",
		InvalidRange:    "Please enter a number between 3-7",
	}
}

// ButtonSpec describes one button. Ordinal is the correct click position (1-based)
// and never changes after creation.
type ButtonSpec struct {
	Ordinal int
	Label   string
	Color   ColorTag
}

// PlacedButton is a ButtonSpec with a position and interaction state.
type PlacedButton struct {
	ButtonSpec
	X, Y          float64
	Width, Height float64
	Revealed      bool
	Enabled       bool
}

// Rect returns the button's bounding box.
func (b PlacedButton) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// VisibleLabel returns the text the button currently shows.
func (b PlacedButton) VisibleLabel() string {
	if b.Revealed {
		return b.Label
	}
	return ""
}

// ViewportBounds is a snapshot of the drawable area. Buttons must stay inside
// Width x (Height - ExcludedRegionHeight); the excluded strip holds the prompt.
type ViewportBounds struct {
	Width                float64
	Height               float64
	ExcludedRegionHeight float64
}

// Area returns the region buttons may occupy.
func (v ViewportBounds) Area() core.RectF {
	return core.RectF{W: max(v.Width, 0), H: max(v.Height-v.ExcludedRegionHeight, 0)}
}

// Viewport supplies the current bounds. It is read on every scramble tick so
// resizes are picked up between ticks.
type Viewport interface {
	Bounds() ViewportBounds
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() ViewportBounds

// Bounds calls f.
func (f ViewportFunc) Bounds() ViewportBounds {
	return f()
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRevealing
	PhaseScrambling
	PhaseEnabled
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseScrambling:
		return "scrambling"
	case PhaseEnabled:
		return "enabled"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is the result of a button activation.
type Outcome int

const (
	// Ignored means the activation was not accepted (wrong phase or disabled button).
	Ignored Outcome = iota
	Progressed
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Progressed:
		return "progressed"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// NoticeKind classifies a notice for presentation.
type NoticeKind int

const (
	NoticeWon NoticeKind = iota
	NoticeLost
	NoticeInvalidRange
)

// Notice is a user-facing announcement.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier announces outcomes to the player.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify calls f.
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// RoundResult records a finished round.
type RoundResult struct {
	Buttons int
	Outcome Outcome
	Elapsed time.Duration
}
