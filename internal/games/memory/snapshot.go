package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// ButtonSnapshot is the observable state of one button.
type ButtonSnapshot struct {
	Ordinal  int
	Color    engine.ColorTag
	X, Y     float64
	Revealed bool
	Enabled  bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Now      time.Duration
	Phase    engine.Phase
	Clock    engine.ClockState
	Buttons  int
	Scramble int
	Step     int
	Focus    int
	Wins     int
	Paused   bool
	Notice   string
	Layout   []ButtonSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick}
	}

	snap := Snapshot{
		Tick:     g.tick,
		Now:      g.sched.Now(),
		Phase:    g.session.Phase(),
		Clock:    g.session.ClockState(),
		Buttons:  g.session.N(),
		Scramble: g.session.ScrambleTick(),
		Step:     g.session.CurrentStep(),
		Focus:    g.focus,
		Wins:     g.wins,
		Paused:   g.paused,
	}
	if n, ok := g.activeNotice(); ok {
		snap.Notice = n.Message
	}
	for _, b := range g.session.Buttons() {
		snap.Layout = append(snap.Layout, ButtonSnapshot{
			Ordinal:  b.Ordinal,
			Color:    b.Color,
			X:        b.X,
			Y:        b.Y,
			Revealed: b.Revealed,
			Enabled:  b.Enabled,
		})
	}
	return snap
}
