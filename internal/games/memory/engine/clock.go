package engine

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// ClockState is the state of the reveal/scramble/enable sequence.
type ClockState int

const (
	ClockIdle ClockState = iota
	ClockRevealing
	ClockScrambling
	ClockSettling
	ClockEnabled
)

func (s ClockState) String() string {
	switch s {
	case ClockIdle:
		return "idle"
	case ClockRevealing:
		return "revealing"
	case ClockScrambling:
		return "scrambling"
	case ClockSettling:
		return "settling"
	case ClockEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Clock sequences one round: reveal for n*RevealPerButton, scramble n times
// every ScrambleInterval, settle for EnableDelay, then enable.
//
// All timers go through the owner's TimerGroup. Each callback also carries the
// generation it was armed in, so a callback that somehow outlives Cancel does nothing.
type Clock struct {
	timers *core.TimerGroup
	cfg    Config

	state ClockState
	gen   uint64
	n     int
	tick  int
	timer core.TimerID

	onTick    func()
	onSettled func()
}

// NewClock creates an idle clock that schedules on timers.
func NewClock(timers *core.TimerGroup, cfg Config) *Clock {
	return &Clock{
		timers: timers,
		cfg:    cfg,
	}
}

// State returns the current state.
func (c *Clock) State() ClockState {
	return c.state
}

// Tick returns how many scramble ticks have run in the current sequence.
func (c *Clock) Tick() int {
	return c.tick
}

// RevealDuration returns the memorization window for n buttons.
func (c *Clock) RevealDuration(n int) time.Duration {
	return time.Duration(n) * c.cfg.RevealPerButton
}

// Start begins a new sequence for n buttons, cancelling any running one.
// onTick runs on every scramble tick; onSettled runs once on entering Enabled.
func (c *Clock) Start(n int, onTick, onSettled func()) {
	c.Cancel()

	c.n = n
	c.onTick = onTick
	c.onSettled = onSettled
	c.state = ClockRevealing

	gen := c.gen
	c.timer = c.timers.After(c.RevealDuration(n), func() {
		if c.gen == gen {
			c.revealElapsed()
		}
	})
}

// Cancel stops the sequence and returns to Idle. It may be called any number
// of times, including from inside onTick or onSettled.
func (c *Clock) Cancel() {
	c.gen++
	if c.timer != 0 {
		c.timers.Cancel(c.timer)
		c.timer = 0
	}
	c.state = ClockIdle
	c.tick = 0
	c.onTick = nil
	c.onSettled = nil
}

// revealElapsed moves Revealing -> Scrambling(0) and arms the repeating tick.
func (c *Clock) revealElapsed() {
	c.state = ClockScrambling
	c.tick = 0

	if c.n <= 0 {
		c.scrambleDone()
		return
	}

	gen := c.gen
	c.timer = c.timers.Every(c.cfg.ScrambleInterval, func() {
		if c.gen == gen {
			c.scrambleTick()
		}
	})
}

// scrambleTick runs one reposition and, after the n-th, stops repeating.
func (c *Clock) scrambleTick() {
	gen := c.gen
	if c.onTick != nil {
		c.onTick()
	}
	if c.gen != gen {
		// onTick cancelled the clock.
		return
	}

	c.tick++
	if c.tick >= c.n {
		c.timers.Cancel(c.timer)
		c.scrambleDone()
	}
}

// scrambleDone moves Scrambling -> Settling.
func (c *Clock) scrambleDone() {
	c.state = ClockSettling

	gen := c.gen
	c.timer = c.timers.After(c.cfg.EnableDelay, func() {
		if c.gen == gen {
			c.settleElapsed()
		}
	})
}

// settleElapsed moves Settling -> Enabled.
func (c *Clock) settleElapsed() {
	c.timer = 0
	c.state = ClockEnabled
	if c.onSettled != nil {
		c.onSettled()
	}
}
