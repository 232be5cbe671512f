package engine

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Session owns one game round at a time: its buttons, its clock, its tracker
// and every timer they use. Nothing else starts or cancels the session's timers.
type Session struct {
	cfg      Config
	msgs     Messages
	timers   *core.TimerGroup
	rng      Source
	viewport Viewport
	notifier Notifier

	clock   *Clock
	buttons *ButtonSet
	tracker *Tracker

	// phase is Idle, Won or Lost while no round is in progress. During a
	// round the phase follows the clock.
	phase   Phase
	active  bool
	n       int
	gen     uint64
	started time.Duration
	results []RoundResult
}

// NewSession creates an idle session. It fails with *ConfigError if cfg is invalid.
func NewSession(cfg Config, msgs Messages, sched *core.Scheduler, rng Source, viewport Viewport, notifier Notifier) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}

	timers := core.NewTimerGroup(sched)
	return &Session{
		cfg:      cfg,
		msgs:     msgs,
		timers:   timers,
		rng:      rng,
		viewport: viewport,
		notifier: notifier,
		clock:    NewClock(timers, cfg),
	}, nil
}

// Configure checks a requested button count against the configured bounds.
func (s *Session) Configure(n int) error {
	if n < s.cfg.MinButtons || n > s.cfg.MaxButtons {
		return &RangeError{N: n, Min: s.cfg.MinButtons, Max: s.cfg.MaxButtons}
	}
	return nil
}

// Start tears down any running round and begins a new one with n buttons.
// An out-of-range n is announced to the player and returned as *RangeError;
// the session is then idle.
func (s *Session) Start(n int) error {
	s.Reset()

	if err := s.Configure(n); err != nil {
		s.notifier.Notify(Notice{Kind: NoticeInvalidRange, Message: s.msgs.InvalidRange})
		return err
	}

	specs, err := CreateSpecs(n, s.cfg.Palette, s.cfg.MaxButtons, s.rng)
	if err != nil {
		return err
	}

	s.n = n
	s.buttons = NewButtonSet(specs, s.cfg.ButtonWidth, s.cfg.ButtonHeight)
	s.buttons.Layout(s.bounds())
	s.tracker = NewTracker(s.buttons)
	s.active = true
	s.started = s.timers.Scheduler().Now()

	buttons := s.buttons
	s.clock.Start(n,
		func() { buttons.Reposition(s.bounds(), s.rng) },
		buttons.HideAll,
	)
	return nil
}

// Reset cancels every timer and drops the current round. Safe to call at any
// time, including when nothing is running.
func (s *Session) Reset() {
	s.clock.Cancel()
	s.timers.CancelAll()
	s.gen++

	s.buttons = nil
	s.tracker = nil
	s.active = false
	s.phase = PhaseIdle
	s.n = 0
}

// Activate handles a press on the button with the given ordinal. Presses are
// only accepted while the round is enabled and the button is still unlocked.
func (s *Session) Activate(ordinal int) Outcome {
	if s.Phase() != PhaseEnabled || s.buttons == nil {
		return Ignored
	}
	b, ok := s.buttons.Button(ordinal)
	if !ok || !b.Enabled {
		return Ignored
	}

	outcome := s.tracker.OnButtonActivated(ordinal, s.n)
	switch outcome {
	case Won:
		s.finish(PhaseWon, outcome, Notice{Kind: NoticeWon, Message: s.msgs.ExcellentMemory})
	case Lost:
		s.finish(PhaseLost, outcome, Notice{Kind: NoticeLost, Message: s.msgs.WrongOrder})
	}
	return outcome
}

// finish records the result and, after WinDelay, announces it and resets.
func (s *Session) finish(phase Phase, outcome Outcome, notice Notice) {
	s.active = false
	s.phase = phase
	s.results = append(s.results, RoundResult{
		Buttons: s.n,
		Outcome: outcome,
		Elapsed: s.timers.Scheduler().Now() - s.started,
	})

	gen := s.gen
	s.timers.After(s.cfg.WinDelay, func() {
		if s.gen != gen {
			return
		}
		s.notifier.Notify(notice)
		s.Reset()
	})
}

// TakeResults returns and clears the results recorded since the last call.
func (s *Session) TakeResults() []RoundResult {
	results := s.results
	s.results = nil
	return results
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	if !s.active {
		return s.phase
	}
	switch s.clock.State() {
	case ClockRevealing:
		return PhaseRevealing
	case ClockScrambling, ClockSettling:
		return PhaseScrambling
	case ClockEnabled:
		return PhaseEnabled
	default:
		return PhaseIdle
	}
}

// ClockState returns the state of the round's clock.
func (s *Session) ClockState() ClockState {
	return s.clock.State()
}

// ScrambleTick returns the number of scrambles run this round.
func (s *Session) ScrambleTick() int {
	return s.clock.Tick()
}

// CurrentStep returns how many activations the tracker has seen.
func (s *Session) CurrentStep() int {
	if s.tracker == nil {
		return 0
	}
	return s.tracker.Step()
}

// N returns the button count of the running round, or 0 when idle.
func (s *Session) N() int {
	return s.n
}

// ActiveTimers returns the number of live timers owned by the session.
func (s *Session) ActiveTimers() int {
	return s.timers.Len()
}

// Buttons returns a copy of the current buttons, or nil when idle.
func (s *Session) Buttons() []PlacedButton {
	if s.buttons == nil {
		return nil
	}
	return s.buttons.Buttons()
}

// HitTest finds the topmost button at a point.
func (s *Session) HitTest(x, y float64) (int, bool) {
	if s.buttons == nil {
		return 0, false
	}
	return s.buttons.HitTest(x, y)
}

// Config returns the session's configuration.
func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) bounds() ViewportBounds {
	if s.viewport == nil {
		return ViewportBounds{}
	}
	return s.viewport.Bounds()
}
