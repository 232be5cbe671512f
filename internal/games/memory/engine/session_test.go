package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type sessionHarness struct {
	sched   *core.Scheduler
	session *Session
	notices []Notice
	bounds  int // Bounds() calls
}

func newSessionHarness(t *testing.T) *sessionHarness {
	t.Helper()
	h := &sessionHarness{sched: core.NewScheduler()}
	viewport := ViewportFunc(func() ViewportBounds {
		h.bounds++
		return ViewportBounds{Width: 80, Height: 24, ExcludedRegionHeight: 3}
	})
	notifier := NotifierFunc(func(n Notice) { h.notices = append(h.notices, n) })

	s, err := NewSession(DefaultConfig(), DefaultMessages(), h.sched, rand.New(rand.NewSource(42)), viewport, notifier)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	h.session = s
	return h
}

// enable starts a round of n buttons and runs it up to the Enabled phase.
func (h *sessionHarness) enable(t *testing.T, n int) {
	t.Helper()
	if err := h.session.Start(n); err != nil {
		t.Fatalf("Start(%d) failed: %v", n, err)
	}
	cfg := h.session.Config()
	h.sched.Advance(time.Duration(n)*cfg.RevealPerButton + time.Duration(n)*cfg.ScrambleInterval + cfg.EnableDelay)
	if h.session.Phase() != PhaseEnabled {
		t.Fatalf("Phase() = %v after full sequence, expected enabled", h.session.Phase())
	}
}

func TestSessionRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = cfg.Palette[:3]

	_, err := NewSession(cfg, DefaultMessages(), core.NewScheduler(), rand.New(rand.NewSource(1)), nil, nil)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("NewSession() error = %v, expected *ConfigError", err)
	}
}

func TestSessionResetWhenIdle(t *testing.T) {
	h := newSessionHarness(t)

	h.session.Reset()
	h.session.Reset()

	if h.session.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", h.session.Phase())
	}
	if h.session.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers() = %d, expected 0", h.session.ActiveTimers())
	}
	if h.session.Buttons() != nil {
		t.Error("Buttons() should be nil when idle")
	}
}

func TestSessionStartOutOfRange(t *testing.T) {
	for _, n := range []int{0, 2, 8, -1} {
		h := newSessionHarness(t)

		err := h.session.Start(n)

		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("Start(%d) error = %v, expected *RangeError", n, err)
		}
		if rangeErr.N != n || rangeErr.Min != 3 || rangeErr.Max != 7 {
			t.Errorf("RangeError = %+v, expected N=%d Min=3 Max=7", rangeErr, n)
		}
		if len(h.notices) != 1 || h.notices[0].Kind != NoticeInvalidRange {
			t.Errorf("notices = %v, expected one invalid-range notice", h.notices)
		}
		if h.notices[0].Message != DefaultMessages().InvalidRange {
			t.Errorf("notice message = %q", h.notices[0].Message)
		}
		if h.session.Phase() != PhaseIdle || h.session.ActiveTimers() != 0 {
			t.Errorf("Start(%d) left phase %v with %d timers", n, h.session.Phase(), h.session.ActiveTimers())
		}
	}
}

func TestSessionStartShowsRevealedDisabledButtons(t *testing.T) {
	h := newSessionHarness(t)

	if err := h.session.Start(5); err != nil {
		t.Fatalf("Start(5) failed: %v", err)
	}

	if h.session.Phase() != PhaseRevealing {
		t.Errorf("Phase() = %v, expected revealing", h.session.Phase())
	}
	buttons := h.session.Buttons()
	if len(buttons) != 5 {
		t.Fatalf("len(Buttons()) = %d, expected 5", len(buttons))
	}
	for i, b := range buttons {
		if b.Ordinal != i+1 || !b.Revealed || b.Enabled {
			t.Errorf("button %d: ordinal=%d revealed=%v enabled=%v", i, b.Ordinal, b.Revealed, b.Enabled)
		}
	}
}

func TestSessionPhaseBoundaries(t *testing.T) {
	h := newSessionHarness(t)
	if err := h.session.Start(3); err != nil {
		t.Fatalf("Start(3) failed: %v", err)
	}

	steps := []struct {
		at    time.Duration
		phase Phase
		tick  int
	}{
		{2999 * time.Millisecond, PhaseRevealing, 0},
		{3000 * time.Millisecond, PhaseScrambling, 0},
		{5000 * time.Millisecond, PhaseScrambling, 1},
		{9000 * time.Millisecond, PhaseScrambling, 3},
		{9500 * time.Millisecond, PhaseEnabled, 3},
	}
	for _, step := range steps {
		h.sched.Advance(step.at - h.sched.Now())
		if h.session.Phase() != step.phase {
			t.Errorf("at %v: Phase() = %v, expected %v", step.at, h.session.Phase(), step.phase)
		}
		if h.session.ScrambleTick() != step.tick {
			t.Errorf("at %v: ScrambleTick() = %d, expected %d", step.at, h.session.ScrambleTick(), step.tick)
		}
	}

	for _, b := range h.session.Buttons() {
		if b.Revealed || !b.Enabled {
			t.Errorf("button %d revealed=%v enabled=%v once enabled", b.Ordinal, b.Revealed, b.Enabled)
		}
	}
}

func TestSessionIgnoresPressesBeforeEnabled(t *testing.T) {
	h := newSessionHarness(t)
	if err := h.session.Start(3); err != nil {
		t.Fatalf("Start(3) failed: %v", err)
	}

	if got := h.session.Activate(1); got != Ignored {
		t.Errorf("Activate during reveal = %v, expected ignored", got)
	}
	h.sched.Advance(4 * time.Second)
	if got := h.session.Activate(1); got != Ignored {
		t.Errorf("Activate during scramble = %v, expected ignored", got)
	}
	if h.session.CurrentStep() != 0 {
		t.Errorf("CurrentStep() = %d, expected 0", h.session.CurrentStep())
	}
}

func TestSessionWin(t *testing.T) {
	h := newSessionHarness(t)
	h.enable(t, 3)

	if got := h.session.Activate(1); got != Progressed {
		t.Errorf("Activate(1) = %v, expected progressed", got)
	}
	if got := h.session.Activate(1); got != Ignored {
		t.Errorf("second Activate(1) = %v, expected ignored", got)
	}
	if got := h.session.Activate(2); got != Progressed {
		t.Errorf("Activate(2) = %v, expected progressed", got)
	}
	if got := h.session.Activate(3); got != Won {
		t.Errorf("Activate(3) = %v, expected won", got)
	}
	if h.session.Phase() != PhaseWon {
		t.Errorf("Phase() = %v, expected won", h.session.Phase())
	}
	if len(h.notices) != 0 {
		t.Errorf("notice shown before the delay: %v", h.notices)
	}

	h.sched.Advance(h.session.Config().WinDelay)

	if len(h.notices) != 1 || h.notices[0].Kind != NoticeWon || h.notices[0].Message != "Excellent memory!" {
		t.Errorf("notices = %v, expected one win notice", h.notices)
	}
	if h.session.Phase() != PhaseIdle || h.session.ActiveTimers() != 0 {
		t.Errorf("after win: phase %v with %d timers, expected idle with none", h.session.Phase(), h.session.ActiveTimers())
	}

	results := h.session.TakeResults()
	if len(results) != 1 {
		t.Fatalf("TakeResults() returned %d results, expected 1", len(results))
	}
	if results[0].Buttons != 3 || results[0].Outcome != Won || results[0].Elapsed != 9500*time.Millisecond {
		t.Errorf("result = %+v, expected 3 buttons won in 9.5s", results[0])
	}
	if again := h.session.TakeResults(); len(again) != 0 {
		t.Errorf("second TakeResults() returned %v, expected none", again)
	}
}

func TestSessionLose(t *testing.T) {
	h := newSessionHarness(t)
	h.enable(t, 3)

	if got := h.session.Activate(2); got != Lost {
		t.Fatalf("Activate(2) = %v, expected lost", got)
	}
	for _, b := range h.session.Buttons() {
		if !b.Revealed || b.Enabled {
			t.Errorf("button %d revealed=%v enabled=%v after loss", b.Ordinal, b.Revealed, b.Enabled)
		}
	}
	if got := h.session.Activate(1); got != Ignored {
		t.Errorf("Activate after loss = %v, expected ignored", got)
	}

	h.sched.Advance(h.session.Config().WinDelay)

	if len(h.notices) != 1 || h.notices[0].Kind != NoticeLost || h.notices[0].Message != "Wrong order!" {
		t.Errorf("notices = %v, expected one loss notice", h.notices)
	}
	if h.session.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", h.session.Phase())
	}
}

func TestSessionResetCancelsPendingOutcome(t *testing.T) {
	h := newSessionHarness(t)
	h.enable(t, 3)
	h.session.Activate(3)

	h.session.Reset()
	h.sched.Advance(time.Second)

	if len(h.notices) != 0 {
		t.Errorf("notices = %v after reset, expected none", h.notices)
	}
}

func TestSessionRestartDropsStaleTicks(t *testing.T) {
	h := newSessionHarness(t)

	if err := h.session.Start(4); err != nil {
		t.Fatalf("Start(4) failed: %v", err)
	}
	h.sched.Advance(2 * time.Second)
	if err := h.session.Start(5); err != nil {
		t.Fatalf("Start(5) failed: %v", err)
	}
	h.sched.Advance(time.Minute)

	// One Bounds() call per Layout, plus one per scramble of the second round.
	if h.bounds != 2+5 {
		t.Errorf("viewport read %d times, expected 7", h.bounds)
	}
	if h.session.ScrambleTick() != 5 {
		t.Errorf("ScrambleTick() = %d, expected 5", h.session.ScrambleTick())
	}
	if h.session.N() != 5 || len(h.session.Buttons()) != 5 {
		t.Errorf("N() = %d with %d buttons, expected 5", h.session.N(), len(h.session.Buttons()))
	}
	if h.session.Phase() != PhaseEnabled {
		t.Errorf("Phase() = %v, expected enabled", h.session.Phase())
	}
}

func TestSessionHitTest(t *testing.T) {
	h := newSessionHarness(t)
	if _, ok := h.session.HitTest(1, 1); ok {
		t.Error("HitTest on an idle session should miss")
	}

	h.enable(t, 3)
	for _, b := range h.session.Buttons() {
		ord, ok := h.session.HitTest(b.X+b.Width/2, b.Y+b.Height/2)
		if !ok {
			t.Errorf("HitTest at the center of button %d missed", b.Ordinal)
			continue
		}
		// An overlapping later button may sit on top.
		if ord < b.Ordinal {
			t.Errorf("HitTest at the center of button %d = %d", b.Ordinal, ord)
		}
	}
}
