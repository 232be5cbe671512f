package memory

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

func newGame(t *testing.T, startN int) *Game {
	t.Helper()
	g := New(config.DefaultMemoryConfig())
	g.SetStartButtons(startN)
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: 10, Seed: 42})
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

// stepUntil steps with empty input until the session reaches phase.
func stepUntil(t *testing.T, g *Game, phase engine.Phase) {
	t.Helper()
	input := core.NewInputFrame()
	for range 1000 {
		if g.session.Phase() == phase {
			return
		}
		g.Step(input)
	}
	t.Fatalf("phase %v never reached, stuck in %v", phase, g.session.Phase())
}

// cellOf finds a cell where the given button is the topmost one.
func cellOf(t *testing.T, g *Game, ordinal int) (int, int) {
	t.Helper()
	for _, b := range g.session.Buttons() {
		if b.Ordinal != ordinal {
			continue
		}
		r := b.Rect().Snap()
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if got, ok := g.session.HitTest(float64(x)+0.5, float64(y)+0.5); ok && got == ordinal {
					return x, y
				}
			}
		}
	}
	t.Fatalf("button %d is not clickable", ordinal)
	return 0, 0
}

func click(g *Game, x, y int) core.StepResult {
	input := core.NewInputFrame()
	input.SetClick(x, y)
	return g.Step(input)
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New(config.DefaultMemoryConfig())
	g1.Reset(cfg)
	g2 := New(config.DefaultMemoryConfig())
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 800; i++ {
		input.Clear()
		if i == 5 {
			input.SetDigit(4)
		}
		if i == 790 {
			input.Set(core.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Phase != engine.PhaseEnabled || snap1.Buttons != 4 {
		t.Errorf("phase %v with %d buttons, expected an enabled round of 4", snap1.Phase, snap1.Buttons)
	}
}

func TestDigitStartsRound(t *testing.T) {
	g := newGame(t, 0)

	input := core.NewInputFrame()
	input.SetDigit(5)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Buttons != 5 || snap.Phase != engine.PhaseRevealing {
		t.Fatalf("after digit 5: %d buttons in %v, expected 5 revealing", snap.Buttons, snap.Phase)
	}
	for _, b := range snap.Layout {
		if !b.Revealed || b.Enabled {
			t.Errorf("button %d revealed=%v enabled=%v during reveal", b.Ordinal, b.Revealed, b.Enabled)
		}
	}
}

func TestDigitOutOfRange(t *testing.T) {
	g := newGame(t, 4)

	input := core.NewInputFrame()
	input.SetDigit(9)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Buttons != 0 || snap.Phase != engine.PhaseIdle {
		t.Errorf("after digit 9: %d buttons in %v, expected idle", snap.Buttons, snap.Phase)
	}
	if snap.Notice != "Please enter a number between 3-7" {
		t.Errorf("Notice = %q, expected the invalid-range message", snap.Notice)
	}
}

func TestClickInOrderWins(t *testing.T) {
	g := newGame(t, 3)
	stepUntil(t, g, engine.PhaseEnabled)

	var rounds []core.RoundResult
	for ordinal := 1; ordinal <= 3; ordinal++ {
		x, y := cellOf(t, g, ordinal)
		res := click(g, x, y)
		rounds = append(rounds, res.Rounds...)
	}

	if len(rounds) != 1 || !rounds[0].Won || rounds[0].Buttons != 3 {
		t.Fatalf("rounds = %+v, expected one won round of 3", rounds)
	}
	if rounds[0].DurationMs < 9500 {
		t.Errorf("DurationMs = %d, expected at least 9500", rounds[0].DurationMs)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
	if snap := g.Snapshot(); snap.Notice != "Excellent memory!" || snap.Phase != engine.PhaseIdle {
		t.Errorf("after win: notice %q phase %v", snap.Notice, snap.Phase)
	}
}

func TestClickOutOfOrderLoses(t *testing.T) {
	g := newGame(t, 3)
	stepUntil(t, g, engine.PhaseEnabled)

	x, y := cellOf(t, g, 2)
	res := click(g, x, y)

	if len(res.Rounds) != 1 || res.Rounds[0].Won {
		t.Fatalf("rounds = %+v, expected one lost round", res.Rounds)
	}
	if snap := g.Snapshot(); snap.Notice != "Wrong order!" {
		t.Errorf("Notice = %q, expected the wrong-order message", snap.Notice)
	}
}

func TestClickOutsideButtons(t *testing.T) {
	g := newGame(t, 3)
	stepUntil(t, g, engine.PhaseEnabled)

	// The prompt strip never holds a button.
	click(g, 0, 99)

	if snap := g.Snapshot(); snap.Step != 0 || snap.Phase != engine.PhaseEnabled {
		t.Errorf("click on the strip: step %d phase %v", snap.Step, snap.Phase)
	}
}

func TestKeyboardFocus(t *testing.T) {
	g := newGame(t, 3)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.focus != 0 {
		t.Errorf("focus moved to %d before the round was enabled", g.focus)
	}

	stepUntil(t, g, engine.PhaseEnabled)

	seen := make(map[int]bool)
	for range 3 {
		g.Step(right)
		seen[g.focus] = true
	}
	if len(seen) != 3 || seen[0] {
		t.Errorf("focus visited %v, expected each of the 3 buttons once", seen)
	}

	for g.focus != 1 {
		g.Step(right)
	}
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if g.Snapshot().Step != 1 {
		t.Errorf("Step = %d after confirming button 1, expected 1", g.Snapshot().Step)
	}
}

func TestRestartUsesLastCount(t *testing.T) {
	g := newGame(t, 6)
	stepUntil(t, g, engine.PhaseEnabled)

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Buttons != 6 || snap.Phase != engine.PhaseRevealing {
		t.Errorf("after restart: %d buttons in %v, expected 6 revealing", snap.Buttons, snap.Phase)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newGame(t, 4)
	stepUntil(t, g, engine.PhaseScrambling)

	g.Resize(60, 30)
	stepUntil(t, g, engine.PhaseEnabled)

	snap := g.Snapshot()
	if snap.Buttons != 4 || snap.Scramble != 4 {
		t.Fatalf("after resize: %d buttons with %d scrambles, expected the round to continue", snap.Buttons, snap.Scramble)
	}
	area := core.RectF{W: 60, H: 30 - 3}
	for _, b := range g.session.Buttons() {
		if !b.Rect().Within(area) {
			t.Errorf("button %d at %v outside the resized area", b.Ordinal, b.Rect())
		}
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newGame(t, 3)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	before := g.Snapshot().Now

	for range 50 {
		g.Step(core.NewInputFrame())
	}
	if now := g.Snapshot().Now; now != before {
		t.Errorf("clock moved from %v to %v while paused", before, now)
	}
	if !g.State().Paused {
		t.Error("State().Paused = false, expected true")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRender(t *testing.T) {
	g := New(config.DefaultMemoryConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(22), "How many buttons to create? (3-7)") {
		t.Errorf("prompt row = %q, expected the button prompt", screen.Row(22))
	}
	if !strings.HasPrefix(screen.Row(21), "────") {
		t.Errorf("row 21 = %q, expected the strip rule", screen.Row(21))
	}

	input := core.NewInputFrame()
	input.SetDigit(3)
	g.Step(input)

	screen.Clear()
	g.Render(screen)
	text := screen.String()
	for _, label := range []string{"1", "2", "3"} {
		if !strings.Contains(text, label) {
			t.Errorf("label %s not rendered during reveal", label)
		}
	}
	if !strings.Contains(screen.Row(22), "Memorize") {
		t.Errorf("prompt row = %q, expected the reveal hint", screen.Row(22))
	}

	// The first button sits at the origin and is painted in its color.
	b := g.session.Buttons()[0]
	want, _ := core.ColorByName(string(b.Color))
	if got := screen.GetCell(0, 0).Bg; got != want {
		t.Errorf("cell (0, 0) background = %v, expected %v", got, want)
	}
}

func TestInvalidConfigReportsError(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	cfg.Palette = cfg.Palette[:2]

	g := New(cfg)
	g.Reset(core.DefaultConfig())

	if g.Err() == nil {
		t.Fatal("Err() = nil, expected a config error")
	}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.HasPrefix(screen.Row(0), "memory:") {
		t.Errorf("row 0 = %q, expected the error", screen.Row(0))
	}
}
