// Package memory adapts the memory engine to the platform game contract:
// fixed-tick stepping, abstract input actions and a cell screen.
package memory

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// ID identifies the game in storage and on the command line.
const ID = "memory"

// Game implements the memory game.
type Game struct {
	cfg    config.MemoryConfig
	engCfg engine.Config
	msgs   engine.Messages

	sched   *core.Scheduler
	rng     *rand.Rand
	session *engine.Session
	err     error // set when the session could not be created

	tick     uint64
	tickDur  time.Duration
	screenW  int
	screenH  int
	paused   bool
	startN   int // round to start on Reset, 0 waits for a digit
	lastN    int // button count of the last accepted round
	focus    int // ordinal of the keyboard-focused button, 0 for none
	wins     int
	pending  []core.RoundResult
	notice   engine.Notice
	noticeAt time.Duration // scheduler time the notice expires
}

// New creates a memory game from a loaded configuration.
func New(cfg config.MemoryConfig) *Game {
	return &Game{
		cfg:    cfg,
		engCfg: EngineConfig(cfg),
		msgs: engine.Messages{
			ExcellentMemory: cfg.Messages.ExcellentMemory,
			WrongOrder:      cfg.Messages.WrongOrder,
			InvalidRange:    cfg.Messages.InvalidRange,
		},
	}
}

// EngineConfig converts the YAML configuration to engine settings.
func EngineConfig(cfg config.MemoryConfig) engine.Config {
	palette := make([]engine.ColorTag, len(cfg.Palette))
	for i, name := range cfg.Palette {
		palette[i] = engine.ColorTag(name)
	}
	return engine.Config{
		MinButtons:       cfg.Buttons.Min,
		MaxButtons:       cfg.Buttons.Max,
		RevealPerButton:  cfg.Timing.RevealPerButton(),
		ScrambleInterval: cfg.Timing.ScrambleInterval(),
		EnableDelay:      cfg.Timing.EnableDelay(),
		WinDelay:         cfg.Timing.WinDelay(),
		ButtonWidth:      float64(cfg.Layout.ButtonWidth),
		ButtonHeight:     float64(cfg.Layout.ButtonHeight),
		Palette:          palette,
	}
}

// SetStartButtons makes Reset begin a round of n buttons straight away.
func (g *Game) SetStartButtons(n int) {
	g.startN = n
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory"
}

// Reset initializes the game with a fresh scheduler and rng.
func (g *Game) Reset(rc core.RuntimeConfig) {
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.sched = core.NewScheduler()
	g.tick = 0
	g.tickDur = time.Second / time.Duration(tickRate)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.lastN = 0
	g.focus = 0
	g.wins = 0
	g.pending = nil
	g.notice = engine.Notice{}
	g.noticeAt = 0

	g.session, g.err = engine.NewSession(g.engCfg, g.msgs, g.sched, g.rng,
		engine.ViewportFunc(g.bounds), engine.NotifierFunc(g.notify))
	if g.err == nil && g.startN > 0 {
		g.startRound(g.startN)
	}
}

// Resize updates the screen size. The running round continues and the next
// scramble uses the new bounds.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies one frame of input and advances the game clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionDigit):
		g.startRound(in.Digit)
	case in.Has(core.ActionRestart) && g.lastN > 0:
		g.startRound(g.lastN)
	}

	if in.Has(core.ActionClick) {
		if ordinal, ok := g.session.HitTest(float64(in.ClickX)+0.5, float64(in.ClickY)+0.5); ok {
			g.focus = ordinal
			g.session.Activate(ordinal)
		}
	}
	if in.Has(core.ActionLeft) {
		g.moveFocus(-1)
	}
	if in.Has(core.ActionRight) {
		g.moveFocus(1)
	}
	if in.Has(core.ActionConfirm) && g.focus > 0 {
		g.session.Activate(g.focus)
	}

	g.sched.Advance(g.tickDur)
	g.tick++

	for _, r := range g.session.TakeResults() {
		won := r.Outcome == engine.Won
		if won {
			g.wins++
		}
		g.pending = append(g.pending, core.RoundResult{
			Buttons:    r.Buttons,
			Won:        won,
			DurationMs: r.Elapsed.Milliseconds(),
		})
	}

	result := core.StepResult{State: g.State(), Rounds: g.pending}
	g.pending = nil
	return result
}

// State returns the current game state. The game never ends on its own.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.wins,
		Paused: g.paused,
	}
}

// Err reports why the game could not start, if it could not.
func (g *Game) Err() error {
	return g.err
}

func (g *Game) startRound(n int) {
	g.focus = 0
	if err := g.session.Start(n); err == nil {
		g.lastN = n
	}
}

// moveFocus cycles keyboard focus through the enabled buttons in screen
// order, left to right then top to bottom.
func (g *Game) moveFocus(dir int) {
	if g.session.Phase() != engine.PhaseEnabled {
		return
	}

	var enabled []engine.PlacedButton
	for _, b := range g.session.Buttons() {
		if b.Enabled {
			enabled = append(enabled, b)
		}
	}
	if len(enabled) == 0 {
		g.focus = 0
		return
	}
	slices.SortFunc(enabled, func(a, b engine.PlacedButton) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y), cmp.Compare(a.Ordinal, b.Ordinal))
	})

	idx := slices.IndexFunc(enabled, func(b engine.PlacedButton) bool { return b.Ordinal == g.focus })
	switch {
	case idx < 0 && dir > 0:
		idx = 0
	case idx < 0:
		idx = len(enabled) - 1
	default:
		idx = (idx + dir + len(enabled)) % len(enabled)
	}
	g.focus = enabled[idx].Ordinal
}

func (g *Game) bounds() engine.ViewportBounds {
	return engine.ViewportBounds{
		Width:                float64(g.screenW),
		Height:               float64(g.screenH),
		ExcludedRegionHeight: float64(g.cfg.Layout.PromptHeight),
	}
}

func (g *Game) notify(n engine.Notice) {
	g.notice = n
	g.noticeAt = g.sched.Now() + g.cfg.Timing.Notice()
}

// activeNotice returns the notice still on screen, if any.
func (g *Game) activeNotice() (engine.Notice, bool) {
	if g.notice.Message == "" || g.sched.Now() >= g.noticeAt {
		return engine.Notice{}, false
	}
	return g.notice, true
}
