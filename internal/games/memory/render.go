package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

const helpLine = "3-7 new round  r restart  ←/→ enter select  click press  p pause  q quit"

// Render draws the buttons and the prompt strip.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextColored(0, 0, g.err.Error(), core.ColorRed, core.ColorDefault)
		return
	}
	if g.session == nil {
		return
	}

	for _, b := range g.session.Buttons() {
		g.drawButton(dst, b)
	}
	g.drawPrompt(dst)
}

func (g *Game) drawButton(dst *core.Screen, b engine.PlacedButton) {
	bg, ok := core.ColorByName(string(b.Color))
	if !ok {
		bg = core.ColorGray
	}
	r := b.Rect().Snap()
	dst.FillRect(r, ' ', core.ColorBrightWhite, bg)

	if b.Ordinal == g.focus && b.Enabled && g.session.Phase() == engine.PhaseEnabled {
		dst.DrawBox(r)
	}
	if label := b.VisibleLabel(); label != "" {
		cx, cy := r.Center()
		dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorBrightWhite, bg)
	}
}

// drawPrompt fills the strip below the play area: a rule, the status line
// and the key help.
func (g *Game) drawPrompt(dst *core.Screen) {
	height := g.cfg.Layout.PromptHeight
	top := dst.Height() - height
	if top < 0 {
		top = 0
	}

	dst.FillRect(core.NewRect(0, top, dst.Width(), height), ' ', core.ColorDefault, core.ColorDefault)
	dst.DrawHLine(0, top, dst.Width(), '─')

	status, color := g.statusLine()
	if height > 1 {
		dst.DrawTextColored(1, top+1, status, color, core.ColorDefault)
	}
	if height > 2 {
		dst.DrawTextColored(1, top+2, helpLine, core.ColorDarkGray, core.ColorDefault)
	}
}

// statusLine returns the text for the strip: the latest notice while it is
// fresh, otherwise a hint for the current phase.
func (g *Game) statusLine() (string, core.Color) {
	if g.paused {
		return "PAUSED - press p to resume", core.ColorYellow
	}
	if n, ok := g.activeNotice(); ok {
		switch n.Kind {
		case engine.NoticeWon:
			return n.Message, core.ColorGreen
		case engine.NoticeLost:
			return n.Message, core.ColorRed
		default:
			return n.Message, core.ColorYellow
		}
	}

	s := g.session
	switch s.Phase() {
	case engine.PhaseRevealing:
		return fmt.Sprintf("Memorize the order of %d buttons", s.N()), core.ColorWhite
	case engine.PhaseScrambling:
		return fmt.Sprintf("Scrambling %d/%d", s.ScrambleTick(), s.N()), core.ColorWhite
	case engine.PhaseEnabled:
		return fmt.Sprintf("Press the buttons in order: %d/%d", s.CurrentStep(), s.N()), core.ColorBrightCyan
	case engine.PhaseWon, engine.PhaseLost:
		return "", core.ColorDefault
	default:
		return g.cfg.Messages.ButtonPrompt, core.ColorWhite
	}
}
