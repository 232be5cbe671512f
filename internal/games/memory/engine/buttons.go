package engine

import (
	"slices"
	"strconv"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// layoutGap is the horizontal space between buttons in the initial row.
const layoutGap = 2

// CreateSpecs builds n button specs with distinct colors drawn from palette.
// The palette itself is left untouched.
func CreateSpecs(n int, palette []ColorTag, maxButtons int, rng Source) ([]ButtonSpec, error) {
	if len(palette) < maxButtons {
		return nil, errPaletteTooSmall(len(palette), maxButtons)
	}
	if n < 1 || n > len(palette) {
		return nil, &ConfigError{Reason: "button count " + strconv.Itoa(n) + " cannot be colored from the palette"}
	}

	colors := Shuffle(slices.Clone(palette), rng)[:n]
	specs := make([]ButtonSpec, n)
	for i := range specs {
		specs[i] = ButtonSpec{
			Ordinal: i + 1,
			Label:   strconv.Itoa(i + 1),
			Color:   colors[i],
		}
	}
	return specs, nil
}

// ButtonSet holds the buttons of one round, indexed by ordinal order.
type ButtonSet struct {
	buttons []PlacedButton
}

// NewButtonSet creates revealed, disabled buttons of the given size.
// Positions are zero until Layout or Reposition is called.
func NewButtonSet(specs []ButtonSpec, width, height float64) *ButtonSet {
	buttons := make([]PlacedButton, len(specs))
	for i, spec := range specs {
		buttons[i] = PlacedButton{
			ButtonSpec: spec,
			Width:      width,
			Height:     height,
			Revealed:   true,
		}
	}
	return &ButtonSet{buttons: buttons}
}

// Len returns the number of buttons.
func (s *ButtonSet) Len() int {
	return len(s.buttons)
}

// Buttons returns a copy of the buttons in ordinal order.
func (s *ButtonSet) Buttons() []PlacedButton {
	return slices.Clone(s.buttons)
}

// Button returns the button with the given ordinal.
func (s *ButtonSet) Button(ordinal int) (PlacedButton, bool) {
	if ordinal < 1 || ordinal > len(s.buttons) {
		return PlacedButton{}, false
	}
	return s.buttons[ordinal-1], true
}

// Layout places the buttons left to right in rows, wrapping at the viewport
// width, as the initial arrangement shown while the player memorizes.
func (s *ButtonSet) Layout(bounds ViewportBounds) {
	area := bounds.Area()
	x, y := 0.0, 0.0
	for i := range s.buttons {
		b := &s.buttons[i]
		if x > 0 && x+b.Width > area.W {
			x = 0
			y += b.Height + 1
		}
		b.X = core.ClampF(x, 0, max(area.W-b.Width, 0))
		b.Y = core.ClampF(y, 0, max(area.H-b.Height, 0))
		x += b.Width + layoutGap
	}
}

// Reposition moves every button to a uniformly random spot that keeps it
// inside the viewport and above the excluded strip. When the viewport is too
// small for a button the range collapses to [0, 0] instead of failing.
func (s *ButtonSet) Reposition(bounds ViewportBounds, rng Source) {
	area := bounds.Area()
	for i := range s.buttons {
		b := &s.buttons[i]
		b.X = rng.Float64() * max(area.W-b.Width, 0)
		b.Y = rng.Float64() * max(area.H-b.Height, 0)
	}
}

// HideAll clears every label and enables every button.
func (s *ButtonSet) HideAll() {
	for i := range s.buttons {
		s.buttons[i].Revealed = false
	}
	s.EnableAll()
}

// EnableAll unlocks every button without touching labels.
func (s *ButtonSet) EnableAll() {
	for i := range s.buttons {
		s.buttons[i].Enabled = true
	}
}

// RevealAndDisable shows one button's label and locks it.
func (s *ButtonSet) RevealAndDisable(ordinal int) {
	if ordinal < 1 || ordinal > len(s.buttons) {
		return
	}
	s.buttons[ordinal-1].Revealed = true
	s.buttons[ordinal-1].Enabled = false
}

// RevealAndDisableAll shows every label and locks every button.
func (s *ButtonSet) RevealAndDisableAll() {
	for i := range s.buttons {
		s.buttons[i].Revealed = true
		s.buttons[i].Enabled = false
	}
}

// HitTest returns the ordinal of the topmost button containing the point.
// Later buttons are drawn over earlier ones, so the search runs backwards.
func (s *ButtonSet) HitTest(x, y float64) (int, bool) {
	for i := len(s.buttons) - 1; i >= 0; i-- {
		if s.buttons[i].Rect().Contains(x, y) {
			return s.buttons[i].Ordinal, true
		}
	}
	return 0, false
}
