package engine

// Tracker checks activations against the ascending order 1..n.
//
// A correct click reveals only that button; a wrong click reveals the whole
// arrangement so the player sees what they missed.
type Tracker struct {
	buttons *ButtonSet
	step    int
}

// NewTracker binds a tracker to a button set, starting at step 0.
func NewTracker(buttons *ButtonSet) *Tracker {
	return &Tracker{buttons: buttons}
}

// Step returns the number of activations seen so far.
func (t *Tracker) Step() int {
	return t.step
}

// OnButtonActivated records an activation of the button with the given ordinal.
// The step advances on every call, right or wrong.
func (t *Tracker) OnButtonActivated(ordinal, n int) Outcome {
	t.step++

	switch {
	case ordinal == t.step && t.step < n:
		t.buttons.RevealAndDisable(ordinal)
		return Progressed
	case ordinal == t.step && t.step == n:
		t.buttons.RevealAndDisable(ordinal)
		return Won
	default:
		t.buttons.RevealAndDisableAll()
		return Lost
	}
}
