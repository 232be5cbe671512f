package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, shift+tab - focus previous button
	ActionRight          // Right arrow, tab - focus next button
	ActionConfirm        // Enter, Space - activate the focused button
	ActionDigit          // 0-9 - configuration input, value in InputFrame.Digit
	ActionClick          // Mouse press, position in InputFrame.ClickX/ClickY
	ActionRestart        // R key - replay with the previous button count
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - freeze the game clock
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionDigit:
		return "Digit"
	case ActionClick:
		return "Click"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Digit is the last digit typed this frame (valid with ActionDigit).
	Digit int

	// ClickX and ClickY are the cell coordinates of the last click (valid with ActionClick).
	ClickX, ClickY int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetDigit records a typed digit.
func (f *InputFrame) SetDigit(d int) {
	f.Set(ActionDigit)
	f.Digit = d
}

// SetClick records a pointer press at a cell position.
func (f *InputFrame) SetClick(x, y int) {
	f.Set(ActionClick)
	f.ClickX, f.ClickY = x, y
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digit = 0
	f.ClickX, f.ClickY = 0, 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digit = f.Digit
	clone.ClickX, clone.ClickY = f.ClickX, f.ClickY
	return clone
}
