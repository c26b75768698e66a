package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - tap the cell under the cursor
	ActionHint           // ? key - toggle the hint marker
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the puzzle
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionSizeUp         // +, = - restart on a larger board
	ActionSizeDown       // -, _ - restart on a smaller board
	ActionDifficulty     // T - restart with the next difficulty
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionHint:
		return "Hint"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSizeUp:
		return "SizeUp"
	case ActionSizeDown:
		return "SizeDown"
	case ActionDifficulty:
		return "Difficulty"
	default:
		return "Unknown"
	}
}

// Point is a screen coordinate in characters.
type Point struct {
	X, Y int
}

// InputFrame represents the input state during one tick.
// It contains all actions that were triggered during this frame plus an
// optional pointer click in screen coordinates.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Click is the last mouse press of this frame, if HasClick is set.
	Click    Point
	HasClick bool
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

// SetClick records a mouse press at (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = Point{X: x, Y: y}
	f.HasClick = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.HasClick
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasClick = false
	f.Click = Point{}
}
