package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move player left
	ActionRight          // Right arrow, D - move player right
	ActionClick          // Primary pointer press; position is in InputFrame.Pointer
	ActionRestart        // R key - replay after game over
	ActionQuit           // Q, Ctrl+C, Esc - exit the application
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
	case ActionClick:
		return "Click"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Direction actions mean "held this tick"; Click and Restart mean "pressed this tick".
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	pointer Point
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at logical playfield coordinates.
// Only the last click of a frame is kept.
func (f *InputFrame) Click(x, y int) {
	f.Set(ActionClick)
	f.pointer = Point{X: x, Y: y}
}

// Pointer returns the position of this frame's click and whether there was one.
func (f InputFrame) Pointer() (Point, bool) {
	return f.pointer, f.Has(ActionClick)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointer = Point{}
}
