package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; the simulation only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R key - start a new run after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit
	ActionPause          // P - pause/unpause, handled by the platform
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

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// movementOrder is the priority used when several directions are set.
var movementOrder = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// Movement returns the single movement intent of the frame, or ActionNone.
// When several directions are set, Up wins over Down, Down over Left,
// Left over Right.
func (f InputFrame) Movement() Action {
	for _, a := range movementOrder {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Heading latches the last movement action: the player keeps moving that
// way until another direction or Stop. Terminals report key presses but
// not releases.
type Heading struct {
	dir Action
}

// Press updates the heading from an action; non-movement actions are ignored.
func (h *Heading) Press(a Action) {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		h.dir = a
	}
}

// Stop clears the heading.
func (h *Heading) Stop() {
	h.dir = ActionNone
}

// Current returns the latched direction, or ActionNone.
func (h Heading) Current() Action {
	return h.dir
}
