package core

// Action represents a semantic game action, abstracted from physical keys.
// Front-ends translate their own key events into actions so the game only
// sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionForward        // W, Up arrow - move away from the camera
	ActionBack           // S, Down arrow - move toward the camera
	ActionLeft           // A, Left arrow - strafe left
	ActionRight          // D, Right arrow - strafe right
	ActionPause          // P - held state of the pause key
	ActionRestart        // R - restart after a timed round ends
	ActionConfirm        // Enter - confirm selection in menu
	ActionMenu           // B, Escape - leave to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one frame.
// Unlike an event list it carries level state: an action stays set for every
// frame its key is down.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// bitActions lists the actions that survive Bits/FrameFromBits, in bit order.
var bitActions = [...]Action{
	ActionForward,
	ActionBack,
	ActionLeft,
	ActionRight,
	ActionPause,
	ActionRestart,
}

// Bits packs the gameplay-relevant actions into a bitmask for recordings.
func (f InputFrame) Bits() uint8 {
	var b uint8
	for i, a := range bitActions {
		if f.Has(a) {
			b |= 1 << i
		}
	}
	return b
}

// FrameFromBits is the inverse of Bits.
func FrameFromBits(b uint8) InputFrame {
	f := NewInputFrame()
	for i, a := range bitActions {
		if b&(1<<i) != 0 {
			f.Set(a)
		}
	}
	return f
}
