package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys (and key auto-repeat) to actions; the
// simulation only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow / A - held, move left
	ActionRight        // Right arrow / D - held, move right
	ActionJump         // Up arrow / W - held, jump while grounded
	ActionSneak        // Down arrow / S - held, sneak
	ActionPunch        // Space - discrete, punch attack
	ActionStart        // Enter - discrete, start game / acknowledge game over
	ActionPause        // P / Esc - discrete, pause or resume
	ActionDebug        // ` - discrete, toggle collision visualization

	// Power hotkeys 1-6, matching the PowerKind enumeration order.
	ActionPower1
	ActionPower2
	ActionPower3
	ActionPower4
	ActionPower5
	ActionPower6
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
	case ActionJump:
		return "Jump"
	case ActionSneak:
		return "Sneak"
	case ActionPunch:
		return "Punch"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionPower1, ActionPower2, ActionPower3, ActionPower4, ActionPower5, ActionPower6:
		return "Power"
	default:
		return "Unknown"
	}
}

// PowerActions lists the six power hotkey actions in hotkey order.
var PowerActions = [6]Action{
	ActionPower1, ActionPower2, ActionPower3,
	ActionPower4, ActionPower5, ActionPower6,
}

// InputFrame represents the input state for a single simulation tick.
// Held actions (movement) and discrete triggers (punch, power hotkeys)
// are both carried as per-tick booleans.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
