package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/punchworks/puncher/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Terminals report key presses and auto-repeats but never releases, so
// movement keys cannot be observed as held directly. The mapper classifies
// each action as held or discrete: held actions are kept alive by the model
// for a short tick window that auto-repeat keeps refreshing, discrete
// actions fire for exactly one tick per press.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionNone, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up", "w":
		return core.ActionJump, false
	case "down", "s":
		return core.ActionSneak, false
	case " ":
		return core.ActionPunch, false
	case "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "`":
		return core.ActionDebug, false
	case "1", "2", "3", "4", "5", "6":
		idx := int(key[0] - '1')
		return core.PowerActions[idx], false
	}

	return core.ActionNone, false
}

// IsHeld reports whether the action is driven by a held key and should be
// kept alive across ticks between auto-repeat events.
func (km *KeyMapper) IsHeld(action core.Action) bool {
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionSneak:
		return true
	}
	return false
}
