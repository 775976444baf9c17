package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// KeyBinding is what a key does in game: an action for one player.
// Held bindings stay pressed for a decay window after the last key event;
// the others are pressed for exactly one tick.
type KeyBinding struct {
	Player core.PlayerID
	Action core.Action
	Held   bool
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]KeyBinding
}

// NewKeyMapper creates a new key mapper with default bindings.
// Player 1 plays on WASD and Space, Player 2 on the arrows and Enter.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]KeyBinding{
			"w": {core.Player1, core.ActionUp, true},
			"s": {core.Player1, core.ActionDown, true},
			"a": {core.Player1, core.ActionLeft, true},
			"d": {core.Player1, core.ActionRight, true},
			" ": {core.Player1, core.ActionBomb, false},

			"up":    {core.Player2, core.ActionUp, true},
			"down":  {core.Player2, core.ActionDown, true},
			"left":  {core.Player2, core.ActionLeft, true},
			"right": {core.Player2, core.ActionRight, true},
			"enter": {core.Player2, core.ActionBomb, false},

			"p":  {core.Player1, core.ActionPause, false},
			"r":  {core.Player1, core.ActionRestart, false},
			"f5": {core.Player1, core.ActionSave, false},
		},
	}
}

// MapKey translates a key message to an in-game binding.
// Quit and back keys are reported separately and never bound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (b KeyBinding, ok bool, action core.Action) {
	key := msg.String()

	// Global keys
	switch key {
	case "ctrl+c", "q":
		return KeyBinding{}, false, core.ActionQuit
	case "esc":
		return KeyBinding{}, false, core.ActionBack
	}

	// Upper-case letters when caps lock is on
	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		key = string(key[0] + 'a' - 'A')
	}

	b, ok = km.bindings[key]
	return b, ok, core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
