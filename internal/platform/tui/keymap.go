package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colortap/internal/core"
	"github.com/vovakirdan/colortap/internal/games/colortap"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Digit keys report ActionSelect with the keypad tile they are bound to.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, tile int, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0, true
	}

	if runes := []rune(key); len(runes) == 1 {
		if id, ok := colortap.TileForKey(runes[0]); ok {
			return core.ActionSelect, id, false
		}
	}

	switch key {
	case " ", "enter":
		return core.ActionConfirm, 0, false
	case "p":
		return core.ActionPause, 0, false
	case "r":
		return core.ActionRestart, 0, false
	case "t":
		return core.ActionRetry, 0, false
	case "b", "esc":
		return core.ActionBack, 0, false
	}

	return core.ActionNone, 0, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, tile, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionSelect:
		frame.SelectTile(tile)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
