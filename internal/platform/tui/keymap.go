package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoronin/connect4/internal/core"
)

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game-screen action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "enter", " ", "down", "s":
		return core.ActionDrop
	case "esc", "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction is a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft  // decrease the highlighted value
	MenuActionRight // increase the highlighted value
	MenuActionSelect
	MenuActionBack
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
	case "a", "left", "h", "-":
		return MenuActionLeft
	case "d", "right", "l", "+", "=":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
