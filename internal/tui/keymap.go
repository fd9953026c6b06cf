package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkaryakin/snaketerm/internal/core"
	"github.com/dkaryakin/snaketerm/internal/snake"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// HeadingFor converts a directional action to an engine heading.
// Returns false for non-directional actions.
func HeadingFor(a core.Action) (snake.Heading, bool) {
	switch a {
	case core.ActionUp:
		return snake.HeadingUp, true
	case core.ActionDown:
		return snake.HeadingDown, true
	case core.ActionLeft:
		return snake.HeadingLeft, true
	case core.ActionRight:
		return snake.HeadingRight, true
	default:
		return snake.HeadingRight, false
	}
}
