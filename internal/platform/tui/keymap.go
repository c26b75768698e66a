package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/queens-arcade/internal/core"
)

// boardKeys maps key strings to board actions. Arrows, WASD and vim keys
// all move the cursor.
var boardKeys = map[string]core.Action{
	"up": core.ActionUp,
	"w":  core.ActionUp,
	"k":  core.ActionUp,

	"down": core.ActionDown,
	"s":    core.ActionDown,
	"j":    core.ActionDown,

	"left": core.ActionLeft,
	"a":    core.ActionLeft,
	"h":    core.ActionLeft,

	"right": core.ActionRight,
	"d":     core.ActionRight,
	"l":     core.ActionRight,

	"enter":  core.ActionConfirm,
	" ":      core.ActionConfirm,
	"?":      core.ActionHint,
	"esc":    core.ActionBack,
	"b":      core.ActionBack,
	"r":      core.ActionRestart,
	"+":      core.ActionSizeUp,
	"=":      core.ActionSizeUp,
	"-":      core.ActionSizeDown,
	"_":      core.ActionSizeDown,
	"t":      core.ActionDifficulty,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// menuKeys maps key strings to menu actions.
var menuKeys = map[string]MenuAction{
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
	"q":      MenuActionQuit,
	"ctrl+c": MenuActionQuit,
}

// KeyMapper translates Bubble Tea input messages to board and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the board action for a key (ActionNone if unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = boardKeys[msg.String()]
	return action, action == core.ActionQuit
}

// MapMouseToFrame records a left-button press as a click on frame.
// Returns true if the event was used.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.SetClick(msg.X, msg.Y)
	return true
}

// MenuAction is a menu command derived from a key.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
