package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case " ", "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// SteerLatch turns discrete terminal key presses into held steering.
// Terminals only report key repeats, so a press keeps its direction active
// for a few ticks; pressing the opposite direction cancels it.
type SteerLatch struct {
	hold  int
	left  int
	right int
}

// NewSteerLatch creates a latch that holds a press for hold ticks.
func NewSteerLatch(hold int) *SteerLatch {
	if hold < 1 {
		hold = 1
	}
	return &SteerLatch{hold: hold}
}

// Press records a steering action. Other actions are ignored.
func (l *SteerLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		l.left = l.hold
		l.right = 0
	case core.ActionRight:
		l.right = l.hold
		l.left = 0
	}
}

// Apply sets the held directions on frame and counts one tick down.
func (l *SteerLatch) Apply(frame *core.InputFrame) {
	if l.left > 0 {
		frame.Set(core.ActionLeft)
		l.left--
	}
	if l.right > 0 {
		frame.Set(core.ActionRight)
		l.right--
	}
}

// Release drops any held direction.
func (l *SteerLatch) Release() {
	l.left = 0
	l.right = 0
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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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
