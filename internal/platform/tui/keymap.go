package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinfall/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a short window after each event. The first press
// needs a longer window to bridge the delay before auto-repeat starts.
const (
	DefaultInitialHold = 300 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// opposite pairs movement actions; pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionForward: core.ActionBack,
	core.ActionBack:    core.ActionForward,
	core.ActionLeft:    core.ActionRight,
	core.ActionRight:   core.ActionLeft,
}

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// the held state of each action between frames.
type KeyMapper struct {
	InitialHold time.Duration
	RepeatHold  time.Duration

	held map[core.Action]time.Time // action -> release deadline
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		held:        make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBack, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionMenu, false
	}
	return core.ActionNone, false
}

// Press records a key event for action at time now.
func (km *KeyMapper) Press(action core.Action, now time.Time) {
	if action == core.ActionNone {
		return
	}
	if km.held == nil {
		km.held = make(map[core.Action]time.Time)
	}
	if other, ok := opposite[action]; ok {
		delete(km.held, other)
	}

	hold := km.InitialHold
	if deadline, ok := km.held[action]; ok && now.Before(deadline) {
		hold = km.RepeatHold
	}
	deadline := now.Add(hold)
	if prev, ok := km.held[action]; ok && prev.After(deadline) {
		deadline = prev
	}
	km.held[action] = deadline
}

// Held reports whether action is held at time now.
func (km *KeyMapper) Held(action core.Action, now time.Time) bool {
	deadline, ok := km.held[action]
	return ok && now.Before(deadline)
}

// Frame returns the actions held at time now and forgets expired ones.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, deadline := range km.held {
		if now.Before(deadline) {
			frame.Set(action)
			continue
		}
		delete(km.held, action)
	}
	return frame
}

// Reset releases every action.
func (km *KeyMapper) Reset() {
	clear(km.held)
}

// MenuAction represents a menu-specific action derived from input.
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
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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
