package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionForward, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward, false},
		{"s", runeKey('s'), core.ActionBack, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionBack, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldWindow(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.Press(core.ActionForward, t0)
	if !km.Frame(t0.Add(DefaultInitialHold - time.Millisecond)).Has(core.ActionForward) {
		t.Fatal("forward should be held inside the initial window")
	}
	if km.Frame(t0.Add(DefaultInitialHold)).Has(core.ActionForward) {
		t.Fatal("forward should be released once the window expires")
	}
	if km.Held(core.ActionForward, t0) {
		t.Fatal("expired action should be forgotten by Frame")
	}
}

func TestAutoRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.Press(core.ActionLeft, t0)
	// Auto-repeat events keep the key down past the initial window.
	for i := 1; i <= 10; i++ {
		now := t0.Add(time.Duration(i) * 50 * time.Millisecond)
		km.Press(core.ActionLeft, now)
		if !km.Frame(now).Has(core.ActionLeft) {
			t.Fatalf("left released during auto-repeat at step %d", i)
		}
	}

	last := t0.Add(500 * time.Millisecond)
	if !km.Held(core.ActionLeft, last.Add(DefaultRepeatHold-time.Millisecond)) {
		t.Error("left should stay held for the repeat window after the last event")
	}
	if km.Held(core.ActionLeft, last.Add(DefaultRepeatHold)) {
		t.Error("left should be released after the repeat window")
	}
}

func TestOppositeReleases(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.Press(core.ActionLeft, t0)
	km.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := km.Frame(t0.Add(20 * time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released by pressing right")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestIndependentActionsCombine(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.Press(core.ActionForward, t0)
	km.Press(core.ActionRight, t0)

	frame := km.Frame(t0.Add(time.Millisecond))
	if !frame.Has(core.ActionForward) || !frame.Has(core.ActionRight) {
		t.Errorf("expected forward and right held, got %v", frame.Actions)
	}

	km.Reset()
	if len(km.Frame(t0.Add(time.Millisecond)).Actions) != 0 {
		t.Error("Reset should release everything")
	}
}
