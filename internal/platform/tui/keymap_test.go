package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
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
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runeKey('x'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %s, %v; want %s, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameFireIsEdgeTriggered(t *testing.T) {
	km := NewKeyMapper()
	hold := core.NewHoldTracker(5)
	frame := core.NewInputFrame()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	km.MapKeyToFrame(space, &frame, hold)
	if !frame.Has(core.ActionFire) {
		t.Fatal("first press should fire")
	}
	hold.Apply(&frame)
	frame.Clear()

	// Auto-repeat arriving while the key is still held
	km.MapKeyToFrame(space, &frame, hold)
	if frame.Has(core.ActionFire) {
		t.Error("auto-repeat should not fire again")
	}
}

func TestMapKeyToFrameSteeringIsHeld(t *testing.T) {
	km := NewKeyMapper()
	hold := core.NewHoldTracker(3)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, hold)
	for i := 0; i < 3; i++ {
		hold.Apply(&frame)
		if !frame.IsDown(core.ActionLeft) {
			t.Fatalf("left should be held on tick %d", i)
		}
		frame.Clear()
	}

	// Switching direction drops the old one immediately
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame, hold)
	hold.Apply(&frame)
	if frame.IsDown(core.ActionLeft) || !frame.IsDown(core.ActionRight) {
		t.Errorf("held = %v, want only right", frame.Held)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
