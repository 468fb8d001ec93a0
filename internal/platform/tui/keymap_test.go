package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapping(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateLeft, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRotateRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"d", runeKey('d'), core.ActionOneLineDown, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestCustomKeyBindings(t *testing.T) {
	kb := config.DefaultTetrisConfig().Keys
	kb.Left = []string{"a"}
	kb.Quit = []string{"esc"}
	km := NewKeyMapper(NewKeyMap(kb))

	if action, _ := km.MapKey(runeKey('a')); action != core.ActionLeft {
		t.Errorf("custom left binding: got %v", action)
	}
	if action, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}); action != core.ActionNone {
		t.Errorf("replaced binding should not match, got %v", action)
	}
	if _, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyEsc}); !quit {
		t.Error("esc should quit with custom bindings")
	}
	if _, quit := km.MapKey(runeKey('q')); quit {
		t.Error("q should no longer quit")
	}
}

func TestQuitWinsOnConflict(t *testing.T) {
	kb := config.DefaultTetrisConfig().Keys
	kb.Pause = []string{"q"}
	km := NewKeyMapper(NewKeyMap(kb))

	action, quit := km.MapKey(runeKey('q'))
	if action != core.ActionQuit || !quit {
		t.Errorf("MapKey(q) = %v, %v; expected quit", action, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left should not quit")
	}
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionLeft {
		t.Errorf("frame actions = %v, expected [Left Left]", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit must not be queued for the game")
	}
}

func TestHelpKeys(t *testing.T) {
	tests := []struct {
		keys     []string
		expected string
	}{
		{[]string{"left", "h"}, "left/h"},
		{[]string{" "}, "space"},
		{[]string{"q", "ctrl+c"}, "q/ctrl+c"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := helpKeys(tt.keys); got != tt.expected {
			t.Errorf("helpKeys(%q) = %q, expected %q", tt.keys, got, tt.expected)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()

	if got := k.Drop.Help().Key; got != "space" {
		t.Errorf("Drop help key = %q, expected \"space\"", got)
	}
	if got := k.Left.Help().Desc; got != "move left" {
		t.Errorf("Left help desc = %q", got)
	}

	n := 0
	for _, group := range k.FullHelp() {
		n += len(group)
	}
	if n != 10 {
		t.Errorf("FullHelp lists %d bindings, expected 10", n)
	}
}
