package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Drop        key.Binding
	OneLineDown key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateLeft, k.Drop, k.Pause, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.RotateLeft, k.RotateRight},
		{k.Drop, k.OneLineDown},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Left:        newBinding(kb.Left, "move left"),
		Right:       newBinding(kb.Right, "move right"),
		RotateLeft:  newBinding(kb.RotateLeft, "rotate left"),
		RotateRight: newBinding(kb.RotateRight, "rotate right"),
		Drop:        newBinding(kb.Drop, "drop"),
		OneLineDown: newBinding(kb.OneLineDown, "down one line"),
		Pause:       newBinding(kb.Pause, "pause"),
		Restart:     newBinding(kb.Restart, "restart"),
		Quit:        newBinding(kb.Quit, "quit"),
		Screenshot:  newBinding([]string{"ctrl+s"}, "screenshot"),
	}
}

// DefaultKeyMap returns the bindings of the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys formats key names for display, e.g. "left/h" or "space".
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys  KeyMap
	table []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper for the given bindings. When a key is
// bound to several actions, quit wins, then the order of KeyMap fields.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	km.table = []boundAction{
		{&km.keys.Quit, core.ActionQuit},
		{&km.keys.Screenshot, core.ActionScreenshot},
		{&km.keys.Left, core.ActionLeft},
		{&km.keys.Right, core.ActionRight},
		{&km.keys.RotateLeft, core.ActionRotateLeft},
		{&km.keys.RotateRight, core.ActionRotateRight},
		{&km.keys.Drop, core.ActionDrop},
		{&km.keys.OneLineDown, core.ActionOneLineDown},
		{&km.keys.Pause, core.ActionPause},
		{&km.keys.Restart, core.ActionRestart},
	}
	return km
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.table {
		if key.Matches(msg, *b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	frame.Set(action)
	return false
}
