package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// KeyMap defines the kiosk key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Launch key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Launch, k.Close}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Launch, k.Close, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "launch"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to the controller's
// keyboard snapshot. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKeyToSnapshot records a key press in snap.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToSnapshot(msg tea.KeyMsg, snap *core.KeySnapshot) bool {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return true
	case key.Matches(msg, km.keys.Up):
		snap.Up = true
	case key.Matches(msg, km.keys.Down):
		snap.Down = true
	case key.Matches(msg, km.keys.Left):
		snap.Left = true
	case key.Matches(msg, km.keys.Right):
		snap.Right = true
	case key.Matches(msg, km.keys.Launch):
		snap.Activate = true
	case key.Matches(msg, km.keys.Close):
		snap.Close = true
	}
	return false
}
