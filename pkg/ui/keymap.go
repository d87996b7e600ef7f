package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the global key bindings used by the application and components.
type keymap struct {
	suggest key.Binding
	refresh key.Binding
	tab     key.Binding
	enter   key.Binding
	copy    key.Binding
	up      key.Binding
	down    key.Binding
	cancel  key.Binding
	quit    key.Binding
}

func newKeymap() keymap {
	return keymap{
		suggest: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "suggest")),
		refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// defaultKeymap provides a convenient globally accessible set of bindings.
var defaultKeymap = newKeymap()
