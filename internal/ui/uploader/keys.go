package uploader

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the uploader bindings
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Remove key.Binding
	Copy   key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " ", "a"),
			key.WithHelp("enter", "upload"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "remove"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy location"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Remove, k.Up, k.Down}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pick, k.Remove, k.Copy},
	}
}
