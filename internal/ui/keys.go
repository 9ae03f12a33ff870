package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen-level bindings
type KeyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Home      key.Binding
	Explore   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
	QuitKey   key.Binding // only while no text field has focus
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Home: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "home"),
		),
		Explore: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "explore"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitKey: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// shortHelp merges the screen keys with the focused widget's keys
type shortHelp struct {
	screen KeyMap
	extra  []key.Binding
}

func (h shortHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, h.extra...), h.screen.NextFocus, h.screen.Help, h.screen.Quit)
}

func (h shortHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
