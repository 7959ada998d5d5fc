package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Confirm  key.Binding
	Settings key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete (confirm dialog)"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings form"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p", "ctrl+p"),
			key.WithHelp("p", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Confirm, k.Settings, k.Palette, k.Help, k.Quit}
}
