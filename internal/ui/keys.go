package ui

import "github.com/charmbracelet/bubbles/key"

// sceneKeyMap defines key bindings for the swipe scene.
type sceneKeyMap struct {
	Quit key.Binding
	Help key.Binding
}

var sceneKeys = sceneKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
}

// ShortHelp implements help.KeyMap.
func (k sceneKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k sceneKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Help}}
}
