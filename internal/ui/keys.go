package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit          key.Binding
	DismissNotice key.Binding
	ToggleTheme   key.Binding

	// Input form
	Submit key.Binding

	// Result view
	Copy       key.Binding
	Another    key.Binding
	QuitResult key.Binding
}

// DefaultKeyMap returns the default key bindings. Form bindings avoid plain
// letters because those belong to the URL input.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		DismissNotice: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close notice"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Toggle theme"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Shorten URL"),
		),

		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "Copy"),
		),
		Another: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "Shorten another URL"),
		),
		QuitResult: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// viewKeys is the help.KeyMap for whichever view is showing.
type viewKeys []key.Binding

func (v viewKeys) ShortHelp() []key.Binding { return v }

func (v viewKeys) FullHelp() [][]key.Binding { return [][]key.Binding{v} }

func (k keyMap) formHelp() viewKeys {
	return viewKeys{k.Submit, k.DismissNotice, k.ToggleTheme, k.Quit}
}

func (k keyMap) resultHelp() viewKeys {
	return viewKeys{k.Copy, k.Another, k.DismissNotice, k.ToggleTheme, k.QuitResult}
}
