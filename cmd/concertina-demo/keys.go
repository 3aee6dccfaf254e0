package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's key bindings with built-in help text.
type keyMap struct {
	NextCard key.Binding
	PrevCard key.Binding
	Toggle   key.Binding
	ByNumber key.Binding
	Animate  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextCard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next card"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev card"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle card"),
		),
		ByNumber: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle by position"),
		),
		Animate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation on/off"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextCard, k.Animate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCard, k.PrevCard, k.Toggle, k.ByNumber},
		{k.Animate, k.Help, k.Quit},
	}
}
