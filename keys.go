package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open   key.Binding
	Close  key.Binding
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Copy   key.Binding
	Filter key.Binding
	Mouse  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t", " "),
		key.WithHelp("t/space", "toggle"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("enter", "copy item"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Mouse: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "mouse"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Open, k.Close, k.Filter, k.Copy, k.Mouse, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Toggle},
		{k.Up, k.Down, k.Filter, k.Copy},
		{k.Mouse, k.Quit},
	}
}
