package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Reveal   key.Binding
	Next     key.Binding
	Previous key.Binding
	Reset    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

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
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reveal"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next card"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "previous card"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "restart deck"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
