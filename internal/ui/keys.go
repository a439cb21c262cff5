package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Evaluate key.Binding
	Clear    key.Binding
	History  key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		History:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
