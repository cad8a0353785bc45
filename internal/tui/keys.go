package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Switch   key.Binding
	Unit     key.Binding
	Submit   key.Binding
	NewRound key.Binding
	Left     key.Binding
	Right    key.Binding
	History  key.Binding
	Export   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch game")),
		Unit:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "units")),
		Submit:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "submit")),
		NewRound: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "nudge")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		History:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Submit, k.NewRound, k.Unit, k.Left, k.History, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Unit, k.Submit, k.NewRound},
		{k.Left, k.History, k.Export, k.Quit},
	}
}
