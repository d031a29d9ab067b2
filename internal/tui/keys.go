package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Export     key.Binding
	AnchorUp   key.Binding
	AnchorDown key.Binding
	AmountUp   key.Binding
	AmountDown key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause:      key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	AnchorUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "anchor")),
	AnchorDown: key.NewBinding(key.WithKeys("-")),
	AmountUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "trade amount")),
	AmountDown: key.NewBinding(key.WithKeys("[")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Export, k.AnchorUp, k.AmountUp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
