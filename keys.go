package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Left       key.Binding
	Right      key.Binding
	Add        key.Binding
	Duplicate  key.Binding
	Remove     key.Binding
	Edit       key.Binding
	AdsRate    key.Binding
	Escape     key.Binding
	Enter      key.Binding
	ChartMrg   key.Binding
	ChartPft   key.Binding
	ChartCost  key.Binding
	Order      key.Binding
	Filter     key.Binding
	Help       key.Binding
	ToggleAnim key.Binding
	Export     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel/field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel/field"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "prev product"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next product"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "duplicate"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		AdsRate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "global ads %"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply/next"),
		),
		ChartMrg: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "margin chart"),
		),
		ChartPft: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "profit chart"),
		),
		ChartCost: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "cost chart"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "chart order"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "chart filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleAnim: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "motion"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/down", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/up", "prev field"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Left, k.AdsRate, k.Tab, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Duplicate, k.Remove, k.Edit},
		{k.Left, k.Right, k.Tab, k.ShiftTab, k.NextField, k.PrevField},
		{k.ChartMrg, k.ChartPft, k.ChartCost, k.Order, k.Filter},
		{k.AdsRate, k.Enter, k.Escape, k.Export},
		{k.Help, k.ToggleAnim, k.Quit, k.ForceQuit},
	}
}

// editorHelp is shown in the help bar while a text input owns the keyboard.
type editorHelp struct{ keys keyMap }

func (e editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{e.keys.Enter, e.keys.NextField, e.keys.PrevField, e.keys.Escape, e.keys.ForceQuit}
}

func (e editorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
