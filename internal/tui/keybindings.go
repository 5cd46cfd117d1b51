package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
)

// KeyMap holds the bindings handled by the root model regardless of the
// active tab.
type KeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Detail   key.Binding
	Reload   key.Binding
	Summary  key.Binding
	History  key.Binding
	Dismiss  key.Binding
	NextView key.Binding
	PrevView key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the root bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Summary:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "summary")),
		History:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "notifications")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss toast")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// viewHelp joins the root bindings with those of the active tab.
type viewHelp struct {
	root KeyMap
	view help.KeyMap
}

func (h viewHelp) ShortHelp() []key.Binding {
	out := []key.Binding{h.root.Add, h.root.Edit, h.root.Detail}
	if h.view != nil {
		out = append(out, h.view.ShortHelp()...)
	}
	return append(out, h.root.NextView, h.root.Help, h.root.Quit)
}

func (h viewHelp) FullHelp() [][]key.Binding {
	out := [][]key.Binding{
		{h.root.Add, h.root.Edit, h.root.Detail, h.root.Reload},
		{h.root.Summary, h.root.History, h.root.Dismiss},
		{h.root.NextView, h.root.Help, h.root.Quit},
	}
	if h.view != nil {
		out = append(out, h.view.FullHelp()...)
	}
	return out
}
