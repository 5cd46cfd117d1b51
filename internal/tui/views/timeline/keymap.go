package timeline

import "charm.land/bubbles/v2/key"

// KeyMap holds the timeline tab bindings.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Advance key.Binding
	Retreat key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next event")),
		Prev:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev event")),
		Advance: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Retreat: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retreat, k.Advance, k.Prev, k.Next}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Retreat, k.Advance}, {k.Prev, k.Next}}
}
