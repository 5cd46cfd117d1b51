package grid

import "charm.land/bubbles/v2/key"

// KeyMap holds the grid tab bindings.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Sort         key.Binding
	Direction    key.Binding
	ClearSort    key.Binding
	Filter       key.Binding
	ClearFilters key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		NextPage:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Direction:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		ClearSort:    key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "unsort")),
		Filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilters: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Sort, k.Direction, k.Filter, k.NextPage, k.PrevPage}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextPage, k.PrevPage},
		{k.Sort, k.Direction, k.ClearSort},
		{k.Filter, k.ClearFilters},
	}
}
