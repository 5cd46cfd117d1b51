// Package grid is the tabular engine behind the events grid. Every function
// is a pure projection over a record slice: nothing here mutates its inputs
// or keeps state between calls.
package grid

// Column describes how one field of a record is extracted, labelled, and
// treated for sorting and filtering. The zero value of each flag means the
// column is sortable, filterable, and visible.
type Column[T any] struct {
	Key      string
	Label    string
	Accessor func(T) any

	DisableSort   bool
	DisableFilter bool
	Hidden        bool
}

func (c Column[T]) Sortable() bool   { return !c.DisableSort }
func (c Column[T]) Filterable() bool { return !c.DisableFilter }
func (c Column[T]) Visible() bool    { return !c.Hidden }

// Value returns the accessor output for rec, or nil when no accessor is set.
func (c Column[T]) Value(rec T) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(rec)
}

// VisibleColumns returns the columns that participate in rendering and
// filtering, in their declared order.
func VisibleColumns[T any](columns []Column[T]) []Column[T] {
	out := make([]Column[T], 0, len(columns))
	for _, c := range columns {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the column with the given key.
func Find[T any](columns []Column[T], key string) (Column[T], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// HideColumns returns a copy of columns with every key in hidden marked
// Hidden. Unknown keys are ignored.
func HideColumns[T any](columns []Column[T], hidden []string) []Column[T] {
	set := make(map[string]bool, len(hidden))
	for _, k := range hidden {
		set[k] = true
	}

	out := make([]Column[T], len(columns))
	for i, c := range columns {
		if set[c.Key] {
			c.Hidden = true
		}
		out[i] = c
	}
	return out
}
