package event

import "github.com/colonyops/eventboard/internal/core/grid"

// Column keys of the default grid layout.
const (
	ColumnID     = "id"
	ColumnTitle  = "title"
	ColumnDate   = "date"
	ColumnStatus = "status"
)

// Columns returns the default grid columns for events. Dates are sortable
// but not filterable.
func Columns() []grid.Column[Event] {
	return []grid.Column[Event]{
		{
			Key:      ColumnID,
			Label:    "ID",
			Accessor: func(e Event) any { return e.ID },
		},
		{
			Key:      ColumnTitle,
			Label:    "Title",
			Accessor: func(e Event) any { return e.Title },
		},
		{
			Key:           ColumnDate,
			Label:         "Date",
			Accessor:      func(e Event) any { return e.Date },
			DisableFilter: true,
		},
		{
			Key:      ColumnStatus,
			Label:    "Status",
			Accessor: func(e Event) any { return string(e.Status) },
		},
	}
}

// ColumnKeys returns the keys of Columns in order.
func ColumnKeys() []string {
	cols := Columns()
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = c.Key
	}
	return keys
}
