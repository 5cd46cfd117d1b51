// Package grid is the events table tab: a pure Controller over the tabular
// engine and a Bubble Tea View that renders it.
package grid

import (
	"maps"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/grid"
)

// Controller owns the grid's view state, focused column, row cursor, and
// filter editing. It contains pure data logic with no Bubble Tea dependencies.
type Controller struct {
	columns  []grid.Column[event.Event]
	visible  []grid.Column[event.Event]
	state    grid.ViewState
	pageSize int

	records []event.Event
	result  grid.Result[event.Event]

	focus     int // index into visible
	cursor    int // row within the current page
	filtering bool
	filterBuf []rune
}

// NewController creates a grid controller over columns. A non-positive
// pageSize uses grid.DefaultPageSize.
func NewController(columns []grid.Column[event.Event], pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = grid.DefaultPageSize
	}
	c := &Controller{
		columns:  columns,
		visible:  grid.VisibleColumns(columns),
		state:    grid.NewViewState(),
		pageSize: pageSize,
	}
	c.project()
	return c
}

// SetRecords replaces the record set. The view state survives; the page is
// pulled back onto the last page if the new set is shorter.
func (c *Controller) SetRecords(records []event.Event) {
	c.records = records
	c.project()
	if c.state.Page > c.result.TotalPages {
		c.state.Page = c.result.TotalPages
		c.project()
	}
}

// Result returns the current projection.
func (c *Controller) Result() grid.Result[event.Event] { return c.result }

// State returns a copy of the view state.
func (c *Controller) State() grid.ViewState {
	s := c.state
	s.Filters = maps.Clone(c.state.Filters)
	return s
}

// Columns returns the visible columns in display order.
func (c *Controller) Columns() []grid.Column[event.Event] { return c.visible }

// PageSize returns the number of rows per page.
func (c *Controller) PageSize() int { return c.pageSize }

// FocusIndex returns the index of the focused column among Columns.
func (c *Controller) FocusIndex() int { return c.focus }

// FocusedColumn returns the focused column. ok is false when no column is
// visible.
func (c *Controller) FocusedColumn() (col grid.Column[event.Event], ok bool) {
	if len(c.visible) == 0 {
		return col, false
	}
	return c.visible[c.focus], true
}

// FocusNext moves column focus right, stopping at the last column.
func (c *Controller) FocusNext() {
	if c.focus < len(c.visible)-1 {
		c.focus++
	}
}

// FocusPrev moves column focus left, stopping at the first column.
func (c *Controller) FocusPrev() {
	if c.focus > 0 {
		c.focus--
	}
}

// SortFocused sorts by the focused column. Repeating it flips the direction.
// Non-sortable columns are ignored.
func (c *Controller) SortFocused() {
	col, ok := c.FocusedColumn()
	if !ok || !col.Sortable() {
		return
	}
	c.state.SortBy(col.Key)
	c.cursor = 0
	c.project()
}

// ToggleDirection flips the direction of the active sort.
func (c *Controller) ToggleDirection() {
	if c.state.SortKey == "" {
		return
	}
	c.state.SortBy(c.state.SortKey)
	c.project()
}

// ClearSort restores input order.
func (c *Controller) ClearSort() {
	c.state.ClearSort()
	c.project()
}

// StartFilter begins editing the focused column's filter. Columns that are
// not filterable are ignored.
func (c *Controller) StartFilter() bool {
	col, ok := c.FocusedColumn()
	if !ok || !col.Filterable() {
		return false
	}
	c.filtering = true
	c.filterBuf = []rune(c.state.Filter(col.Key))
	return true
}

// IsFiltering returns true while a filter is being edited.
func (c *Controller) IsFiltering() bool { return c.filtering }

// FilterInput returns the text being edited.
func (c *Controller) FilterInput() string { return string(c.filterBuf) }

// AddFilterRune appends to the focused column's filter and returns to page 1.
func (c *Controller) AddFilterRune(r rune) {
	c.filterBuf = append(c.filterBuf, r)
	c.applyFilter()
}

// DeleteFilterRune removes the last rune of the filter being edited.
func (c *Controller) DeleteFilterRune() {
	if len(c.filterBuf) == 0 {
		return
	}
	c.filterBuf = c.filterBuf[:len(c.filterBuf)-1]
	c.applyFilter()
}

// ConfirmFilter ends editing and keeps the filter.
func (c *Controller) ConfirmFilter() { c.filtering = false }

// CancelFilter ends editing and clears the focused column's filter.
func (c *Controller) CancelFilter() {
	c.filtering = false
	c.filterBuf = c.filterBuf[:0]
	c.applyFilter()
}

// ClearFilters removes every filter and returns to page 1.
func (c *Controller) ClearFilters() {
	c.filtering = false
	c.filterBuf = nil
	c.state.ClearFilters()
	c.state.FirstPage()
	c.cursor = 0
	c.project()
}

// Filter returns the filter text for a column key.
func (c *Controller) Filter(key string) string { return c.state.Filter(key) }

// NextPage advances one page unless already on the last one.
func (c *Controller) NextPage() {
	before := c.state.Page
	c.state.NextPage(c.result.TotalPages)
	if c.state.Page != before {
		c.cursor = 0
		c.project()
	}
}

// PrevPage goes back one page unless already on the first one.
func (c *Controller) PrevPage() {
	before := c.state.Page
	c.state.PrevPage()
	if c.state.Page != before {
		c.cursor = 0
		c.project()
	}
}

// MoveUp moves the row cursor up within the page.
func (c *Controller) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the row cursor down within the page.
func (c *Controller) MoveDown() {
	if c.cursor < len(c.result.Rows)-1 {
		c.cursor++
	}
}

// Cursor returns the row cursor within the current page.
func (c *Controller) Cursor() int { return c.cursor }

// Selected returns the event under the cursor, or nil if the page is empty.
func (c *Controller) Selected() *event.Event {
	if c.cursor < 0 || c.cursor >= len(c.result.Rows) {
		return nil
	}
	return &c.result.Rows[c.cursor]
}

// SelectID moves the page and cursor to the event with id, if it passes the
// current filters. It reports whether the event was found.
func (c *Controller) SelectID(id string) bool {
	all := grid.Project(c.records, c.columns, grid.Query{
		Filters:   c.state.Filters,
		SortKey:   c.state.SortKey,
		Direction: c.state.Direction,
		Page:      1,
		PageSize:  max(len(c.records), 1),
	})
	for i, e := range all.Rows {
		if e.ID == id {
			c.state.Page = i/c.pageSize + 1
			c.project()
			c.cursor = i % c.pageSize
			return true
		}
	}
	return false
}

func (c *Controller) applyFilter() {
	col, ok := c.FocusedColumn()
	if !ok {
		return
	}
	c.state.SetFilter(col.Key, string(c.filterBuf))
	c.state.FirstPage()
	c.cursor = 0
	c.project()
}

func (c *Controller) project() {
	c.result = grid.Project(c.records, c.columns, c.state.Query(c.pageSize))
	if c.cursor >= len(c.result.Rows) {
		c.cursor = max(len(c.result.Rows)-1, 0)
	}
}
