package grid

import "maps"

// ViewState is the caller-owned set of parameters that drive a projection.
// The engine never holds one; callers keep it alongside their UI state and
// build a Query from it on every render.
type ViewState struct {
	Page      int
	SortKey   string
	Direction Direction
	Filters   map[string]string
}

// NewViewState returns a state on page 1 with no sort and no filters.
func NewViewState() ViewState {
	return ViewState{
		Page:      1,
		Direction: Asc,
		Filters:   map[string]string{},
	}
}

// SortBy activates the column key. Selecting the active column again flips
// the direction. Selecting a different column sorts ascending and returns to
// page 1. Filters are left alone.
func (v *ViewState) SortBy(key string) {
	if key == v.SortKey && key != "" {
		v.Direction = v.Direction.Toggle()
		return
	}
	v.SortKey = key
	v.Direction = Asc
	v.Page = 1
}

// ClearSort restores input order.
func (v *ViewState) ClearSort() {
	v.SortKey = ""
	v.Direction = Asc
}

// SetFilter sets the filter text for a column. An empty value removes it.
func (v *ViewState) SetFilter(key, value string) {
	if v.Filters == nil {
		v.Filters = map[string]string{}
	}
	if value == "" {
		delete(v.Filters, key)
		return
	}
	v.Filters[key] = value
}

// Filter returns the filter text for a column.
func (v ViewState) Filter(key string) string {
	return v.Filters[key]
}

// ClearFilters removes every filter.
func (v *ViewState) ClearFilters() {
	v.Filters = map[string]string{}
}

// NextPage advances one page unless already on the last one.
func (v *ViewState) NextPage(totalPages int) {
	if v.Page < totalPages {
		v.Page++
	}
}

// PrevPage goes back one page unless already on the first one.
func (v *ViewState) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// FirstPage returns to page 1.
func (v *ViewState) FirstPage() {
	v.Page = 1
}

// Query builds the projection query for this state. The filter map is
// copied so the query does not alias caller state.
func (v ViewState) Query(pageSize int) Query {
	return Query{
		Filters:   maps.Clone(v.Filters),
		SortKey:   v.SortKey,
		Direction: v.Direction,
		Page:      v.Page,
		PageSize:  pageSize,
	}
}
