package grid

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultPageSize is used when a query does not set a positive page size.
const DefaultPageSize = 10

// Direction is the sort direction of the active sort column.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// ParseDirection parses "asc" or "desc". The empty string is Asc.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return Asc, fmt.Errorf("invalid sort direction %q", s)
	}
}

// Query holds the parameters of a single projection.
type Query struct {
	Filters   map[string]string
	SortKey   string
	Direction Direction
	Page      int
	PageSize  int
}

// Result is a filtered, sorted, and paginated view of a record set.
type Result[T any] struct {
	Rows          []T
	TotalPages    int
	TotalFiltered int
	Page          int
	PageSize      int
}

// Empty reports whether no record passed the filters. This is distinct from
// an empty page: a page past the end of a non-empty result has no rows but
// is not Empty.
func (r Result[T]) Empty() bool { return r.TotalFiltered == 0 }

// HasNext reports whether a later page exists.
func (r Result[T]) HasNext() bool { return r.Page < r.TotalPages }

// HasPrev reports whether an earlier page exists.
func (r Result[T]) HasPrev() bool { return r.Page > 1 }

// Project filters, sorts, and paginates records according to q.
func Project[T any](records []T, columns []Column[T], q Query) Result[T] {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	filtered := Filter(records, columns, q.Filters)
	sorted := Sort(filtered, columns, q.SortKey, q.Direction)
	total := TotalPages(len(sorted), size)

	return Result[T]{
		Rows:          Paginate(sorted, q.Page, size),
		TotalPages:    total,
		TotalFiltered: len(sorted),
		Page:          q.Page,
		PageSize:      size,
	}
}

// Filter returns the records whose visible, filterable columns contain the
// matching filter value as a case-insensitive substring. Columns without a
// filter value pass. The result is a new slice; records is not modified.
func Filter[T any](records []T, columns []Column[T], filters map[string]string) []T {
	fold := cases.Fold()

	type active struct {
		col    Column[T]
		needle string
	}
	var checks []active
	for _, col := range VisibleColumns(columns) {
		if !col.Filterable() {
			continue
		}
		v := filters[col.Key]
		if v == "" {
			continue
		}
		checks = append(checks, active{col: col, needle: fold.String(v)})
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		keep := true
		for _, chk := range checks {
			hay := fold.String(Stringify(chk.col.Value(rec)))
			if !strings.Contains(hay, chk.needle) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// Sort returns a stably sorted copy of records ordered by the column named
// key. An empty key, or a key that does not name a visible sortable column,
// leaves the input order untouched.
func Sort[T any](records []T, columns []Column[T], key string, dir Direction) []T {
	out := slices.Clone(records)
	if key == "" {
		return out
	}

	col, ok := Find(columns, key)
	if !ok || !col.Sortable() || !col.Visible() {
		return out
	}

	c := NewComparer()
	slices.SortStableFunc(out, func(a, b T) int {
		av, bv := deref(col.Value(a)), deref(col.Value(b))

		// Nil placement ignores direction.
		if av == nil || bv == nil {
			return c.Compare(av, bv)
		}

		n := c.Compare(av, bv)
		if dir == Desc {
			return -n
		}
		return n
	})
	return out
}

// TotalPages returns the page count for n records, never less than one.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns the slice of records on the 1-based page. Pages outside
// the available range yield an empty slice.
func Paginate[T any](records []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := min(start+pageSize, len(records))
	return slices.Clone(records[start:end])
}
