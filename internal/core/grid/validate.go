package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hay-kot/criterio"
)

var (
	ErrUnknownColumn  = errors.New("unknown column")
	ErrNotFilterable  = errors.New("column is not filterable")
	ErrNotSortable    = errors.New("column is not sortable")
	ErrInvalidPageNum = errors.New("page must be at least 1")
)

// ValidateQuery checks q against the known column set. Project itself
// ignores keys it does not recognise; this is for boundaries such as CLI
// flags where a typo should be reported instead of silently matching all.
func ValidateQuery[T any](columns []Column[T], q Query) error {
	var errs criterio.FieldErrorsBuilder

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		field := fmt.Sprintf("filters.%s", k)
		col, ok := Find(columns, k)
		switch {
		case !ok:
			errs = errs.Append(field, fmt.Errorf("%w %q", ErrUnknownColumn, k))
		case !col.Filterable() || !col.Visible():
			errs = errs.Append(field, fmt.Errorf("%w: %s", ErrNotFilterable, k))
		}
	}

	if q.SortKey != "" {
		col, ok := Find(columns, q.SortKey)
		switch {
		case !ok:
			errs = errs.Append("sort", fmt.Errorf("%w %q", ErrUnknownColumn, q.SortKey))
		case !col.Sortable() || !col.Visible():
			errs = errs.Append("sort", fmt.Errorf("%w: %s", ErrNotSortable, q.SortKey))
		}
	}

	if q.Page < 1 {
		errs = errs.Append("page", ErrInvalidPageNum)
	}

	return errs.ToError()
}
