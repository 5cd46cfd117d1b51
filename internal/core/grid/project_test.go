package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Status string
	Score  *int
}

func intPtr(n int) *int { return &n }

func testColumns() []Column[row] {
	return []Column[row]{
		{Key: "id", Label: "ID", Accessor: func(r row) any { return r.ID }},
		{Key: "name", Label: "Name", Accessor: func(r row) any { return r.Name }},
		{Key: "status", Label: "Status", Accessor: func(r row) any { return r.Status }},
		{Key: "score", Label: "Score", Accessor: func(r row) any { return r.Score }, DisableFilter: true},
	}
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func numbered(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("%02d", i), Name: fmt.Sprintf("row %d", i)}
	}
	return rows
}

func TestFilter(t *testing.T) {
	records := []row{
		{ID: "1", Name: "Design review", Status: "completed"},
		{ID: "2", Name: "Bug triage", Status: "in-progress"},
		{ID: "3", Name: "Sprint planning", Status: "completed"},
	}

	t.Run("substring match on status", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"status": "complete"})
		assert.Equal(t, []string{"1", "3"}, ids(got))
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"name": "BUG"})
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"status": "completed", "name": "sprint"})
		assert.Equal(t, []string{"3"}, ids(got))
	})

	t.Run("empty filter value passes everything", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"name": ""})
		assert.Len(t, got, 3)
	})

	t.Run("non-filterable column is ignored", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"score": "nothing matches"})
		assert.Len(t, got, 3)
	})

	t.Run("hidden column is ignored", func(t *testing.T) {
		cols := HideColumns(testColumns(), []string{"status"})
		got := Filter(records, cols, map[string]string{"status": "in-progress"})
		assert.Len(t, got, 3)
	})

	t.Run("unknown key is ignored", func(t *testing.T) {
		got := Filter(records, testColumns(), map[string]string{"nope": "x"})
		assert.Len(t, got, 3)
	})

	t.Run("every kept row matches and no dropped row does", func(t *testing.T) {
		filters := map[string]string{"name": "r"}
		got := Filter(records, testColumns(), filters)
		kept := map[string]bool{}
		for _, r := range got {
			kept[r.ID] = true
			assert.Contains(t, r.Name, "r")
		}
		for _, r := range records {
			if !kept[r.ID] {
				assert.NotContains(t, r.Name, "r")
			}
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []row{{ID: "b"}, {ID: "a"}}
		_ = Filter(in, testColumns(), map[string]string{"id": "a"})
		assert.Equal(t, []string{"b", "a"}, ids(in))
	})
}

func TestSort(t *testing.T) {
	t.Run("no key keeps input order", func(t *testing.T) {
		in := []row{{ID: "c"}, {ID: "a"}, {ID: "b"}}
		assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(in, testColumns(), "", Asc)))
	})

	t.Run("unknown key keeps input order", func(t *testing.T) {
		in := []row{{ID: "c"}, {ID: "a"}}
		assert.Equal(t, []string{"c", "a"}, ids(Sort(in, testColumns(), "missing", Asc)))
	})

	t.Run("non-sortable column keeps input order", func(t *testing.T) {
		cols := testColumns()
		cols[0].DisableSort = true
		in := []row{{ID: "c"}, {ID: "a"}}
		assert.Equal(t, []string{"c", "a"}, ids(Sort(in, cols, "id", Asc)))
	})

	t.Run("strings collate case insensitively at primary strength", func(t *testing.T) {
		in := []row{{ID: "1", Name: "banana"}, {ID: "2", Name: "Apple"}, {ID: "3", Name: "cherry"}}
		assert.Equal(t, []string{"2", "1", "3"}, ids(Sort(in, testColumns(), "name", Asc)))
	})

	t.Run("desc reverses distinct values", func(t *testing.T) {
		in := []row{{ID: "a"}, {ID: "c"}, {ID: "b"}}
		asc := ids(Sort(in, testColumns(), "id", Asc))
		desc := ids(Sort(in, testColumns(), "id", Desc))
		assert.Equal(t, []string{"a", "b", "c"}, asc)
		assert.Equal(t, []string{"c", "b", "a"}, desc)
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		in := []row{{ID: "1", Status: "x"}, {ID: "2", Status: "x"}, {ID: "3", Status: "a"}}
		assert.Equal(t, []string{"3", "1", "2"}, ids(Sort(in, testColumns(), "status", Asc)))
		assert.Equal(t, []string{"1", "2", "3"}, ids(Sort(in, testColumns(), "status", Desc)))
	})

	t.Run("numbers use natural order", func(t *testing.T) {
		in := []row{{ID: "a", Score: intPtr(10)}, {ID: "b", Score: intPtr(9)}, {ID: "c", Score: intPtr(100)}}
		assert.Equal(t, []string{"b", "a", "c"}, ids(Sort(in, testColumns(), "score", Asc)))
	})

	t.Run("nil sorts last in both directions", func(t *testing.T) {
		in := []row{{ID: "n1"}, {ID: "a", Score: intPtr(1)}, {ID: "n2"}, {ID: "b", Score: intPtr(2)}}
		assert.Equal(t, []string{"a", "b", "n1", "n2"}, ids(Sort(in, testColumns(), "score", Asc)))
		assert.Equal(t, []string{"b", "a", "n1", "n2"}, ids(Sort(in, testColumns(), "score", Desc)))
	})
}

func TestPagination(t *testing.T) {
	records := numbered(25)

	tests := []struct {
		name     string
		page     int
		wantLen  int
		wantNext bool
	}{
		{"first page", 1, 10, true},
		{"last page", 3, 5, false},
		{"past the end", 4, 0, false},
		{"zero page", 0, 0, true},
		{"negative page", -2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Project(records, testColumns(), Query{Page: tt.page, PageSize: 10})
			assert.Len(t, res.Rows, tt.wantLen)
			assert.Equal(t, 3, res.TotalPages)
			assert.Equal(t, 25, res.TotalFiltered)
			assert.False(t, res.Empty())
			assert.Equal(t, tt.wantNext, res.HasNext())
		})
	}

	t.Run("pages concatenate to the full sequence", func(t *testing.T) {
		sorted := Sort(records, testColumns(), "id", Desc)
		var all []row
		for p := 1; p <= TotalPages(len(sorted), 7); p++ {
			res := Project(records, testColumns(), Query{SortKey: "id", Direction: Desc, Page: p, PageSize: 7})
			assert.LessOrEqual(t, len(res.Rows), 7)
			all = append(all, res.Rows...)
		}
		assert.Equal(t, ids(sorted), ids(all))
	})

	t.Run("default page size", func(t *testing.T) {
		res := Project(records, testColumns(), Query{Page: 1})
		assert.Equal(t, DefaultPageSize, res.PageSize)
		assert.Len(t, res.Rows, DefaultPageSize)
	})
}

func TestProject_EmptyResult(t *testing.T) {
	res := Project(numbered(3), testColumns(), Query{
		Filters: map[string]string{"name": "zzz"},
		Page:    1,
	})

	assert.True(t, res.Empty())
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.TotalPages)
	assert.False(t, res.HasNext())
	assert.False(t, res.HasPrev())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n, tt.size))
		})
	}
}

func TestProject_SortAppliesToFilteredSet(t *testing.T) {
	records := []row{
		{ID: "3", Status: "done"},
		{ID: "1", Status: "open"},
		{ID: "2", Status: "done"},
	}

	res := Project(records, testColumns(), Query{
		Filters:   map[string]string{"status": "done"},
		SortKey:   "id",
		Direction: Asc,
		Page:      1,
	})

	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"2", "3"}, ids(res.Rows))
}
