package timeline

import (
	"fmt"
	"testing"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ev(id, date, title string) event.Event {
	return event.Event{ID: id, Date: date, Title: title, Status: event.StatusNotStarted}
}

func titles(events []event.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestGroupByDate(t *testing.T) {
	t.Run("groups by date and sorts", func(t *testing.T) {
		groups := GroupByDate([]event.Event{
			ev("1", "2024-01-02", "B"),
			ev("2", "2024-01-01", "A"),
			ev("3", "2024-01-01", "C"),
		})

		require.Len(t, groups, 2)
		assert.Equal(t, "2024-01-01", groups[0].Date)
		assert.Equal(t, []string{"A", "C"}, titles(groups[0].Events))
		assert.Equal(t, "2024-01-02", groups[1].Date)
		assert.Equal(t, []string{"B"}, titles(groups[1].Events))
	})

	t.Run("equal titles keep input order", func(t *testing.T) {
		groups := GroupByDate([]event.Event{
			ev("first", "2024-03-01", "Sync"),
			ev("second", "2024-03-01", "Sync"),
		})

		require.Len(t, groups, 1)
		assert.Equal(t, "first", groups[0].Events[0].ID)
		assert.Equal(t, "second", groups[0].Events[1].ID)
	})

	t.Run("titles collate case insensitively", func(t *testing.T) {
		groups := GroupByDate([]event.Event{
			ev("1", "2024-03-01", "bug triage"),
			ev("2", "2024-03-01", "Architecture discussion"),
		})
		assert.Equal(t, []string{"Architecture discussion", "bug triage"}, titles(groups[0].Events))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupByDate(nil))
	})

	t.Run("flatten keeps every record exactly once", func(t *testing.T) {
		var in []event.Event
		for i := range 40 {
			in = append(in, ev(fmt.Sprint(i), fmt.Sprintf("2024-02-%02d", i%7+1), fmt.Sprintf("t%d", i%5)))
		}

		groups := GroupByDate(in)
		flat := Flatten(groups)
		require.Len(t, flat, len(in))

		seen := map[string]int{}
		for _, e := range flat {
			seen[e.ID]++
		}
		for _, e := range in {
			assert.Equal(t, 1, seen[e.ID], "event %s", e.ID)
		}

		for _, g := range groups {
			for _, e := range g.Events {
				assert.Equal(t, g.Date, e.Date)
			}
		}
	})
}

func TestLocateAndIndexOf(t *testing.T) {
	groups := GroupByDate([]event.Event{
		ev("b", "2024-01-02", "B"),
		ev("a", "2024-01-01", "A"),
		ev("c", "2024-01-01", "C"),
	})

	tests := []struct {
		flat      int
		wantGroup int
		wantItem  int
		wantOK    bool
	}{
		{0, 0, 0, true},
		{1, 0, 1, true},
		{2, 1, 0, true},
		{3, 0, 0, false},
		{-1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("flat %d", tt.flat), func(t *testing.T) {
			g, i, ok := Locate(groups, tt.flat)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantGroup, g)
				assert.Equal(t, tt.wantItem, i)
			}
		})
	}

	assert.Equal(t, 2, IndexOf(groups, "b"))
	assert.Equal(t, 1, IndexOf(groups, "c"))
	assert.Equal(t, -1, IndexOf(groups, "missing"))
	assert.Equal(t, 2, FirstIndexOf(groups, 1))
	assert.Equal(t, -1, FirstIndexOf(groups, 5))
}

func TestCarousel(t *testing.T) {
	t.Run("default window", func(t *testing.T) {
		c := NewCarousel(0)
		assert.Equal(t, DefaultWindow, c.Window())
	})

	t.Run("advance and retreat by one group", func(t *testing.T) {
		c := NewCarousel(5)
		c.SetTotal(7)

		assert.False(t, c.CanRetreat())
		assert.True(t, c.CanAdvance())

		c.Advance()
		assert.Equal(t, 1, c.Offset())
		c.Advance()
		assert.Equal(t, 2, c.Offset())
		assert.False(t, c.CanAdvance())

		c.Advance()
		assert.Equal(t, 2, c.Offset(), "advance past the end is a no-op")

		c.Retreat()
		c.Retreat()
		c.Retreat()
		assert.Equal(t, 0, c.Offset(), "retreat past the start is a no-op")
	})

	t.Run("fewer groups than window", func(t *testing.T) {
		c := NewCarousel(5)
		c.SetTotal(3)

		assert.False(t, c.CanAdvance())
		assert.False(t, c.CanRetreat())
		start, end := c.Bounds()
		assert.Equal(t, 0, start)
		assert.Equal(t, 3, end)
	})

	t.Run("shrinking total clamps offset", func(t *testing.T) {
		c := NewCarousel(2)
		c.SetTotal(10)
		c.SetOffset(8)
		assert.Equal(t, 8, c.Offset())

		c.SetTotal(4)
		assert.Equal(t, 2, c.Offset())

		c.SetTotal(0)
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("keys window", func(t *testing.T) {
		var events []event.Event
		for d := 1; d <= 6; d++ {
			events = append(events, ev(fmt.Sprint(d), fmt.Sprintf("2024-05-%02d", d), "x"))
		}
		groups := GroupByDate(events)

		c := NewCarousel(3)
		c.SetTotal(len(groups))
		c.Advance()

		assert.Equal(t, []string{"2024-05-02", "2024-05-03", "2024-05-04"}, c.Keys(groups))
	})

	t.Run("reveal scrolls minimally", func(t *testing.T) {
		c := NewCarousel(3)
		c.SetTotal(10)

		c.Reveal(4)
		assert.Equal(t, 2, c.Offset())
		assert.True(t, c.Contains(4))

		c.Reveal(3)
		assert.Equal(t, 2, c.Offset(), "already visible")

		c.Reveal(0)
		assert.Equal(t, 0, c.Offset())

		c.Reveal(99)
		assert.Equal(t, 0, c.Offset(), "out of range is ignored")
	})
}
