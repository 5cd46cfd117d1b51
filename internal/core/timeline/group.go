// Package timeline projects events into day groups and a sliding carousel
// window over those groups.
package timeline

import (
	"slices"
	"strings"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/grid"
)

// DayGroup holds the events that share one ISO date.
type DayGroup struct {
	Date   string
	Events []event.Event
}

// GroupByDate buckets events by their exact Date string. Groups are ordered
// by ascending date key (chronological, since keys are ISO dates) and the
// events inside a group by collated title. Both sorts are stable.
func GroupByDate(events []event.Event) []DayGroup {
	if len(events) == 0 {
		return nil
	}

	index := make(map[string]int)
	var groups []DayGroup
	for _, e := range events {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DayGroup{Date: e.Date})
		}
		groups[i].Events = append(groups[i].Events, e)
	}

	c := grid.NewComparer()
	for i := range groups {
		slices.SortStableFunc(groups[i].Events, func(a, b event.Event) int {
			return c.CompareStrings(a.Title, b.Title)
		})
	}

	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return strings.Compare(a.Date, b.Date)
	})

	return groups
}

// Flatten returns every event in group order, then in-group order. This is
// the global focus order used by timeline navigation.
func Flatten(groups []DayGroup) []event.Event {
	n := 0
	for _, g := range groups {
		n += len(g.Events)
	}

	out := make([]event.Event, 0, n)
	for _, g := range groups {
		out = append(out, g.Events...)
	}
	return out
}

// Dates returns the group keys in order.
func Dates(groups []DayGroup) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Date
	}
	return keys
}

// Locate maps a flattened index to its group and position within the group.
func Locate(groups []DayGroup, flat int) (group, item int, ok bool) {
	if flat < 0 {
		return 0, 0, false
	}
	for gi, g := range groups {
		if flat < len(g.Events) {
			return gi, flat, true
		}
		flat -= len(g.Events)
	}
	return 0, 0, false
}

// IndexOf returns the flattened index of the event with id, or -1.
func IndexOf(groups []DayGroup, id string) int {
	offset := 0
	for _, g := range groups {
		for i, e := range g.Events {
			if e.ID == id {
				return offset + i
			}
		}
		offset += len(g.Events)
	}
	return -1
}

// FirstIndexOf returns the flattened index of the first event in group gi,
// or -1 when gi is out of range.
func FirstIndexOf(groups []DayGroup, gi int) int {
	if gi < 0 || gi >= len(groups) {
		return -1
	}
	offset := 0
	for i := range gi {
		offset += len(groups[i].Events)
	}
	return offset
}
