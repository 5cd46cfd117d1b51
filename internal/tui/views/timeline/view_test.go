package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/eventboard/pkg/tuitest"
)

func TestView_Empty(t *testing.T) {
	v := New(3)
	v.SetSize(120, 30)
	v.SetEvents(nil)

	assert.Contains(t, tuitest.StripANSI(v.View()), "No events found")
}

func TestView_RendersWindow(t *testing.T) {
	v := New(2)
	v.SetSize(120, 30)
	v.SetEvents(dayEvents(4))

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "2024-05-01 (2)")
	assert.Contains(t, out, "2024-05-02 (1)")
	assert.NotContains(t, out, "2024-05-03")
	assert.Contains(t, out, "Day 00")
	assert.Contains(t, out, "Zz extra")
	assert.Contains(t, out, "days 1-2 of 4")
}

func TestView_Keys(t *testing.T) {
	v := New(2)
	v.SetSize(120, 30)
	v.SetEvents(dayEvents(4))

	v, _ = v.Update(tuitest.KeyPress('l'))
	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "days 2-3 of 4")
	assert.Equal(t, "d1", v.Selected().ID)

	v, _ = v.Update(tuitest.KeyPress('j'))
	assert.Equal(t, "d2", v.Selected().ID)

	v, _ = v.Update(tuitest.KeyPress('k'))
	v, _ = v.Update(tuitest.KeyPress('h'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "days 1-2 of 4")
	assert.Equal(t, "d1", v.Selected().ID)
}

func TestView_MoreIndicator(t *testing.T) {
	v := New(1)
	v.SetSize(60, 7) // room for 2 items
	v.SetEvents(dayEvents(1))

	events := dayEvents(1)
	for i := range 3 {
		e := events[0]
		e.ID = string(rune('a' + i))
		e.Title = "More " + e.ID
		events = append(events, e)
	}
	v.SetEvents(events)

	assert.Contains(t, tuitest.StripANSI(v.View()), "+3 more")
}
