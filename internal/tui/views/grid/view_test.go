package grid

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/pkg/tuitest"
)

func newView(t *testing.T, records []event.Event) View {
	t.Helper()
	v := New(event.Columns(), 10)
	v.SetSize(100, 20)
	v.SetRecords(records)
	return v
}

func press(v View, msgs ...tea.Msg) View {
	for _, msg := range msgs {
		v, _ = v.Update(msg)
	}
	return v
}

func TestView_RendersHeadersAndRows(t *testing.T) {
	v := newView(t, sampleEvents(12))

	out := tuitest.StripANSI(v.View())
	for _, label := range []string{"ID", "Title", "Date", "Status"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Event 0")
	assert.Contains(t, out, "Event 9")
	assert.NotContains(t, out, "Event 10")
	assert.Contains(t, out, "page 1/2")
	assert.Contains(t, out, "12 events")
}

func TestView_EmptyState(t *testing.T) {
	v := newView(t, nil)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "No events found")
	assert.Contains(t, out, "Try adjusting your filters")
	assert.Contains(t, out, "page 1/1")
}

func TestView_FilterKeys(t *testing.T) {
	v := newView(t, sampleEvents(12))

	v = press(v, tuitest.KeyRight(), tuitest.KeyPress('/'))
	require.True(t, v.HasEditorFocus())

	v = press(v, tuitest.Type("event 11")...)
	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Title: event 11")
	assert.Contains(t, out, "Event 11")
	assert.NotContains(t, out, "Event 3")

	v = press(v, tuitest.KeyEnter())
	assert.False(t, v.HasEditorFocus())
	assert.Contains(t, tuitest.StripANSI(v.View()), `title="event 11"`)

	v = press(v, tuitest.KeyPress('x'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "no filters")
}

func TestView_FilterEscClears(t *testing.T) {
	v := newView(t, sampleEvents(3))

	v = press(v, tuitest.KeyRight(), tuitest.KeyPress('/'))
	v = press(v, tuitest.Type("zzz")...)
	assert.Contains(t, tuitest.StripANSI(v.View()), "No events found")

	v = press(v, tuitest.KeyEsc())
	assert.False(t, v.HasEditorFocus())
	assert.Contains(t, tuitest.StripANSI(v.View()), "Event 2")
}

func TestView_SortArrow(t *testing.T) {
	v := newView(t, sampleEvents(3))

	v = press(v, tuitest.KeyRight(), tuitest.KeyPress('s'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "Title ▲")

	v = press(v, tuitest.KeyPress('o'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "Title ▼")
	assert.Equal(t, "2", v.Selected().ID)
}

func TestView_Paging(t *testing.T) {
	v := newView(t, sampleEvents(25))

	v = press(v, tuitest.KeyPress('n'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "page 2/3")

	v = press(v, tuitest.KeyPress('p'), tuitest.KeyPress('p'))
	assert.Contains(t, tuitest.StripANSI(v.View()), "page 1/3")
}

func TestView_CursorMovement(t *testing.T) {
	v := newView(t, sampleEvents(3))

	v = press(v, tuitest.KeyDown(), tuitest.KeyPress('j'))
	require.NotNil(t, v.Selected())
	assert.Equal(t, "2", v.Selected().ID)

	v = press(v, tuitest.KeyUp())
	assert.Equal(t, "1", v.Selected().ID)
}
