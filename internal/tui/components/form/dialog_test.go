package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/pkg/tuitest"
)

func newEventDialog() *Dialog {
	return NewDialog("New Event",
		NewTextField("title", "Title"),
		NewTextField("date", "Date", WithValue("2026-10-18")),
		NewSelectField("status", "Status", []string{"completed", "in-progress", "not-started"}, "not-started"),
		NewTextAreaField("description", "Description"),
	)
}

func press(d *Dialog, msgs ...tea.Msg) {
	for _, msg := range msgs {
		d.Update(msg)
	}
}

func TestDialog_Focus(t *testing.T) {
	shiftTab := tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})

	tests := []struct {
		name      string
		keys      []tea.Msg
		focused   string
		submitted bool
	}{
		{name: "first field on open", focused: "title"},
		{name: "tab", keys: []tea.Msg{tuitest.KeyTab()}, focused: "date"},
		{name: "enter", keys: []tea.Msg{tuitest.KeyEnter(), tuitest.KeyEnter()}, focused: "status"},
		{name: "shift+tab", keys: []tea.Msg{tuitest.KeyTab(), shiftTab}, focused: "title"},
		{name: "shift+tab at first", keys: []tea.Msg{shiftTab}, focused: "title"},
		{
			name:    "enter in textarea stays",
			keys:    []tea.Msg{tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyEnter()},
			focused: "description",
		},
		{
			name:      "tab past last submits",
			keys:      []tea.Msg{tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab()},
			focused:   "description",
			submitted: true,
		},
		{name: "ctrl+s", keys: []tea.Msg{tuitest.Ctrl('s')}, focused: "title", submitted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newEventDialog()
			press(d, tt.keys...)
			assert.Equal(t, tt.focused, d.FocusedName())
			assert.Equal(t, tt.submitted, d.Submitted())
		})
	}
}

func TestDialog_CancelAndResume(t *testing.T) {
	d := newEventDialog()
	press(d, tuitest.KeyEsc())
	require.True(t, d.Cancelled())

	d.Resume()
	assert.False(t, d.Cancelled())
	assert.False(t, d.Submitted())
}

func TestDialog_Values(t *testing.T) {
	d := newEventDialog()
	press(d, tuitest.Type("Retro")...)
	press(d, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyUp())

	assert.Equal(t, map[string]string{
		"title":       "Retro",
		"date":        "2026-10-18",
		"status":      "in-progress",
		"description": "",
	}, d.Values())
	assert.Equal(t, "Retro", d.Value("title"))
	assert.Empty(t, d.Value("priority"))
}

func TestDialog_Errors(t *testing.T) {
	t.Run("SetErrors reopens and focuses the first errored field", func(t *testing.T) {
		d := newEventDialog()
		press(d, tuitest.Ctrl('s'))
		require.True(t, d.Submitted())

		d.SetErrors(map[string]string{"status": "bad status", "date": "Date must be YYYY-MM-DD"})

		assert.False(t, d.Submitted())
		assert.Equal(t, "date", d.FocusedName())
		assert.Equal(t, map[string]string{"date": "Date must be YYYY-MM-DD", "status": "bad status"}, d.Errors())
		assert.Contains(t, tuitest.StripANSI(d.View()), "Date must be YYYY-MM-DD")
	})

	t.Run("nil clears every error", func(t *testing.T) {
		d := newEventDialog()
		d.SetErrors(map[string]string{"title": "Title is required"})
		require.Len(t, d.Errors(), 1)

		assert.Nil(t, d.SetErrors(nil))
		assert.Empty(t, d.Errors())
	})

	t.Run("editing a field clears only its error", func(t *testing.T) {
		d := newEventDialog()
		d.SetErrors(map[string]string{"title": "Title is required", "date": "Date is required"})
		require.Equal(t, "title", d.FocusedName())

		press(d, tuitest.KeyPress('x'))

		assert.Equal(t, map[string]string{"date": "Date is required"}, d.Errors())
	})

	t.Run("cursor movement keeps the error", func(t *testing.T) {
		d := newEventDialog()
		d.SetErrors(map[string]string{"date": "Date is required"})
		press(d, tuitest.KeyLeft())

		assert.Equal(t, "Date is required", d.Errors()["date"])
	})
}

func TestDialog_Empty(t *testing.T) {
	d := NewDialog("Empty")
	press(d, tuitest.KeyTab(), tuitest.KeyPress('x'))

	assert.False(t, d.Submitted())
	assert.Empty(t, d.Values())
	assert.Empty(t, d.FocusedName())
	assert.Contains(t, d.View(), "tab")
}
