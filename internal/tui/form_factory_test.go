package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/pkg/tuitest"
)

func TestNewEventForm_Add(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newEventForm(dashboard.ModeAdd, newAddDraft(now))

	assert.Equal(t, "New Event", f.dialog.Title)
	assert.Equal(t, eventform.FieldTitle, f.dialog.FocusedName())
	assert.Equal(t, eventform.Draft{Date: "2024-06-01", Status: "not-started"}, f.Draft())
	assert.False(t, f.Dirty())

	for _, msg := range tuitest.Type("Launch") {
		f.dialog.Update(msg)
	}
	assert.Equal(t, "Launch", f.Draft().Title)
	assert.True(t, f.Dirty())
}

func TestNewEventForm_Edit(t *testing.T) {
	e := event.Event{
		ID:          "42",
		Title:       "Retro",
		Date:        "2024-02-03",
		Status:      event.StatusInProgress,
		Description: "notes",
	}
	f := newEventForm(dashboard.ModeEdit, eventform.FromEvent(e))

	assert.Equal(t, "Edit Event", f.dialog.Title)
	require.Equal(t, eventform.FromEvent(e), f.Draft())
	assert.False(t, f.Dirty())

	out := tuitest.StripANSI(f.dialog.View())
	assert.Contains(t, out, "Retro")
	assert.Contains(t, out, "in-progress")
}
