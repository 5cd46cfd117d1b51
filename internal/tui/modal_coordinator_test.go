package tui

import (
	"testing"
	"time"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/internal/core/notify"
	"github.com/colonyops/eventboard/internal/tui/components"
	"github.com/colonyops/eventboard/pkg/tuitest"
)

const testBackground = "background"

func newSizedCoordinator() *ModalCoordinator {
	mc := NewModalCoordinator()
	mc.SetSize(100, 30)
	return mc
}

func TestModalCoordinator_Overlay_NoModal(t *testing.T) {
	mc := newSizedCoordinator()
	bg := "background content"

	assert.Equal(t, bg, mc.Overlay(stateNormal, bg))
	assert.Equal(t, bg, mc.Overlay(stateShowingHelp, bg), "nil help renders nothing")
	assert.Equal(t, bg, mc.Overlay(stateDetail, bg), "nil detail renders nothing")
}

func TestModalCoordinator_Overlay_ConfirmOverForm(t *testing.T) {
	mc := newSizedCoordinator()
	mc.ShowForm(newEventForm(dashboard.ModeAdd, newAddDraft(time.Now())))
	mc.ShowConfirm("Discard changes?", "Your edits will be lost.")

	got := tuitest.StripANSI(mc.Overlay(stateConfirming, testBackground))
	assert.Contains(t, got, "Your edits will be lost.")

	mc.DismissForm()
	assert.Nil(t, mc.Form)
	assert.Equal(t, Modal{}, mc.Confirm)
}

func TestModalCoordinator_Overlay_Form(t *testing.T) {
	mc := newSizedCoordinator()
	mc.ShowForm(newEventForm(dashboard.ModeEdit, eventFormDraft()))

	got := tuitest.StripANSI(mc.Overlay(stateForm, testBackground))
	assert.Contains(t, got, "Edit Event")
	assert.Contains(t, got, "Retro")
	assert.True(t, mc.HasEditorFocus(stateForm))
	assert.False(t, mc.HasEditorFocus(stateConfirming))
}

func TestModalCoordinator_Overlay_Help(t *testing.T) {
	mc := newSizedCoordinator()
	mc.ShowHelp("Keyboard Shortcuts", []components.HelpSection{
		{Title: "Dashboard", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		}},
	})

	got := tuitest.StripANSI(mc.Overlay(stateShowingHelp, testBackground))
	assert.Contains(t, got, "Keyboard Shortcuts")
	assert.Contains(t, got, "add")
}

func TestModalCoordinator_Overlay_Summary(t *testing.T) {
	mc := newSizedCoordinator()
	s := dashboard.State{
		Status:  dashboard.StatusReady,
		LoadGen: 2,
		Events: []event.Event{
			{ID: "1", Date: "2026-10-17", Status: event.StatusCompleted},
			{ID: "2", Date: "2026-10-17", Status: event.StatusCompleted},
			{ID: "3", Date: "2026-10-19", Status: event.StatusNotStarted},
		},
	}
	mc.ShowSummary(s, "mock data")

	got := tuitest.StripANSI(mc.Overlay(stateShowingSummary, testBackground))
	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "mock data")
	assert.Contains(t, got, "3 events")

	mc.DismissAll()
	assert.Nil(t, mc.Summary)
}

func TestSummarySections(t *testing.T) {
	s := dashboard.State{
		Status: dashboard.StatusError,
		Err:    "boom",
		Events: []event.Event{
			{ID: "1", Date: "2026-10-17", Status: event.StatusCompleted},
			{ID: "2", Date: "2026-10-17", Status: event.StatusInProgress},
			{ID: "3", Date: "2026-10-19", Status: event.StatusCompleted},
		},
	}

	sections := summarySections(s, "file")
	require.Len(t, sections, 3)

	data := sections[0]
	require.Len(t, data.Items, 4, "a failed load adds the error row")
	assert.Equal(t, components.InfoStatusFail, data.Items[1].Status)
	assert.Equal(t, "boom", data.Items[3].Value)

	byStatus := map[string]string{}
	for _, item := range sections[1].Items {
		byStatus[item.Label] = item.Value
	}
	assert.Equal(t, map[string]string{
		"completed":   "2",
		"in-progress": "1",
		"not-started": "0",
	}, byStatus)

	assert.Equal(t, "2", sections[2].Items[0].Value, "distinct days")
}

func TestModalCoordinator_Overlay_Notifications(t *testing.T) {
	mc := newSizedCoordinator()
	mc.ShowNotifications([]notify.Notification{
		{Level: notify.LevelError, Message: "Load failed: timeout", CreatedAt: time.Date(2026, 10, 18, 14, 5, 9, 0, time.UTC)},
		{Level: notify.LevelSuccess, Message: "Event added", CreatedAt: time.Date(2026, 10, 18, 14, 4, 0, 0, time.UTC)},
	}, notify.Tally{notify.LevelError: 1, notify.LevelSuccess: 1})

	got := tuitest.StripANSI(mc.Overlay(stateShowingNotifications, testBackground))
	assert.Contains(t, got, "Notifications")
	assert.Contains(t, got, "Load failed: timeout")
	assert.Contains(t, got, "14:05:09")
	assert.Contains(t, got, "1 error")
}

func eventFormDraft() eventform.Draft {
	return eventform.Draft{ID: "1", Title: "Retro", Date: "2026-10-18", Status: string(event.StatusCompleted)}
}
