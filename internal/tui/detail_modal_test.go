package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/pkg/tuitest"
)

func TestDetailModal_View(t *testing.T) {
	e := event.Event{
		ID:          "7",
		Title:       "Team offsite",
		Date:        "2024-09-12",
		Status:      event.StatusCompleted,
		Description: "Bring **laptops**.",
	}

	out := tuitest.StripANSI(NewDetailModal(e, 100, 40).View())
	assert.Contains(t, out, "Team offsite")
	assert.Contains(t, out, "2024-09-12")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "id 7")
	assert.Contains(t, out, "laptops")
	assert.NotContains(t, out, "**")
}

func TestDetailModal_NoDescription(t *testing.T) {
	e := event.Event{ID: "1", Title: "Bare", Date: "2024-01-01", Status: event.StatusNotStarted}

	out := tuitest.StripANSI(NewDetailModal(e, 100, 40).View())
	assert.Contains(t, out, "No description.")
}

func TestTrimDecorative(t *testing.T) {
	in := "\n───\n\nbody\n  \n===\n"
	assert.Equal(t, "body", trimDecorative(in))
	assert.Empty(t, trimDecorative(strings.Repeat("-\n", 3)))
}
