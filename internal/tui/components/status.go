package components

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/styles"
)

// StatusIcon returns the glyph and style for an event status.
func StatusIcon(s event.Status) (string, lipgloss.Style) {
	switch s {
	case event.StatusCompleted:
		return styles.IconCompleted, styles.StatusCompletedStyle
	case event.StatusInProgress:
		return styles.IconInProgress, styles.StatusInProgressStyle
	default:
		return styles.IconNotStarted, styles.StatusNotStartedStyle
	}
}

// StatusBadge renders the status glyph followed by its name.
func StatusBadge(s event.Status) string {
	icon, style := StatusIcon(s)
	return style.Render(icon + " " + string(s))
}
