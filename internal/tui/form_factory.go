package tui

import (
	"time"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/internal/tui/components"
	"github.com/colonyops/eventboard/internal/tui/components/form"
)

// eventForm is the open add/edit dialog together with the draft it started
// from, so cancel can tell whether anything changed.
type eventForm struct {
	dialog  *form.Dialog
	mode    dashboard.FormMode
	initial eventform.Draft
}

// newEventForm builds the add/edit dialog seeded from draft.
func newEventForm(mode dashboard.FormMode, draft eventform.Draft) *eventForm {
	title := "New Event"
	if mode == dashboard.ModeEdit {
		title = "Edit Event"
	}

	status := draft.Status
	if status == "" {
		status = string(event.StatusNotStarted)
	}

	dialog := form.NewDialog(title,
		form.NewTextField(eventform.FieldTitle, "Title",
			form.WithPlaceholder("What is happening?"),
			form.WithValue(draft.Title),
			form.WithCharLimit(120),
		),
		form.NewTextField(eventform.FieldDate, "Date",
			form.WithPlaceholder(event.DateLayout),
			form.WithValue(draft.Date),
			form.WithCharLimit(len(event.DateLayout)),
		),
		form.NewSelectField(eventform.FieldStatus, "Status", event.StatusNames(), status).
			Decorate(func(s string) string { return components.StatusBadge(event.Status(s)) }),
		form.NewTextAreaField(eventform.FieldDescription, "Description",
			form.WithPlaceholder("Markdown supported"),
			form.WithValue(draft.Description),
		),
	)

	initial := draft
	initial.Status = status
	return &eventForm{dialog: dialog, mode: mode, initial: initial}
}

// newAddDraft returns the draft for an add form, dated today.
func newAddDraft(now time.Time) eventform.Draft {
	return eventform.Draft{
		Date:   now.Format(event.DateLayout),
		Status: string(event.StatusNotStarted),
	}
}

// Draft reads the dialog values back into a draft, keeping the id of the
// event being edited.
func (f *eventForm) Draft() eventform.Draft {
	v := f.dialog.Values()
	return eventform.Draft{
		ID:          f.initial.ID,
		Title:       v[eventform.FieldTitle],
		Date:        v[eventform.FieldDate],
		Status:      v[eventform.FieldStatus],
		Description: v[eventform.FieldDescription],
	}
}

// Dirty reports whether any field differs from the seeded draft.
func (f *eventForm) Dirty() bool {
	return f.Draft() != f.initial
}
