// Package dashboard holds the application state machine. All state changes
// go through Reduce, which is pure: it never mutates its input and never
// performs I/O.
package dashboard

import (
	"errors"

	"github.com/colonyops/eventboard/internal/core/event"
)

var (
	// ErrStaleLoad is returned when a load result carries a generation that
	// no longer matches the most recent LoadStart.
	ErrStaleLoad = errors.New("stale load result")

	// ErrEditTargetNotFound is returned when an edit names an id that is not
	// in the record set.
	ErrEditTargetNotFound = errors.New("edit target not found")

	ErrDuplicateID = event.ErrDuplicateID
)

// LoadStatus is the lifecycle of the record set.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusError   LoadStatus = "error"
)

// FormMode is the purpose of the open form.
type FormMode string

const (
	ModeAdd  FormMode = "add"
	ModeEdit FormMode = "edit"
)

// State is the single source of truth for the dashboard. Events is treated
// as immutable; transitions replace the slice instead of writing into it.
type State struct {
	Events    []event.Event
	Status    LoadStatus
	Err       string
	FormOpen  bool
	FormMode  FormMode
	EditingID string
	LoadGen   uint64
}

// Initial returns the state before the first load completes.
func Initial() State {
	return State{
		Events:   []event.Event{},
		Status:   StatusLoading,
		FormMode: ModeAdd,
	}
}

// Loading reports whether a load is in flight.
func (s State) Loading() bool { return s.Status == StatusLoading }

// Ready reports whether the record set is available.
func (s State) Ready() bool { return s.Status == StatusReady }

// Failed reports whether the last load failed.
func (s State) Failed() bool { return s.Status == StatusError }

// Find returns the event with id.
func (s State) Find(id string) (event.Event, bool) {
	i := event.IndexOf(s.Events, id)
	if i < 0 {
		return event.Event{}, false
	}
	return s.Events[i], true
}

// EditingEvent returns the event being edited, if the form is open in edit
// mode and the target still exists.
func (s State) EditingEvent() (event.Event, bool) {
	if !s.FormOpen || s.FormMode != ModeEdit {
		return event.Event{}, false
	}
	return s.Find(s.EditingID)
}
