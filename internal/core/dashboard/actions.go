package dashboard

import "github.com/colonyops/eventboard/internal/core/event"

// Action is a closed set of transitions accepted by Reduce.
type Action interface {
	action()
	// Name identifies the action in logs.
	Name() string
}

// LoadStart begins a new load and opens a new generation.
type LoadStart struct{}

// LoadSucceeded delivers the records produced by generation Gen.
type LoadSucceeded struct {
	Gen    uint64
	Events []event.Event
}

// LoadFailed reports that generation Gen failed with Message.
type LoadFailed struct {
	Gen     uint64
	Message string
}

// OpenForm opens the form. EventID is required for ModeEdit and ignored for
// ModeAdd.
type OpenForm struct {
	Mode    FormMode
	EventID string
}

// CloseForm discards the form without committing.
type CloseForm struct{}

// AddEvent appends a validated event.
type AddEvent struct {
	Event event.Event
}

// EditEvent replaces the event with the same id.
type EditEvent struct {
	Event event.Event
}

func (LoadStart) action()     {}
func (LoadSucceeded) action() {}
func (LoadFailed) action()    {}
func (OpenForm) action()      {}
func (CloseForm) action()     {}
func (AddEvent) action()      {}
func (EditEvent) action()     {}

func (LoadStart) Name() string     { return "LOAD_START" }
func (LoadSucceeded) Name() string { return "LOAD_SUCCESS" }
func (LoadFailed) Name() string    { return "LOAD_ERROR" }
func (OpenForm) Name() string      { return "OPEN_FORM" }
func (CloseForm) Name() string     { return "CLOSE_FORM" }
func (AddEvent) Name() string      { return "ADD_EVENT" }
func (EditEvent) Name() string     { return "EDIT_EVENT" }
