package dashboard

import (
	"fmt"
	"slices"

	"github.com/colonyops/eventboard/internal/core/event"
)

// Reduce applies a to s and returns the next state. On error the returned
// state is s unchanged.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case LoadStart:
		s.LoadGen++
		s.Status = StatusLoading
		s.Err = ""
		return s, nil

	case LoadSucceeded:
		if a.Gen != s.LoadGen {
			return s, fmt.Errorf("%w: generation %d, current %d", ErrStaleLoad, a.Gen, s.LoadGen)
		}
		s.Events = slices.Clone(a.Events)
		if s.Events == nil {
			s.Events = []event.Event{}
		}
		s.Status = StatusReady
		s.Err = ""
		return s, nil

	case LoadFailed:
		if a.Gen != s.LoadGen {
			return s, fmt.Errorf("%w: generation %d, current %d", ErrStaleLoad, a.Gen, s.LoadGen)
		}
		s.Status = StatusError
		s.Err = a.Message
		return s, nil

	case OpenForm:
		switch a.Mode {
		case ModeEdit:
			if event.IndexOf(s.Events, a.EventID) < 0 {
				return s, fmt.Errorf("%w: %q", ErrEditTargetNotFound, a.EventID)
			}
			s.EditingID = a.EventID
		case ModeAdd, "":
			a.Mode = ModeAdd
			s.EditingID = ""
		default:
			return s, fmt.Errorf("unknown form mode %q", a.Mode)
		}
		s.FormOpen = true
		s.FormMode = a.Mode
		return s, nil

	case CloseForm:
		return closeForm(s), nil

	case AddEvent:
		if event.IndexOf(s.Events, a.Event.ID) >= 0 {
			return s, fmt.Errorf("%w %q", ErrDuplicateID, a.Event.ID)
		}
		next := make([]event.Event, 0, len(s.Events)+1)
		next = append(next, s.Events...)
		s.Events = append(next, a.Event)
		return closeForm(s), nil

	case EditEvent:
		i := event.IndexOf(s.Events, a.Event.ID)
		if i < 0 {
			return s, fmt.Errorf("%w: %q", ErrEditTargetNotFound, a.Event.ID)
		}
		next := slices.Clone(s.Events)
		next[i] = a.Event
		s.Events = next
		return closeForm(s), nil

	case nil:
		return s, fmt.Errorf("nil action")

	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
}

func closeForm(s State) State {
	s.FormOpen = false
	s.FormMode = ModeAdd
	s.EditingID = ""
	return s
}
