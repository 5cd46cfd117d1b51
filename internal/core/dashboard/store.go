package dashboard

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/logging"
)

// Store serializes dispatches through Reduce and fans the new state out to
// subscribers. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	state  State
	subs   []func(State)
	logger zerolog.Logger
}

// NewStore returns a store holding Initial().
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		state:  Initial(),
		logger: logging.Tag(logger, "dashboard"),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces a into the current state. Rejected actions leave the
// state unchanged, notify no subscribers, and return the reducer error.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	prev := s.state
	next, err := Reduce(prev, a)
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn().
			Err(err).
			Str("action", actionName(a)).
			Uint64("load_gen", prev.LoadGen).
			Msg("action rejected")
		return err
	}
	s.state = next
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	s.logger.Debug().
		Str("action", a.Name()).
		Str("status", string(next.Status)).
		Int("events", len(next.Events)).
		Bool("form_open", next.FormOpen).
		Uint64("load_gen", next.LoadGen).
		Msg("dispatch")

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Subscribe registers fn to receive every committed state. Subscribers run
// synchronously on the dispatching goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// EditingEvent returns the event currently loaded into the edit form.
func (s *Store) EditingEvent() (event.Event, bool) {
	return s.State().EditingEvent()
}

func actionName(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Name()
}
