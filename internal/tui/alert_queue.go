package tui

import (
	"fmt"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/eventboard/internal/core/notify"
)

// alertQueueLimit bounds how many alerts wait for the Update loop. Older
// alerts are discarded first and reported as a single summary alert.
const alertQueueLimit = 50

// alertsReadyMsg tells the model that queued alerts can be taken.
type alertsReadyMsg struct{}

// alertQueue hands alerts raised off the Update loop, such as file watcher
// errors, to the model. Add never blocks the caller.
type alertQueue struct {
	mu      sync.Mutex
	pending []notify.Notification
	dropped int
	ready   chan struct{}
}

func newAlertQueue() *alertQueue {
	return &alertQueue{ready: make(chan struct{}, 1)}
}

// Add queues n, stamping it with the current time when unset.
func (q *alertQueue) Add(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	q.mu.Lock()
	q.pending = append(q.pending, n)
	if over := len(q.pending) - alertQueueLimit; over > 0 {
		q.pending = q.pending[over:]
		q.dropped += over
	}
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Warnf queues a warning alert.
func (q *alertQueue) Warnf(format string, args ...any) {
	q.Add(notify.Notification{Level: notify.LevelWarning, Message: fmt.Sprintf(format, args...)})
}

// Take returns the queued alerts, oldest first, and empties the queue.
// Discarded alerts are reported ahead of the rest.
func (q *alertQueue) Take() []notify.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	out := make([]notify.Notification, 0, len(q.pending)+1)
	if q.dropped > 0 {
		out = append(out, notify.Notification{
			Level:     notify.LevelWarning,
			Message:   fmt.Sprintf("%d older alerts discarded", q.dropped),
			CreatedAt: q.pending[0].CreatedAt,
		})
		q.dropped = 0
	}
	out = append(out, q.pending...)
	q.pending = nil
	return out
}

// Wait returns a command that resolves once alerts are queued.
func (q *alertQueue) Wait() tea.Cmd {
	return func() tea.Msg {
		<-q.ready
		return alertsReadyMsg{}
	}
}
