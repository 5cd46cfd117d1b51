// Package notify routes dashboard notifications to the toast stack and the
// notification history.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/eventboard/internal/core/notify"
)

// Subscriber receives every published notification.
type Subscriber func(notify.Notification)

// Bus records notifications in a Store and then hands them to subscribers,
// in subscription order, on the publishing goroutine. A nil store keeps no
// history.
type Bus struct {
	store notify.Store

	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn Subscriber
}

func NewBus(store notify.Store) *Bus {
	return &Bus{store: store}
}

// Subscribe adds fn and returns a function that removes it again.
func (b *Bus) Subscribe(fn Subscriber) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish stamps n, records it and dispatches it. The returned notification
// carries the id assigned by the store. A store failure is logged and the
// notification is still dispatched.
func (b *Bus) Publish(n notify.Notification) notify.Notification {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if b.store != nil {
		if id, err := b.store.Save(context.Background(), n); err != nil {
			log.Error().Err(err).Str("level", string(n.Level)).Str("message", n.Message).Msg("failed to record notification")
		} else {
			n.ID = id
		}
	}

	b.mu.Lock()
	subs := append([]subscription(nil), b.subs...)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(n)
	}
	return n
}

// Notify formats and publishes a notification at level.
func (b *Bus) Notify(level notify.Level, format string, args ...any) notify.Notification {
	return b.Publish(notify.Notification{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (b *Bus) Errorf(format string, args ...any) { b.Notify(notify.LevelError, format, args...) }

func (b *Bus) Warnf(format string, args ...any) { b.Notify(notify.LevelWarning, format, args...) }

func (b *Bus) Successf(format string, args ...any) { b.Notify(notify.LevelSuccess, format, args...) }

func (b *Bus) Infof(format string, args ...any) { b.Notify(notify.LevelInfo, format, args...) }

// History returns the recorded notifications, newest first, with a tally by
// level.
func (b *Bus) History() ([]notify.Notification, notify.Tally, error) {
	if b.store == nil {
		return nil, notify.Tally{}, nil
	}

	ctx := context.Background()
	items, err := b.store.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list notifications: %w", err)
	}
	tally, err := b.store.Tally(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("tally notifications: %w", err)
	}
	return items, tally, nil
}

// Clear forgets the recorded history.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}
