package notify

import (
	"context"
	"sync"
)

// DefaultHistory is the number of notifications a MemoryStore keeps when
// constructed with a non-positive limit.
const DefaultHistory = 100

// MemoryStore is a bounded in-process Store. Once full, the oldest
// notification is dropped on every Save.
type MemoryStore struct {
	mu     sync.Mutex
	items  []Notification
	nextID int64
	limit  int
}

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &MemoryStore{limit: limit}
}

func (m *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, n)
	if len(m.items) > m.limit {
		m.items = m.items[len(m.items)-m.limit:]
	}
	return n.ID, nil
}

// List returns the stored notifications, newest first.
func (m *MemoryStore) List(_ context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Notification, len(m.items))
	for i, n := range m.items {
		out[len(m.items)-1-i] = n
	}
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

// Tally counts the retained notifications by level.
func (m *MemoryStore) Tally(_ context.Context) (Tally, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Tally{}
	for _, n := range m.items {
		t[n.Level]++
	}
	return t, nil
}
