package source

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/event"
)

// MockTitles are the titles the mock source draws from.
var MockTitles = []string{
	"Team sync meeting",
	"Project kickoff",
	"Design review",
	"Sprint planning",
	"Release preparation",
	"Stakeholder update",
	"Bug triage",
	"Code review session",
	"Architecture discussion",
	"Retrospective meeting",
}

var mockDescriptions = []string{
	"",
	"## Agenda\n\n- Status round\n- Blockers\n- Next steps",
	"Review the open items on the **board** and agree on owners.",
	"Bring notes from last week. See the `planning` doc for context.",
	"> Keep it short.\n\nFifteen minutes, standing.",
}

// MockSpreadDays is how far from today mock dates may fall, either way.
const MockSpreadDays = 20

// Mock generates random events after a simulated delay.
type Mock struct {
	Count int
	Delay time.Duration
	// Seed makes output reproducible. Zero seeds from the clock.
	Seed uint64
	// Now anchors the date range. Nil uses time.Now.
	Now func() time.Time
}

// Load waits for Delay and returns Count events with ids "0".."Count-1".
func (m *Mock) Load(ctx context.Context) ([]event.Event, error) {
	if err := sleep(ctx, m.Delay); err != nil {
		return nil, err
	}
	return m.Generate(), nil
}

// Generate returns the events without waiting.
func (m *Mock) Generate() []event.Event {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	today := now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	seed := m.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	statuses := event.Statuses()
	n := m.count()
	events := make([]event.Event, n)
	for i := range n {
		offset := r.IntN(2*MockSpreadDays+1) - MockSpreadDays
		events[i] = event.Event{
			ID:          strconv.Itoa(i),
			Title:       MockTitles[r.IntN(len(MockTitles))],
			Date:        today.AddDate(0, 0, offset).Format(event.DateLayout),
			Status:      statuses[r.IntN(len(statuses))],
			Description: mockDescriptions[r.IntN(len(mockDescriptions))],
		}
	}
	return events
}

func (m *Mock) count() int {
	if m.Count <= 0 {
		return config.DefaultMockCount
	}
	return m.Count
}
