package tui

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/notify"
)

func alertMessages(ns []notify.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}

func TestAlertQueue_Take(t *testing.T) {
	tests := []struct {
		name string
		add  []string
		want []string
	}{
		{name: "empty", want: nil},
		{name: "keeps order", add: []string{"a.yaml: bad date", "b.yaml: removed"}, want: []string{"a.yaml: bad date", "b.yaml: removed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newAlertQueue()
			for _, msg := range tt.add {
				q.Warnf("%s", msg)
			}

			got := q.Take()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, alertMessages(got))
			for _, n := range got {
				assert.Equal(t, notify.LevelWarning, n.Level)
				assert.False(t, n.CreatedAt.IsZero())
			}
			assert.Nil(t, q.Take(), "queue is emptied")
		})
	}
}

func TestAlertQueue_ReportsDiscarded(t *testing.T) {
	q := newAlertQueue()
	for i := range alertQueueLimit + 3 {
		q.Warnf("watch error %d", i)
	}

	got := q.Take()
	require.Len(t, got, alertQueueLimit+1)
	assert.Equal(t, "3 older alerts discarded", got[0].Message)
	assert.Equal(t, "watch error 3", got[1].Message)

	q.Warnf("later")
	assert.Equal(t, []string{"later"}, alertMessages(q.Take()), "discard count resets")
}

func TestAlertQueue_Wait(t *testing.T) {
	q := newAlertQueue()
	q.Warnf("one")
	q.Warnf("two")

	_, ok := q.Wait()().(alertsReadyMsg)
	require.True(t, ok)
	assert.Len(t, q.Take(), 2, "a single signal covers every queued alert")
}

func TestAlertQueue_ConcurrentAdd(t *testing.T) {
	q := newAlertQueue()

	var wg sync.WaitGroup
	for i := range alertQueueLimit {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Warnf("%s", fmt.Sprint(i))
		}()
	}
	wg.Wait()

	assert.Len(t, q.Take(), alertQueueLimit)
}
