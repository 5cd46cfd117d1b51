package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/notify"
	tuinotify "github.com/colonyops/eventboard/internal/tui/notify"
)

func newToastModel() (Model, *ToastController) {
	ctrl := NewToastController()
	bus := tuinotify.NewBus(nil)
	bus.Subscribe(ctrl.Push)
	return Model{toastController: ctrl, notifyBus: bus}, ctrl
}

// runTicks feeds toast ticks through Update until the chain stops and
// returns how many ran.
func runTicks(t *testing.T, m Model, cmd tea.Cmd, limit int) (Model, int) {
	t.Helper()
	ticks := 0
	for cmd != nil {
		result, next := m.Update(toastTickMsg(time.Now()))
		m, cmd = result.(Model), next
		ticks++
		if ticks > limit {
			t.Fatalf("tick chain ran for more than %d ticks", limit)
		}
	}
	return m, ticks
}

func TestToastUpdateLoop_tick_chain_expires_at_TTL(t *testing.T) {
	tests := []struct {
		level notify.Level
		ticks int
	}{
		{level: notify.LevelInfo, ticks: int(defaultToastTTL / toastTickInterval)},
		{level: notify.LevelSuccess, ticks: int(defaultToastTTL / toastTickInterval)},
		{level: notify.LevelError, ticks: int(errorToastTTL / toastTickInterval)},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			m, ctrl := newToastModel()

			result, cmd := m.Update(notificationMsg{
				notification: notify.Notification{Level: tt.level, Message: "hello"},
			})
			m = result.(Model)
			require.NotNil(t, cmd, "notification should start the tick chain")
			require.True(t, ctrl.Ticking())

			_, ticks := runTicks(t, m, cmd, 200)
			assert.Equal(t, tt.ticks, ticks)
			assert.False(t, ctrl.HasToasts())
			assert.False(t, ctrl.Ticking(), "chain marks itself stopped")
		})
	}
}

func TestToastUpdateLoop_notificationMsg_pushes_toast(t *testing.T) {
	m, ctrl := newToastModel()

	_, cmd := m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelError, Message: "something broke"},
	})

	require.True(t, ctrl.HasToasts())
	assert.Equal(t, "something broke", ctrl.Toasts()[0].notification.Message)
	assert.NotNil(t, cmd)
}

func TestToastUpdateLoop_single_chain(t *testing.T) {
	m, ctrl := newToastModel()

	result, cmd := m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelInfo, Message: "first"},
	})
	m = result.(Model)
	require.NotNil(t, cmd)

	// 2.5s into the first toast's TTL
	for range 25 {
		result, _ = m.Update(toastTickMsg(time.Now()))
		m = result.(Model)
	}

	result, second := m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelInfo, Message: "second"},
	})
	m = result.(Model)
	require.Len(t, ctrl.Toasts(), 2)
	assert.Nil(t, second, "a running chain is not doubled")

	// the running chain keeps going until the second toast expires at 7.5s
	_, ticks := runTicks(t, m, cmd, 200)
	assert.Equal(t, 50, ticks)
	assert.False(t, ctrl.HasToasts())
}

func TestToastUpdateLoop_restarts_after_chain_stops(t *testing.T) {
	m, ctrl := newToastModel()

	result, cmd := m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelInfo, Message: "first"},
	})
	m = result.(Model)
	m, _ = runTicks(t, m, cmd, 100)
	require.False(t, ctrl.HasToasts())

	_, cmd = m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelInfo, Message: "again"},
	})
	assert.NotNil(t, cmd, "a new toast starts a new chain")
}

func TestToastUpdateLoop_dismiss_stops_chain(t *testing.T) {
	m, ctrl := newToastModel()

	result, cmd := m.Update(notificationMsg{
		notification: notify.Notification{Level: notify.LevelWarning, Message: "careful"},
	})
	m = result.(Model)
	ctrl.DismissAll()

	_, ticks := runTicks(t, m, cmd, 10)
	assert.Equal(t, 1, ticks, "the next tick sees no toasts and stops")
	assert.False(t, ctrl.Ticking())
}
