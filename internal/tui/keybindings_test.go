package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	gridview "github.com/colonyops/eventboard/internal/tui/views/grid"
	"github.com/colonyops/eventboard/pkg/tuitest"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		press   string
	}{
		{name: "add", binding: keys.Add, press: "a"},
		{name: "edit", binding: keys.Edit, press: "e"},
		{name: "reload", binding: keys.Reload, press: "r"},
		{name: "summary", binding: keys.Summary, press: "i"},
		{name: "history", binding: keys.History, press: "N"},
		{name: "help", binding: keys.Help, press: "?"},
		{name: "quit", binding: keys.Quit, press: "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tuitest.KeyPress([]rune(tt.press)[0])
			assert.True(t, key.Matches(msg, tt.binding))
		})
	}

	assert.True(t, key.Matches(tuitest.Ctrl('c'), keys.Quit))
	assert.True(t, key.Matches(tuitest.KeyEnter(), keys.Detail))
	assert.True(t, key.Matches(tuitest.KeyTab(), keys.NextView))
	assert.True(t, key.Matches(tuitest.KeyEsc(), keys.Dismiss))
}

func TestViewHelp(t *testing.T) {
	h := viewHelp{root: DefaultKeyMap(), view: gridview.DefaultKeyMap()}

	short := h.ShortHelp()
	assert.Equal(t, "a", short[0].Help().Key)
	assert.Equal(t, "q", short[len(short)-1].Help().Key)
	assert.Greater(t, len(h.FullHelp()), 3)

	bare := viewHelp{root: DefaultKeyMap()}
	assert.Len(t, bare.FullHelp(), 3)
}
