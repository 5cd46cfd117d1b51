package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nline two  \n\n"
	assert.Equal(t, "bold\nline two", StripANSI(in))
}

func TestKeyHelpers(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want string
	}{
		{name: "rune", msg: KeyPress('a'), want: "a"},
		{name: "ctrl", msg: Ctrl('s'), want: "ctrl+s"},
		{name: "enter", msg: KeyEnter(), want: "enter"},
		{name: "esc", msg: KeyEsc(), want: "esc"},
		{name: "tab", msg: KeyTab(), want: "tab"},
		{name: "left", msg: KeyLeft(), want: "left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}

func TestType(t *testing.T) {
	msgs := Type("hi")
	require.Len(t, msgs, 2)
	assert.Equal(t, "h", msgs[0].(tea.KeyPressMsg).String())
	assert.Equal(t, "i", msgs[1].(tea.KeyPressMsg).String())
}
