package jsoncolor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/eventboard/pkg/tuitest"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "event record",
			input: `{"id":"7","title":"Launch","date":"2026-10-18","status":"completed"}`,
			want:  []string{`"id": "7"`, `"title": "Launch"`, `"status": "completed"`},
		},
		{
			name:  "nested",
			input: `{"events":[{"id":"1"}]}`,
			want:  []string{`"events": [`, `"id": "1"`},
		},
		{
			name:  "escaped strings",
			input: `{"msg":"hello \"world\""}`,
			want:  []string{`hello \"world\"`},
		},
		{
			name:  "numbers",
			input: `{"int":42,"float":3.14,"neg":-1,"exp":1e10}`,
			want:  []string{"42", "3.14", "-1", "1e10"},
		},
		{
			name:  "literals",
			input: `{"t":true,"f":false,"n":null}`,
			want:  []string{"true", "false", "null"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tuitest.StripANSI(Colorize([]byte(tt.input)))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			assert.Contains(t, got, "\n", "output is indented")
		})
	}
}

func TestColorize_InvalidJSON(t *testing.T) {
	assert.Equal(t, "not json at all", Colorize([]byte("not json at all")))
}

func TestFindStringEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		expected int
	}{
		{"simple", `"hello"`, 0, 6},
		{"escaped quote", `"he\"llo"`, 0, 8},
		{"escaped backslash", `"he\\"`, 0, 5},
		{"empty string", `""`, 0, 1},
		{"unterminated", `"abc`, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, findStringEnd(tt.input, tt.pos))
		})
	}
}
