package notify

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(3)

	for i := range 5 {
		id, err := s.Save(ctx, Notification{Level: LevelInfo, Message: strconv.Itoa(i)})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	tally, err := s.Tally(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Total(), "only the newest three are kept")

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "4", items[0].Message)
	assert.Equal(t, "2", items[2].Message)

	require.NoError(t, s.Clear(ctx))
	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewMemoryStore_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultHistory, NewMemoryStore(0).limit)
}

func TestTally(t *testing.T) {
	tests := []struct {
		name   string
		levels []Level
		want   string
		total  int
	}{
		{name: "empty", want: "", total: 0},
		{name: "info only", levels: []Level{LevelInfo, LevelSuccess}, want: "", total: 2},
		{name: "singular", levels: []Level{LevelError, LevelWarning}, want: "1 error, 1 warning", total: 2},
		{name: "plural", levels: []Level{LevelWarning, LevelWarning, LevelInfo}, want: "2 warnings", total: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewMemoryStore(0)
			for _, lvl := range tt.levels {
				_, err := s.Save(ctx, Notification{Level: lvl, Message: "x"})
				require.NoError(t, err)
			}

			tally, err := s.Tally(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tally.String())
			assert.Equal(t, tt.total, tally.Total())
		})
	}
}
