package eventform

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
)

func fixedID() Validator {
	return Validator{NewID: func() string { return "new-id" }}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		draft      Draft
		wantFields map[string]string
	}{
		{
			name:       "empty title",
			draft:      Draft{Title: "   ", Date: "2024-05-01"},
			wantFields: map[string]string{FieldTitle: "Title is required"},
		},
		{
			name:       "missing date",
			draft:      Draft{Title: "Sync"},
			wantFields: map[string]string{FieldDate: "Date is required"},
		},
		{
			name:       "malformed date",
			draft:      Draft{Title: "Sync", Date: "05/01/2024"},
			wantFields: map[string]string{FieldDate: "Date must be YYYY-MM-DD"},
		},
		{
			name:       "impossible date",
			draft:      Draft{Title: "Sync", Date: "2024-02-30"},
			wantFields: map[string]string{FieldDate: "Date must be YYYY-MM-DD"},
		},
		{
			name:  "unknown status",
			draft: Draft{Title: "Sync", Date: "2024-05-01", Status: "blocked"},
			wantFields: map[string]string{
				FieldStatus: "Status must be one of completed, in-progress, not-started",
			},
		},
		{
			name:  "every field reported",
			draft: Draft{Status: "nope"},
			wantFields: map[string]string{
				FieldTitle:  "Title is required",
				FieldDate:   "Date is required",
				FieldStatus: "Status must be one of completed, in-progress, not-started",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixedID().Validate(tt.draft)
			require.Error(t, err)

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, FieldErrors(tt.wantFields), Messages(err))
		})
	}
}

func TestValidate_Success(t *testing.T) {
	t.Run("new draft gets an id and default status", func(t *testing.T) {
		e, err := fixedID().Validate(Draft{Title: "  Team meeting ", Date: "2024-05-01"})
		require.NoError(t, err)

		assert.Equal(t, "new-id", e.ID)
		assert.Equal(t, "Team meeting", e.Title)
		assert.Equal(t, event.StatusNotStarted, e.Status)
	})

	t.Run("existing id is preserved", func(t *testing.T) {
		src := event.Event{ID: "42", Title: "Old", Date: "2024-01-01", Status: event.StatusInProgress}
		d := FromEvent(src)
		d.Title = "New"

		e, err := fixedID().Validate(d)
		require.NoError(t, err)
		assert.Equal(t, "42", e.ID)
		assert.Equal(t, "New", e.Title)
		assert.Equal(t, event.StatusInProgress, e.Status)
	})

	t.Run("default validator mints uuids", func(t *testing.T) {
		e, err := New().Validate(Draft{Title: "x", Date: "2024-01-01", Status: "completed"})
		require.NoError(t, err)
		_, perr := uuid.Parse(e.ID)
		assert.NoError(t, perr)
	})

	t.Run("zero validator still mints ids", func(t *testing.T) {
		e, err := Validator{}.Validate(Draft{Title: "x", Date: "2024-01-01"})
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
	})
}

func TestInvalidDraftCommitsNothing(t *testing.T) {
	s, _ := dashboard.Reduce(dashboard.Initial(), dashboard.LoadStart{})
	s, _ = dashboard.Reduce(s, dashboard.LoadSucceeded{Gen: s.LoadGen})
	s, _ = dashboard.Reduce(s, dashboard.OpenForm{Mode: dashboard.ModeAdd})

	_, err := fixedID().Validate(Draft{Title: "", Date: "2024-05-01"})
	require.Error(t, err)

	msgs := Messages(err)
	assert.Equal(t, FieldErrors{FieldTitle: "Title is required"}, msgs)

	// nothing is dispatched on failure; the form stays open and empty
	assert.True(t, s.FormOpen)
	assert.Empty(t, s.Events)
}

func TestFieldErrors(t *testing.T) {
	t.Run("clear removes only one field", func(t *testing.T) {
		f := FieldErrors{FieldTitle: "Title is required", FieldDate: "Date is required"}
		f.Clear(FieldTitle)

		assert.False(t, f.Has(FieldTitle))
		assert.Equal(t, "Date is required", f.Get(FieldDate))
	})

	t.Run("first in display order", func(t *testing.T) {
		f := FieldErrors{FieldStatus: "bad", FieldDate: "bad"}
		field, ok := f.First(Order()...)
		require.True(t, ok)
		assert.Equal(t, FieldDate, field)

		_, ok = FieldErrors{}.First(Order()...)
		assert.False(t, ok)
	})

	t.Run("messages of nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, Messages(nil))
		assert.Empty(t, Messages(errors.New("plain")))
	})
}
