// Package event defines the event record managed by the dashboard.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for Event.Date.
const DateLayout = "2006-01-02"

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrDuplicateID   = errors.New("duplicate event id")
)

// Status is the progress state of an event.
// ENUM(completed, in-progress, not-started).
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusNotStarted Status = "not-started"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusCompleted, StatusInProgress, StatusNotStarted}
}

// StatusNames returns the string form of every status in display order.
func StatusNames() []string {
	all := Statuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return names
}

// ParseStatus converts s to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", fmt.Errorf("%w %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusNotStarted:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Event is an immutable value; edits produce a replacement with the same ID.
type Event struct {
	ID          string `json:"id"                    yaml:"id"`
	Title       string `json:"title"                 yaml:"title"`
	Date        string `json:"date"                  yaml:"date"` // ISO yyyy-mm-dd
	Status      Status `json:"status"                yaml:"status"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// CheckUnique returns ErrDuplicateID for the first id that appears twice.
func CheckUnique(events []Event) error {
	seen := make(map[string]bool, len(events))
	for _, e := range events {
		if seen[e.ID] {
			return fmt.Errorf("%w %q", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// IndexOf returns the position of the event with id, or -1.
func IndexOf(events []Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
