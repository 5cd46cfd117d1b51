// Package notify defines user-facing notifications raised by the dashboard.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one message shown as a toast and kept in history.
type Notification struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Tally counts notifications by level.
type Tally map[Level]int

// Total is the number of counted notifications.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// String summarises the problem levels, e.g. "2 errors, 1 warning".
// It is empty when there are none.
func (t Tally) String() string {
	var parts []string
	for _, lvl := range []Level{LevelError, LevelWarning} {
		c := t[lvl]
		if c == 0 {
			continue
		}
		word := string(lvl)
		if c > 1 {
			word += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", c, word))
	}
	return strings.Join(parts, ", ")
}

// Store keeps notification history. List returns the newest first.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context) ([]Notification, error)
	Tally(ctx context.Context) (Tally, error)
	Clear(ctx context.Context) error
}
