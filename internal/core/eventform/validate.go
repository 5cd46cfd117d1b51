// Package eventform validates user drafts of an event before they are
// committed to the dashboard.
package eventform

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/eventboard/internal/core/event"
)

// Field names used in validation errors.
const (
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldStatus      = "status"
	FieldDescription = "description"
)

// Validation messages are shown to the user verbatim.
//
//nolint:staticcheck
var (
	ErrTitleRequired = errors.New("Title is required")
	ErrDateRequired  = errors.New("Date is required")
	ErrDateFormat    = errors.New("Date must be YYYY-MM-DD")
	ErrStatusInvalid = errors.New("Status must be one of " + strings.Join(event.StatusNames(), ", "))
)

// Draft is the raw, unvalidated content of the form.
type Draft struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// FromEvent seeds a draft from an existing event for editing.
func FromEvent(e event.Event) Draft {
	return Draft{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Status:      string(e.Status),
		Description: e.Description,
	}
}

// Validator turns drafts into events.
type Validator struct {
	// NewID mints ids for drafts without one.
	NewID func() string
}

// New returns a Validator that mints UUIDv4 ids.
func New() Validator {
	return Validator{NewID: uuid.NewString}
}

// Validate checks d and returns the event it describes. Failures are
// criterio.FieldErrors keyed by the Field* constants; every failing field is
// reported, not only the first.
func (v Validator) Validate(d Draft) (event.Event, error) {
	title := strings.TrimSpace(d.Title)
	date := strings.TrimSpace(d.Date)

	status := strings.TrimSpace(d.Status)
	if status == "" {
		status = string(event.StatusNotStarted)
	}

	err := criterio.ValidateStruct(
		criterio.Run(FieldTitle, title, required(ErrTitleRequired)),
		criterio.Run(FieldDate, date, isoDate),
		criterio.Run(FieldStatus, status, knownStatus),
	)
	if err != nil {
		return event.Event{}, err
	}

	id := d.ID
	if id == "" {
		newID := v.NewID
		if newID == nil {
			newID = uuid.NewString
		}
		id = newID()
	}

	return event.Event{
		ID:          id,
		Title:       title,
		Date:        date,
		Status:      event.Status(status),
		Description: strings.TrimSpace(d.Description),
	}, nil
}

func required(err error) func(string) error {
	return func(s string) error {
		if s == "" {
			return err
		}
		return nil
	}
}

func isoDate(s string) error {
	if s == "" {
		return ErrDateRequired
	}
	if !event.ValidDate(s) {
		return ErrDateFormat
	}
	return nil
}

func knownStatus(s string) error {
	if !event.Status(s).IsValid() {
		return ErrStatusInvalid
	}
	return nil
}
