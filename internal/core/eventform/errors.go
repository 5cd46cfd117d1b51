package eventform

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// FieldErrors maps a form field to the message shown beneath it.
type FieldErrors map[string]string

// Messages flattens a validation error into per-field messages. It returns
// nil for a nil error and an empty map for errors that are not field errors.
// The first message for a field wins.
func Messages(err error) FieldErrors {
	if err == nil {
		return nil
	}

	out := FieldErrors{}
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		if _, ok := out[fe.Field]; ok {
			continue
		}
		out[fe.Field] = fe.Err.Error()
	}
	return out
}

// Has reports whether field has an error.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Get returns the message for field, or "".
func (f FieldErrors) Get(field string) string {
	return f[field]
}

// Clear removes the error for field only. Editing a field clears its own
// message and leaves the others until the next submit.
func (f FieldErrors) Clear(field string) {
	delete(f, field)
}

// First returns the first field in order that has an error.
func (f FieldErrors) First(order ...string) (string, bool) {
	for _, field := range order {
		if f.Has(field) {
			return field, true
		}
	}
	return "", false
}

// Order is the display order of form fields.
func Order() []string {
	return []string{FieldTitle, FieldDate, FieldStatus, FieldDescription}
}
