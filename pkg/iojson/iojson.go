// Package iojson reads and writes the JSON documents that commands exchange
// with scripts.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the document written to stderr when a command that was fed JSON
// fails. Fields maps input field names to their messages.
type Error struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// fallback is written when obj itself cannot be encoded. It is built by
// hand so it can never fail.
func fallback(what string, err error) string {
	msg, _ := json.Marshal(what)
	cause, _ := json.Marshal(err.Error())
	return fmt.Sprintf(`{"message":%s,"fields":{"json":%s}}`, msg, cause)
}

// WriteWith writes obj to w as indented JSON. If obj cannot be encoded an
// Error document is written to ew instead.
func WriteWith(w, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, fallback("cannot encode output", err))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}

// WriteError writes e to w as indented JSON.
func WriteError(w io.Writer, e Error) error {
	return WriteWith(w, w, e)
}
