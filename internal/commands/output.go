package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hay-kot/criterio"
	"golang.org/x/term"

	"github.com/colonyops/eventboard/internal/core/jsoncolor"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/pkg/iojson"
)

// isTerminal reports whether w is a terminal. Only *os.File can be one.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeJSON prints obj as indented JSON, colorized when out is a terminal.
func writeJSON(out io.Writer, obj any) error {
	if !isTerminal(out) {
		return iojson.WriteWith(out, os.Stderr, obj)
	}

	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(out, jsoncolor.Colorize(bits))
	return err
}

// fieldErrorLines flattens a criterio error into "field: message" lines
// sorted by field. Other errors come back as a single line.
func fieldErrorLines(err error) []string {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fmt.Sprintf("%s: %s", fe.Field, fe.Err))
	}
	sort.Strings(lines)
	return lines
}

// printFieldErrors writes each field error on its own line to w.
func printFieldErrors(w io.Writer, err error) {
	for _, line := range fieldErrorLines(err) {
		_, _ = fmt.Fprintln(w, styles.ErrorTextStyle.Render(styles.IconNotifyError+" "+line))
	}
}
