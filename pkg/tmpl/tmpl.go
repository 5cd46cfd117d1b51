// Package tmpl renders user supplied Go templates, such as the per-row
// format of `eventboard ls --format`.
package tmpl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// shellQuote returns a shell-safe quoted string. It wraps the string in single
// quotes and escapes any existing single quotes using the '\" technique.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", `'\''`)
	return "'" + escaped + "'"
}

// padRight pads s with spaces to width runes. Longer strings are returned
// unchanged.
func padRight(width int, s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(width int, s string) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// text converts named string types and Stringers, which templates will not
// pass to a func(string) argument.
func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

var funcs = template.FuncMap{
	"shq":      func(v any) string { return shellQuote(text(v)) },
	"join":     strings.Join,
	"upper":    func(v any) string { return strings.ToUpper(text(v)) },
	"lower":    func(v any) string { return strings.ToLower(text(v)) },
	"pad":      func(width int, v any) string { return padRight(width, text(v)) },
	"truncate": func(width int, v any) string { return truncate(width, text(v)) },
}

// Template is a parsed template that can be executed many times.
type Template struct {
	t *template.Template
}

// Parse compiles tmpl. Referencing an undefined map key is an execution
// error.
//
// Available template functions:
//   - shq: Shell-quote a string for safe use in shell commands
//   - join: Join string slice with separator (e.g., join .Tags ",")
//   - upper, lower: change case
//   - pad N: right pad to N runes (e.g., {{ pad 12 .Date }})
//   - truncate N: cut to N runes with an ellipsis
func Parse(tmpl string) (*Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Execute writes the template applied to data to w.
func (t *Template) Execute(w io.Writer, data any) error {
	if err := t.t.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// Render executes a Go template string with the given data.
func Render(tmpl string, data any) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
