// Package jsoncolor renders JSON with theme-aware syntax coloring for
// terminal output.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

// Palette maps JSON token kinds to styles.
type Palette struct {
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Literal     lipgloss.Style // true, false
	Null        lipgloss.Style
	Punctuation lipgloss.Style
}

// DefaultPalette builds a palette from the active theme.
func DefaultPalette() Palette {
	return Palette{
		Key:         lipgloss.NewStyle().Foreground(styles.ColorPrimary),
		String:      lipgloss.NewStyle().Foreground(styles.ColorSuccess),
		Number:      lipgloss.NewStyle().Foreground(styles.ColorWarning),
		Literal:     lipgloss.NewStyle().Foreground(styles.ColorSecondary),
		Null:        lipgloss.NewStyle().Foreground(styles.ColorError),
		Punctuation: lipgloss.NewStyle().Foreground(styles.ColorMuted),
	}
}

// Colorize pretty-prints JSON bytes using DefaultPalette. Invalid JSON is
// returned unchanged.
func Colorize(data []byte) string {
	return DefaultPalette().Colorize(data)
}

// Colorize pretty-prints JSON bytes with p. Invalid JSON is returned
// unchanged.
func (p Palette) Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	raw := buf.String()

	var out strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := findStringEnd(raw, i)
			str := raw[i : end+1]
			// a string followed by a colon is an object key
			if rest := strings.TrimLeft(raw[end+1:], " \t"); strings.HasPrefix(rest, ":") {
				out.WriteString(p.Key.Render(str))
			} else {
				out.WriteString(p.String.Render(str))
			}
			i = end + 1

		case ch == '-' || isDigit(ch):
			end := i + 1
			for end < len(raw) && isNumberByte(raw[end]) {
				end++
			}
			out.WriteString(p.Number.Render(raw[i:end]))
			i = end

		case strings.HasPrefix(raw[i:], "true"):
			out.WriteString(p.Literal.Render("true"))
			i += len("true")

		case strings.HasPrefix(raw[i:], "false"):
			out.WriteString(p.Literal.Render("false"))
			i += len("false")

		case strings.HasPrefix(raw[i:], "null"):
			out.WriteString(p.Null.Render("null"))
			i += len("null")

		case strings.IndexByte("{}[]:,", ch) >= 0:
			out.WriteString(p.Punctuation.Render(string(ch)))
			i++

		default:
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNumberByte(b byte) bool {
	return isDigit(b) || strings.IndexByte(".eE+-", b) >= 0
}

// findStringEnd returns the index of the closing quote for a JSON string starting at pos.
func findStringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}
