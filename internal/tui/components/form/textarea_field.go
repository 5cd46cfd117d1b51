package form

import (
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line input. Enter inserts a newline, so the
// dialog never treats enter as "next field" while one is focused.
type TextAreaField struct {
	base
	input textarea.Model
	limit int
}

// NewTextAreaField creates a multi-line input named name.
func NewTextAreaField(name, label string, opts ...Option) *TextAreaField {
	o := buildOptions(opts)

	ta := textarea.New()
	ta.Placeholder = o.placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = o.charLimit
	ta.SetHeight(o.height)
	ta.SetWidth(fieldWidth)
	ta.SetValue(o.value)

	return &TextAreaField{
		base:  base{name: name, label: label},
		input: ta,
		limit: o.charLimit,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	n := utf8.RuneCountInString(f.input.Value())
	return f.frame(f.input.View(), counter(f.focused, n, f.limit))
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Value() string { return f.input.Value() }
