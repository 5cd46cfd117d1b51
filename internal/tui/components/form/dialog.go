// Package form is a small focus-cycling form built on bubbles inputs.
package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

const dialogHelp = "tab: next  shift+tab: prev  ctrl+s: save  esc: cancel"

// Dialog manages focus cycling, submission, and cancellation across a set
// of fields. Submission only records intent; the owner validates Values and
// either closes the dialog or hands the failures back through SetErrors.
type Dialog struct {
	Title string

	fields    []Field
	focused   int
	submitted bool
	cancelled bool
}

// NewDialog creates a dialog and focuses its first field.
func NewDialog(title string, fields ...Field) *Dialog {
	d := &Dialog{Title: title, fields: fields}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d, d.next()
	case "shift+tab":
		if d.focused > 0 {
			return d, d.focus(d.focused - 1)
		}
		return d, nil
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		if _, multiline := d.current().(*TextAreaField); multiline {
			return d.updateFocused(msg)
		}
		return d, d.next()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocused(msg)
}

// View renders the title, the fields, and a help line.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.ModalTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}
	parts = append(parts, "", styles.FormHelpStyle.Render(dialogHelp))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Values returns every field value keyed by field name.
func (d *Dialog) Values() map[string]string {
	out := make(map[string]string, len(d.fields))
	for _, f := range d.fields {
		out[f.Name()] = f.Value()
	}
	return out
}

// Value returns the value of the named field, or "" if there is none.
func (d *Dialog) Value(name string) string {
	if f := d.field(name); f != nil {
		return f.Value()
	}
	return ""
}

// SetErrors replaces every field error with errs, reopens the dialog for
// editing, and focuses the first errored field in display order.
func (d *Dialog) SetErrors(errs map[string]string) tea.Cmd {
	d.submitted = false

	first := -1
	for i, f := range d.fields {
		msg := errs[f.Name()]
		f.SetError(msg)
		if msg != "" && first < 0 {
			first = i
		}
	}

	if first < 0 {
		return nil
	}
	return d.focus(first)
}

// Errors returns the field errors currently shown.
func (d *Dialog) Errors() map[string]string {
	out := map[string]string{}
	for _, f := range d.fields {
		if msg := f.Error(); msg != "" {
			out[f.Name()] = msg
		}
	}
	return out
}

// FocusedName returns the name of the focused field.
func (d *Dialog) FocusedName() string {
	if f := d.current(); f != nil {
		return f.Name()
	}
	return ""
}

// Resume clears a submit or cancel so editing can continue.
func (d *Dialog) Resume() {
	d.submitted = false
	d.cancelled = false
}

func (d *Dialog) Submitted() bool { return d.submitted }
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) current() Field {
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focused]
}

func (d *Dialog) field(name string) Field {
	for _, f := range d.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// next moves focus forward; past the last field it submits.
func (d *Dialog) next() tea.Cmd {
	if len(d.fields) == 0 {
		return nil
	}
	if d.focused+1 >= len(d.fields) {
		d.submitted = true
		return nil
	}
	return d.focus(d.focused + 1)
}

func (d *Dialog) focus(i int) tea.Cmd {
	if i == d.focused && d.fields[i].Focused() {
		return nil
	}
	d.fields[d.focused].Blur()
	d.focused = i
	return d.fields[i].Focus()
}

// updateFocused forwards msg to the focused field. A change in the field's
// value clears that field's error and no other.
func (d *Dialog) updateFocused(msg tea.Msg) (*Dialog, tea.Cmd) {
	f := d.current()
	if f == nil {
		return d, nil
	}

	before := f.Value()
	f, cmd := f.Update(msg)
	d.fields[d.focused] = f

	if f.Error() != "" && f.Value() != before {
		f.SetError("")
	}
	return d, cmd
}
