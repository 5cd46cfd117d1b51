package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

// option is a list item for SelectField.
type option string

func (o option) FilterValue() string { return string(o) }

// optionDelegate renders one option per line with a cursor. decorate, when
// set, replaces the plain option text.
type optionDelegate struct {
	decorate func(string) string
}

func (d optionDelegate) Height() int                             { return 1 }
func (d optionDelegate) Spacing() int                            { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(option)
	if !ok {
		return
	}

	text := string(opt)
	if d.decorate != nil {
		text = d.decorate(text)
	}

	cursor, style := "  ", styles.SelectItemStyle
	if index == m.Index() {
		cursor, style = "> ", styles.SelectItemActiveStyle
	}
	_, _ = io.WriteString(w, cursor+style.Render(text))
}

// SelectField picks one value from a fixed list. j/k, the arrow keys, and
// h/l all move the selection.
type SelectField struct {
	base
	list list.Model
}

// NewSelectField creates a select named name. selected pre-selects the
// matching option; an unknown value leaves the first option selected.
func NewSelectField(name, label string, values []string, selected string) *SelectField {
	items := make([]list.Item, len(values))
	for i, v := range values {
		items[i] = option(v)
	}

	l := list.New(items, optionDelegate{}, fieldWidth, max(len(values), 1))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.TitleBar = lipgloss.NewStyle()
	// the dialog owns quit, help, and paging keys
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	f := &SelectField{base: base{name: name, label: label}, list: l}
	f.Select(selected)
	return f
}

// Decorate sets how options are rendered, e.g. with an icon.
func (f *SelectField) Decorate(fn func(string) string) *SelectField {
	f.list.SetDelegate(optionDelegate{decorate: fn})
	return f
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "left", "h":
			f.list.CursorUp()
			return f, nil
		case "right", "l":
			f.list.CursorDown()
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectField) View() string {
	return f.frame(f.list.View(), "")
}

// Select moves the cursor to value. Unknown values are ignored.
func (f *SelectField) Select(value string) {
	for i, item := range f.list.Items() {
		if string(item.(option)) == value {
			f.list.Select(i)
			return
		}
	}
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() { f.focused = false }

func (f *SelectField) Value() string {
	if opt, ok := f.list.SelectedItem().(option); ok {
		return string(opt)
	}
	return ""
}
