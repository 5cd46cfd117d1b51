package form

import (
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

// TextField is a single-line input.
type TextField struct {
	base
	input textinput.Model
	limit int
}

// NewTextField creates a single-line input named name.
func NewTextField(name, label string, opts ...Option) *TextField {
	o := buildOptions(opts)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = o.placeholder
	ti.CharLimit = o.charLimit
	ti.SetWidth(fieldWidth)
	ti.SetValue(o.value)

	st := textinput.DefaultStyles(true)
	st.Cursor.Color = styles.ColorPrimary
	st.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	st.Blurred.Placeholder = st.Focused.Placeholder
	ti.SetStyles(st)

	return &TextField{
		base:  base{name: name, label: label},
		input: ti,
		limit: o.charLimit,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	n := utf8.RuneCountInString(f.input.Value())
	return f.frame(f.input.View(), counter(f.focused, n, f.limit))
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() string { return f.input.Value() }

// SetValue replaces the current text.
func (f *TextField) SetValue(s string) { f.input.SetValue(s) }
