package form

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

// Field is one named input of a Dialog. Every value is a string; callers
// parse and validate on submit.
type Field interface {
	Name() string
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	// SetError sets the message rendered under the field; "" clears it.
	SetError(msg string)
	Error() string
}

// Option configures a text or textarea field.
type Option func(*options)

type options struct {
	placeholder string
	value       string
	charLimit   int
	height      int
}

// WithPlaceholder sets the text shown while the field is empty.
func WithPlaceholder(s string) Option { return func(o *options) { o.placeholder = s } }

// WithValue seeds the field.
func WithValue(s string) Option { return func(o *options) { o.value = s } }

// WithCharLimit caps the input length and shows a counter while focused.
func WithCharLimit(n int) Option { return func(o *options) { o.charLimit = n } }

// WithHeight sets the number of visible lines of a textarea.
func WithHeight(n int) Option { return func(o *options) { o.height = n } }

func buildOptions(opts []Option) options {
	o := options{height: 4}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const fieldWidth = 40

// base holds what every field shares.
type base struct {
	name    string
	label   string
	focused bool
	err     string
}

func (b *base) Name() string        { return b.name }
func (b *base) Focused() bool       { return b.focused }
func (b *base) SetError(msg string) { b.err = msg }
func (b *base) Error() string       { return b.err }

// frame wraps body with the label line, the error line, and a border that
// follows focus. counter is appended to the label when not empty.
func (b *base) frame(body, counter string) string {
	titleStyle := styles.FormTitleBlurredStyle
	borderStyle := styles.FormFieldStyle
	if b.focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	title := titleStyle.Render(b.label)
	if counter != "" {
		title += " " + styles.MutedTextStyle.Render(counter)
	}

	parts := []string{title, body}
	if b.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(styles.IconNotifyError+" "+b.err))
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func counter(focused bool, n, limit int) string {
	if !focused || limit <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", n, limit)
}
