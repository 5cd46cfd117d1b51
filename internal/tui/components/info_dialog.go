// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

// InfoStatus marks an info row as passing, warning, or failing.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is one labeled row.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups rows under a title. Labels within a section line up.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// box is the outer size of a modal and the viewport inside it.
type box struct {
	width, height int
	innerW        int
	innerH        int
}

// infoBox sizes a modal to 65% of the screen width within fixed bounds. Four
// rows are reserved for the title, the divider, and the help line.
func infoBox(screenW, screenH int) box {
	const (
		minWidth  = 50
		maxHeight = 30
		margin    = 4
		chrome    = 6
	)
	w := min(max(screenW*65/100, minWidth), screenW-margin)
	h := min(screenH-margin, maxHeight)
	return box{width: w, height: h, innerW: max(w-4, 1), innerH: max(h-chrome, 1)}
}

// InfoDialog is a scrollable modal of sections. The dashboard uses it for
// the record set summary and the notification history.
type InfoDialog struct {
	title    string
	helpText string
	size     box
	viewport viewport.Model
}

// NewInfoDialog lays out sections for a width x height screen. footer, when
// set, is printed after the last section.
func NewInfoDialog(title string, sections []InfoSection, footer, helpText string, width, height int) *InfoDialog {
	size := infoBox(width, height)
	vp := viewport.New(viewport.WithWidth(size.innerW), viewport.WithHeight(size.innerH))
	vp.SetContent(renderSections(sections, footer, size.innerW))

	return &InfoDialog{
		title:    title,
		helpText: helpText,
		size:     size,
		viewport: vp,
	}
}

func divider(width int) string {
	return styles.DividerStyle.Render(strings.Repeat("─", max(width, 1)))
}

func renderSections(sections []InfoSection, footer string, width int) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if section.Title != "" {
			b.WriteString(styles.SectionTitleStyle.Render(section.Title) + "\n")
			b.WriteString(divider(width-2) + "\n")
		}
		if len(section.Items) == 0 {
			b.WriteString(styles.MutedTextStyle.Render("(none)") + "\n")
			continue
		}

		labelW := 0
		for _, item := range section.Items {
			labelW = max(labelW, lipgloss.Width(item.Label))
		}
		for _, item := range section.Items {
			b.WriteString(renderItem(item, labelW) + "\n")
		}
	}

	if footer != "" {
		b.WriteString("\n" + footer)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderItem(item InfoItem, labelW int) string {
	row := styles.ModalTitleStyle.Render(item.Label+Pad(labelW-lipgloss.Width(item.Label))) +
		"  " + styles.MutedTextStyle.Render(item.Value)

	switch item.Status {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render(styles.IconNotifySuccess) + " " + row
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render(styles.IconNotifyWarning) + " " + row
	case InfoStatusFail:
		return styles.ErrorTextStyle.Render(styles.IconNotifyError) + " " + row
	default:
		return row
	}
}

func (d *InfoDialog) ScrollUp()   { d.viewport.ScrollUp(1) }
func (d *InfoDialog) ScrollDown() { d.viewport.ScrollDown(1) }
func (d *InfoDialog) PageUp()     { d.viewport.PageUp() }
func (d *InfoDialog) PageDown()   { d.viewport.PageDown() }
func (d *InfoDialog) GotoTop()    { d.viewport.GotoTop() }
func (d *InfoDialog) GotoBottom() { d.viewport.GotoBottom() }

// Title returns the dialog title.
func (d *InfoDialog) Title() string { return d.title }

// View renders the modal box. A scroll percentage follows the title when
// the content does not fit.
func (d *InfoDialog) View() string {
	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.MutedTextStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		divider(d.size.innerW-2),
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)
	return styles.ModalStyle.Width(d.size.width).Height(d.size.height).Render(content)
}

// Overlay renders the dialog centered over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	return Center(background, d.View(), width, height)
}
