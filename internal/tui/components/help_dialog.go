package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
)

const helpKeyWidth = 12

// HelpSection groups related bindings under a title.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog displays every available keyboard shortcut.
type HelpDialog struct {
	title    string
	sections []HelpSection
}

// NewHelpDialog creates a help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the help dialog box.
func (h *HelpDialog) View() string {
	var lines []string
	for _, section := range h.sections {
		entries := enabledBindings(section.Bindings)
		if len(entries) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.SectionTitleStyle.Render(section.Title))
			lines = append(lines, styles.DividerStyle.Render(strings.Repeat("─", 25)))
		}
		for _, b := range entries {
			lines = append(lines, formatKeyDesc(b.Help().Key, b.Help().Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render("esc/? close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the help dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Center(background, h.View(), width, height)
}

// enabledBindings drops disabled bindings and those without help text.
func enabledBindings(bindings []key.Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() && b.Help().Key != "" {
			out = append(out, b)
		}
	}
	return out
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(k, desc string) string {
	// pad by display width so glyph keys like ←/→ line up
	paddedKey := k + Pad(helpKeyWidth-lipgloss.Width(k))
	return styles.KeyStyle.Render(paddedKey) + styles.GridRowStyle.Render(desc)
}
