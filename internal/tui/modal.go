package tui

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

// Modal is a confirmation dialog.
type Modal struct {
	title           string
	message         string
	confirmSelected bool // true = confirm button selected, false = cancel button selected
}

// NewModal creates a new modal with the given title and message. Cancel is
// selected by default.
func NewModal(title, message string) Modal {
	return Modal{title: title, message: message}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// View renders the modal box.
func (m Modal) View() string {
	confirmBtn := styles.ModalButtonStyle.Render("Discard")
	cancelBtn := styles.ModalButtonSelectedStyle.Render("Keep editing")
	if m.confirmSelected {
		confirmBtn = styles.ModalButtonSelectedStyle.Render("Discard")
		cancelBtn = styles.ModalButtonStyle.Render("Keep editing")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		m.message,
		lipgloss.NewStyle().MarginTop(1).Render(buttons),
		styles.ModalHelpStyle.Render("←/→ select  enter confirm  esc back"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the modal centered over the given background content.
func (m Modal) Overlay(background string, width, height int) string {
	return components.Center(background, m.View(), width, height)
}
