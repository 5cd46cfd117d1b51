package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

const retryHint = "press r to retry"

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderScreen())
	v.AltScreen = !m.quitting
	return v
}

// renderScreen composes the tab view with any open modal and the toasts.
func (m Model) renderScreen() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := m.modals.Overlay(m.state, m.renderTabView())

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

// renderTabView renders the header, the active tab and the footer.
func (m Model) renderTabView() string {
	renderTab := func(view ViewType) string {
		if m.activeView == view {
			return styles.TabActiveStyle.Render(view.Title())
		}
		return styles.TabStyle.Render(view.Title())
	}

	tabs := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		tabs = append(tabs, renderTab(v))
	}
	tabsLeft := strings.Join(tabs, " ")

	branding := styles.TitleStyle.Render(styles.IconCalendar + " eventboard")
	if m.build.Version != "" {
		branding += styles.MutedTextStyle.Render(" " + m.build.Version)
	}

	// Layout: [margin] tabs [spacer] branding [margin]
	margin := 1
	spacerWidth := max(m.width-lipgloss.Width(tabsLeft)-lipgloss.Width(branding)-(margin*2), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		components.Pad(margin), tabsLeft, components.Pad(spacerWidth), branding, components.Pad(margin))

	dividerWidth := m.width
	if dividerWidth < 1 {
		dividerWidth = 80 // default width before WindowSizeMsg
	}
	divider := styles.DividerStyle.Render(strings.Repeat("─", dividerWidth))

	contentHeight := max(m.height-chromeHeight, 1)
	content := lipgloss.NewStyle().Height(contentHeight).Render(m.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left,
		divider,
		header,
		divider,
		content,
		m.renderStatusLine(),
		m.renderHelp(),
	)
}

// renderContent shows the first load's spinner, a failed load's message
// verbatim, or the active tab.
func (m Model) renderContent() string {
	s := m.store.State()

	switch {
	case s.Loading() && len(s.Events) == 0:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			loadingBox(m.spinner.View(), "Loading events from "+m.srcDesc+"…"))

	case s.Failed():
		return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.ErrorTextStyle.Render("Failed to load events"),
			"",
			s.Err,
			"",
			styles.MutedTextStyle.Render(retryHint),
		))
	}

	switch m.activeView {
	case ViewTimeline:
		return m.timelineView.View()
	default:
		return m.gridView.View()
	}
}

// renderStatusLine summarizes the record set and the source.
func (m Model) renderStatusLine() string {
	s := m.store.State()

	var left string
	switch {
	case s.Loading():
		left = m.spinner.View() + " loading"
	case s.Failed():
		left = styles.ErrorTextStyle.Render(styles.IconNotifyError + " load failed")
	default:
		left = fmt.Sprintf("%d events", len(s.Events))
	}

	line := " " + left + "  " + styles.MutedTextStyle.Render(m.srcDesc)
	if m.watcher != nil {
		line += styles.MutedTextStyle.Render("  (watching)")
	}
	return line
}

func (m Model) renderHelp() string {
	var view viewHelp
	view.root = m.keys
	switch m.activeView {
	case ViewTimeline:
		view.view = m.timelineView.KeyMap()
	default:
		view.view = m.gridView.KeyMap()
	}
	return " " + m.help.View(view)
}
