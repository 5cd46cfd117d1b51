package tui

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

const (
	detailModalMaxWidth  = 90
	detailModalMaxHeight = 28
	detailModalMargin    = 4
	detailModalChrome    = 9
	detailModalPadding   = 6

	noDescription = "_No description._"
)

// DetailModal shows one event with its description rendered as markdown.
type DetailModal struct {
	event    event.Event
	viewport viewport.Model
}

// NewDetailModal creates a detail modal sized for a width x height screen.
func NewDetailModal(e event.Event, width, height int) DetailModal {
	modalWidth := max(min(width-detailModalMargin, detailModalMaxWidth), 30)
	modalHeight := max(min(height-detailModalMargin, detailModalMaxHeight), detailModalChrome+3)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-detailModalPadding),
		viewport.WithHeight(modalHeight-detailModalChrome),
	)

	m := DetailModal{event: e, viewport: vp}
	m.viewport.SetContent(renderMarkdown(e.Description, modalWidth-detailModalPadding))
	return m
}

// Event returns the event being shown.
func (m DetailModal) Event() event.Event { return m.event }

// ScrollUp scrolls the description up one line.
func (m *DetailModal) ScrollUp() { m.viewport.ScrollUp(1) }

// ScrollDown scrolls the description down one line.
func (m *DetailModal) ScrollDown() { m.viewport.ScrollDown(1) }

// UpdateViewport forwards a message to the viewport (paging keys, mouse).
func (m *DetailModal) UpdateViewport(msg any) {
	m.viewport, _ = m.viewport.Update(msg)
}

// View renders the modal box.
func (m DetailModal) View() string {
	e := m.event

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.MutedTextStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	meta := fmt.Sprintf("%s %s   %s   %s",
		styles.IconCalendar, e.Date,
		components.StatusBadge(e.Status),
		styles.MutedTextStyle.Render("id "+e.ID),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(e.Title)+scrollInfo,
		"",
		meta,
		styles.DividerStyle.Render(strings.Repeat("─", max(m.viewport.Width(), 10))),
		m.viewport.View(),
		styles.ModalHelpStyle.Render("↑/↓ scroll  e edit  esc close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the modal centered over background.
func (m DetailModal) Overlay(background string, width, height int) string {
	return components.Center(background, m.View(), width, height)
}

func renderMarkdown(src string, width int) string {
	if strings.TrimSpace(src) == "" {
		src = noDescription
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw description")
		return src
	}

	rendered, err := renderer.Render(src)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw description")
		return src
	}

	return trimDecorative(strings.TrimSpace(rendered))
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func isDecorativeLine(line string) bool {
	stripped := strings.TrimSpace(ansiPattern.ReplaceAllString(line, ""))
	if stripped == "" {
		return true
	}
	for _, r := range stripped {
		if r != '─' && r != '━' && r != '-' && r != '=' {
			return false
		}
	}
	return true
}

// trimDecorative drops blank and rule lines glamour adds around a document.
func trimDecorative(content string) string {
	lines := strings.Split(content, "\n")
	start, end := 0, len(lines)
	for start < end && isDecorativeLine(lines[start]) {
		start++
	}
	for end > start && isDecorativeLine(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
