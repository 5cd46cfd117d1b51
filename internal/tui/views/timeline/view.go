package timeline

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

const (
	minColumnWidth = 16
	arrowWidth     = 3
	columnChrome   = 4 // border + horizontal padding
	columnChromeV  = 4 // border + day header + its margin
)

// View is the Bubble Tea sub-model for the timeline tab.
type View struct {
	ctrl   *Controller
	keys   KeyMap
	width  int
	height int
}

// New creates a timeline view showing window days at a time.
func New(window int) View {
	return View{ctrl: NewController(window), keys: DefaultKeyMap()}
}

// Update handles key input for the timeline tab.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Next):
		v.ctrl.Next()
	case key.Matches(keyMsg, v.keys.Prev):
		v.ctrl.Prev()
	case key.Matches(keyMsg, v.keys.Advance):
		v.ctrl.Advance()
	case key.Matches(keyMsg, v.keys.Retreat):
		v.ctrl.Retreat()
	}
	return v, nil
}

// SetEvents replaces the events shown on the timeline.
func (v *View) SetEvents(events []event.Event) { v.ctrl.SetEvents(events) }

// Select focuses the event with id.
func (v *View) Select(id string) { v.ctrl.Select(id) }

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the focused event.
func (v View) Selected() *event.Event { return v.ctrl.Focused() }

// Controller exposes the underlying controller.
func (v View) Controller() *Controller { return v.ctrl }

// KeyMap returns the timeline bindings for the help line.
func (v View) KeyMap() KeyMap { return v.keys }

// View renders the visible day columns between carousel arrows.
func (v View) View() string {
	if v.ctrl.Empty() {
		return styles.GridEmptyStyle.Render("No events found")
	}

	car := v.ctrl.Carousel()
	visible := v.ctrl.Visible()
	start, _ := car.Bounds()
	focusGroup, focusItem, _ := v.ctrl.FocusPosition()

	colWidth := v.columnWidth(len(visible))
	maxItems := max(v.height-columnChromeV-1, 1)

	columns := make([]string, len(visible))
	for i, g := range visible {
		gi := start + i
		focused := -1
		if gi == focusGroup {
			focused = focusItem
		}
		columns[i] = renderDay(g.Date, g.Events, focused, colWidth, maxItems)
	}

	left := styles.TimelineArrowOffStyle.Render(" " + styles.IconPrev + " ")
	if car.CanRetreat() {
		left = styles.TimelineArrowStyle.Render(" " + styles.IconPrev + " ")
	}
	right := styles.TimelineArrowOffStyle.Render(" " + styles.IconNext + " ")
	if car.CanAdvance() {
		right = styles.TimelineArrowStyle.Render(" " + styles.IconNext + " ")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		right,
	)

	_, end := car.Bounds()
	footer := styles.GridPagerStyle.Render(
		fmt.Sprintf("days %d-%d of %d", start+1, end, car.Total()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, row, footer)
}

func (v View) columnWidth(n int) int {
	if n == 0 || v.width == 0 {
		return minColumnWidth
	}
	w := (v.width-2*arrowWidth)/n - columnChrome
	return max(w, minColumnWidth)
}

func renderDay(date string, events []event.Event, focused, width, maxItems int) string {
	header := styles.DayHeaderStyle.Render(
		components.Fit(fmt.Sprintf("%s %s (%d)", styles.IconCalendar, date, len(events)), width),
	)

	// Scroll the item list so the focused event stays on screen.
	first := 0
	if focused >= maxItems {
		first = focused - maxItems + 1
	}
	last := min(first+maxItems, len(events))

	lines := []string{header}
	for i := first; i < last; i++ {
		e := events[i]
		icon, iconStyle := components.StatusIcon(e.Status)
		text := components.Fit(e.Title, width-2)

		if i == focused {
			lines = append(lines, styles.TimelineFocusedStyle.Render(icon+" "+text))
			continue
		}
		lines = append(lines, iconStyle.Render(icon)+" "+styles.TimelineItemStyle.Render(text))
	}
	if hidden := len(events) - last; hidden > 0 {
		lines = append(lines, styles.MutedTextStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}

	style := styles.DayColumnStyle
	if focused >= 0 {
		style = styles.DayColumnFocusedStyle
	}
	return style.Width(width + columnChrome).Render(strings.Join(lines, "\n"))
}
