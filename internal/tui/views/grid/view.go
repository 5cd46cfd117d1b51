package grid

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/grid"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

const (
	emptyTitle = "No events found"
	emptyHint  = "Try adjusting your filters"
)

// fixed column widths; any other column shares the remaining width.
var fixedWidths = map[string]int{
	event.ColumnID:     8,
	event.ColumnDate:   12,
	event.ColumnStatus: 16,
}

const minFlexWidth = 12

// View is the Bubble Tea sub-model for the grid tab.
type View struct {
	ctrl   *Controller
	keys   KeyMap
	pager  paginator.Model
	width  int
	height int
}

// New creates a grid view over columns.
func New(columns []grid.Column[event.Event], pageSize int) View {
	ctrl := NewController(columns, pageSize)

	pager := paginator.New(paginator.WithPerPage(ctrl.PageSize()))
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "page %d/%d"

	v := View{ctrl: ctrl, keys: DefaultKeyMap(), pager: pager}
	v.syncPager()
	return v
}

// Update handles key input for the grid tab.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return v, nil
	}

	if v.ctrl.IsFiltering() {
		v.handleFilterKey(keyMsg)
	} else {
		v.handleNormalKey(keyMsg)
	}
	v.syncPager()
	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		v.ctrl.CancelFilter()
	case "enter":
		v.ctrl.ConfirmFilter()
	case "backspace":
		v.ctrl.DeleteFilterRune()
	default:
		for _, r := range msg.Key().Text {
			v.ctrl.AddFilterRune(r)
		}
	}
}

func (v *View) handleNormalKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, v.keys.Up):
		v.ctrl.MoveUp()
	case key.Matches(msg, v.keys.Down):
		v.ctrl.MoveDown()
	case key.Matches(msg, v.keys.Left):
		v.ctrl.FocusPrev()
	case key.Matches(msg, v.keys.Right):
		v.ctrl.FocusNext()
	case key.Matches(msg, v.keys.NextPage):
		v.ctrl.NextPage()
	case key.Matches(msg, v.keys.PrevPage):
		v.ctrl.PrevPage()
	case key.Matches(msg, v.keys.Sort):
		v.ctrl.SortFocused()
	case key.Matches(msg, v.keys.Direction):
		v.ctrl.ToggleDirection()
	case key.Matches(msg, v.keys.ClearSort):
		v.ctrl.ClearSort()
	case key.Matches(msg, v.keys.Filter):
		v.ctrl.StartFilter()
	case key.Matches(msg, v.keys.ClearFilters):
		v.ctrl.ClearFilters()
	}
}

// SetRecords replaces the events shown by the grid.
func (v *View) SetRecords(events []event.Event) {
	v.ctrl.SetRecords(events)
	v.syncPager()
}

// Select moves the cursor to the event with id when it is visible under the
// current filters.
func (v *View) Select(id string) {
	v.ctrl.SelectID(id)
	v.syncPager()
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the event under the cursor.
func (v View) Selected() *event.Event { return v.ctrl.Selected() }

// HasEditorFocus returns true while a filter is being typed.
func (v View) HasEditorFocus() bool { return v.ctrl.IsFiltering() }

// Controller exposes the underlying controller.
func (v View) Controller() *Controller { return v.ctrl }

// KeyMap returns the grid bindings for the help line.
func (v View) KeyMap() KeyMap { return v.keys }

func (v *View) syncPager() {
	res := v.ctrl.Result()
	v.pager.TotalPages = res.TotalPages
	v.pager.Page = max(res.Page-1, 0)
}

// View renders the grid.
func (v View) View() string {
	var b strings.Builder

	b.WriteString(v.renderFilterLine())
	b.WriteString("\n")

	widths := v.columnWidths()
	b.WriteString(v.renderHeader(widths))
	b.WriteString("\n")

	res := v.ctrl.Result()
	if res.Empty() {
		b.WriteString(styles.GridEmptyStyle.Render(emptyTitle + "\n" + emptyHint))
		b.WriteString("\n")
	} else {
		for i, e := range res.Rows {
			b.WriteString(v.renderRow(e, widths, i == v.ctrl.Cursor()))
			b.WriteString("\n")
		}
	}

	footer := fmt.Sprintf("%s  %d events", v.pager.View(), res.TotalFiltered)
	b.WriteString(styles.GridPagerStyle.Render(footer))
	return b.String()
}

func (v View) renderFilterLine() string {
	if v.ctrl.IsFiltering() {
		col, _ := v.ctrl.FocusedColumn()
		return styles.GridFilterActiveStyle.Render(
			fmt.Sprintf("%s %s: %s▎", styles.IconFilter, col.Label, v.ctrl.FilterInput()),
		)
	}

	active := v.ctrl.State().Filters
	if len(active) == 0 {
		return styles.GridFilterStyle.Render(styles.IconFilter + " no filters")
	}

	keys := make([]string, 0, len(active))
	for k := range active {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%q", k, active[k])
	}
	return styles.GridFilterStyle.Render(styles.IconFilter + " " + strings.Join(parts, " "))
}

func (v View) renderHeader(widths []int) string {
	state := v.ctrl.State()
	cols := v.ctrl.Columns()

	cells := make([]string, len(cols))
	for i, col := range cols {
		label := col.Label
		if state.SortKey == col.Key {
			if state.Direction == grid.Desc {
				label += " " + styles.IconSortDesc
			} else {
				label += " " + styles.IconSortAsc
			}
		}
		if state.Filter(col.Key) != "" {
			label += " " + styles.IconFilter
		}

		style := styles.GridHeaderStyle
		if i == v.ctrl.FocusIndex() {
			style = styles.GridHeaderActiveStyle
		}
		cells[i] = style.Render(components.Fit(label, widths[i]))
	}
	return "  " + strings.Join(cells, " ")
}

func (v View) renderRow(e event.Event, widths []int, selected bool) string {
	cols := v.ctrl.Columns()
	cells := make([]string, len(cols))

	rowStyle := styles.GridRowStyle
	if selected {
		rowStyle = styles.GridRowSelectedStyle
	}

	for i, col := range cols {
		if col.Key == event.ColumnStatus {
			cells[i] = renderStatus(e.Status, widths[i], selected)
			continue
		}
		cells[i] = rowStyle.Render(components.Fit(grid.Stringify(col.Value(e)), widths[i]))
	}

	prefix := "  "
	if selected {
		prefix = styles.TitleStyle.Render("┃") + " "
	}
	return prefix + strings.Join(cells, " ")
}

func renderStatus(s event.Status, width int, selected bool) string {
	icon, style := components.StatusIcon(s)
	if selected {
		style = style.Bold(true)
	}
	return style.Render(components.Fit(icon+" "+string(s), width))
}

func (v View) columnWidths() []int {
	cols := v.ctrl.Columns()
	widths := make([]int, len(cols))

	avail := v.width - 2 - max(len(cols)-1, 0)
	flex := 0
	for i, col := range cols {
		if w, ok := fixedWidths[col.Key]; ok {
			widths[i] = w
			avail -= w
			continue
		}
		flex++
	}

	if flex == 0 {
		return widths
	}
	share := max(avail/flex, minFlexWidth)
	for i, col := range cols {
		if _, ok := fixedWidths[col.Key]; !ok {
			widths[i] = share
		}
	}
	return widths
}
