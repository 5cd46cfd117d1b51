package tui

import (
	"fmt"
	"strconv"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/notify"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

const (
	formModalMinWidth = 44
	formModalMaxWidth = 72
)

// ModalCoordinator owns every overlay the dashboard can show and renders
// the one matching the current UI state.
type ModalCoordinator struct {
	Form          *eventForm
	Confirm       Modal
	Detail        *DetailModal
	Help          *components.HelpDialog
	Summary       *components.InfoDialog
	Notifications *components.InfoDialog

	width, height int
}

// NewModalCoordinator creates a coordinator with no modal open.
func NewModalCoordinator() *ModalCoordinator {
	return &ModalCoordinator{}
}

// SetSize updates the available dimensions for modal rendering.
func (mc *ModalCoordinator) SetSize(w, h int) {
	mc.width = w
	mc.height = h
}

func (mc *ModalCoordinator) size() (int, int) {
	w, h := mc.width, mc.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// Overlay renders the overlay for state over bg. It returns bg unchanged
// when the state has no modal.
func (mc *ModalCoordinator) Overlay(state UIState, bg string) string {
	w, h := mc.size()

	switch {
	case state == stateForm && mc.Form != nil:
		return components.Center(bg, mc.formBox(w), w, h)

	case state == stateConfirming:
		// the form stays visible underneath the confirmation
		if mc.Form != nil {
			bg = components.Center(bg, mc.formBox(w), w, h)
		}
		return mc.Confirm.Overlay(bg, w, h)

	case state == stateDetail && mc.Detail != nil:
		return mc.Detail.Overlay(bg, w, h)

	case state == stateShowingHelp && mc.Help != nil:
		return mc.Help.Overlay(bg, w, h)

	case state == stateShowingSummary && mc.Summary != nil:
		return mc.Summary.Overlay(bg, w, h)

	case state == stateShowingNotifications && mc.Notifications != nil:
		return mc.Notifications.Overlay(bg, w, h)

	default:
		return bg
	}
}

func (mc *ModalCoordinator) formBox(screenWidth int) string {
	width := min(max(screenWidth*2/3, formModalMinWidth), formModalMaxWidth)
	return styles.ModalStyle.Width(width).Render(mc.Form.dialog.View())
}

// ShowForm opens the add/edit form.
func (mc *ModalCoordinator) ShowForm(f *eventForm) {
	mc.Form = f
}

// ShowConfirm opens the discard confirmation.
func (mc *ModalCoordinator) ShowConfirm(title, message string) {
	mc.Confirm = NewModal(title, message)
}

// ShowDetail opens the detail modal for e.
func (mc *ModalCoordinator) ShowDetail(e event.Event) {
	w, h := mc.size()
	d := NewDetailModal(e, w, h)
	mc.Detail = &d
}

// ShowHelp opens the help dialog.
func (mc *ModalCoordinator) ShowHelp(title string, sections []components.HelpSection) {
	mc.Help = components.NewHelpDialog(title, sections)
}

// ShowSummary opens the record set summary for state s.
func (mc *ModalCoordinator) ShowSummary(s dashboard.State, sourceDesc string) {
	w, h := mc.size()
	mc.Summary = components.NewInfoDialog("Summary",
		summarySections(s, sourceDesc),
		fmt.Sprintf("%d events", len(s.Events)),
		"j/k scroll  esc close", w, h)
}

// ShowNotifications opens the notification history, newest first, with the
// problem tally as the footer.
func (mc *ModalCoordinator) ShowNotifications(history []notify.Notification, tally notify.Tally) {
	w, h := mc.size()
	items := make([]components.InfoItem, 0, len(history))
	for _, n := range history {
		items = append(items, components.InfoItem{
			Label:  n.CreatedAt.Format("15:04:05"),
			Value:  n.Message,
			Status: levelStatus(n.Level),
		})
	}
	mc.Notifications = components.NewInfoDialog("Notifications",
		[]components.InfoSection{{Items: items}},
		tally.String(), "j/k scroll  c clear  esc close", w, h)
}

// DismissForm drops the form and any pending confirmation.
func (mc *ModalCoordinator) DismissForm() {
	mc.Form = nil
	mc.Confirm = Modal{}
}

// DismissConfirm resets the confirm modal to zero value.
func (mc *ModalCoordinator) DismissConfirm() {
	mc.Confirm = Modal{}
}

// DismissAll closes every read-only dialog. The form is left alone.
func (mc *ModalCoordinator) DismissAll() {
	mc.Detail = nil
	mc.Help = nil
	mc.Summary = nil
	mc.Notifications = nil
}

// HasEditorFocus returns true if a modal with text input is active.
func (mc *ModalCoordinator) HasEditorFocus(state UIState) bool {
	return state == stateForm
}

func summarySections(s dashboard.State, sourceDesc string) []components.InfoSection {
	loadStatus := components.InfoStatusPass
	switch {
	case s.Loading():
		loadStatus = components.InfoStatusWarn
	case s.Failed():
		loadStatus = components.InfoStatusFail
	}

	sourceItems := []components.InfoItem{
		{Label: "Source", Value: sourceDesc},
		{Label: "Status", Value: string(s.Status), Status: loadStatus},
		{Label: "Generation", Value: strconv.FormatUint(s.LoadGen, 10)},
	}
	if s.Failed() {
		sourceItems = append(sourceItems, components.InfoItem{
			Label: "Error", Value: s.Err, Status: components.InfoStatusFail,
		})
	}

	counts := make(map[event.Status]int, len(event.Statuses()))
	dates := make(map[string]struct{})
	for _, e := range s.Events {
		counts[e.Status]++
		dates[e.Date] = struct{}{}
	}

	statusItems := make([]components.InfoItem, 0, len(event.Statuses()))
	for _, st := range event.Statuses() {
		statusItems = append(statusItems, components.InfoItem{
			Label:  st.String(),
			Value:  strconv.Itoa(counts[st]),
			Status: eventStatus(st),
		})
	}

	return []components.InfoSection{
		{Title: "Data", Items: sourceItems},
		{Title: "By status", Items: statusItems},
		{Title: "Calendar", Items: []components.InfoItem{
			{Label: "Days", Value: strconv.Itoa(len(dates))},
		}},
	}
}

func eventStatus(s event.Status) components.InfoStatus {
	switch s {
	case event.StatusCompleted:
		return components.InfoStatusPass
	case event.StatusInProgress:
		return components.InfoStatusWarn
	default:
		return components.InfoStatusNone
	}
}

func levelStatus(l notify.Level) components.InfoStatus {
	switch l {
	case notify.LevelSuccess:
		return components.InfoStatusPass
	case notify.LevelWarning:
		return components.InfoStatusWarn
	case notify.LevelError:
		return components.InfoStatusFail
	default:
		return components.InfoStatusNone
	}
}

// loadingBox renders the centered spinner shown while the first load is in
// flight.
func loadingBox(spin, message string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, spin, " "+message)
}
