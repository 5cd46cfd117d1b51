package tui

import (
	"errors"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/internal/tui/components"
)

// two dividers around the header, the header, the status line and the help
// footer
const chromeHeight = 5

// --- Window ---

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := max(msg.Height-chromeHeight, 1)

	m.modals.SetSize(msg.Width, msg.Height)
	m.gridView.SetSize(msg.Width, contentHeight)
	m.timelineView.SetSize(msg.Width, contentHeight)
	m.help.SetWidth(msg.Width)

	// Publish startup warnings on the first WindowSizeMsg
	if len(m.startupWarnings) > 0 {
		for _, w := range m.startupWarnings {
			m.notifyBus.Warnf("%s", w)
		}
		m.startupWarnings = nil
		return m, m.ensureToastTick()
	}
	return m, nil
}

// --- Loading ---

func (m Model) handleEventsLoaded(msg eventsLoadedMsg) (tea.Model, tea.Cmd) {
	var action dashboard.Action = dashboard.LoadSucceeded{Gen: msg.gen, Events: msg.events}
	if msg.err != nil {
		action = dashboard.LoadFailed{Gen: msg.gen, Message: msg.err.Error()}
	}

	err := m.store.Dispatch(action)
	switch {
	case errors.Is(err, dashboard.ErrStaleLoad):
		m.log.Debug().Uint64("load_gen", msg.gen).Msg("dropped stale load result")
		return m, nil
	case err != nil:
		return m, m.notifyError("Load rejected: %v", err)
	}

	m.syncViews()

	if msg.err != nil {
		return m, m.notifyError("Load failed: %v", msg.err)
	}
	return m, nil
}

func (m Model) handleSourceChanged() (tea.Model, tea.Cmd) {
	m.log.Debug().Msg("source changed, reloading")
	return m, tea.Batch(m.startLoad(), listenForChanges(m.watcher.Changes()))
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	// the chain stops once loading finishes; startLoad restarts it
	if !m.store.State().Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// --- Notifications ---

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

func (m Model) handleNotification(msg notificationMsg) (tea.Model, tea.Cmd) {
	m.notifyBus.Publish(msg.notification)
	return m, m.ensureToastTick()
}

func (m Model) handleAlertsReady() (tea.Model, tea.Cmd) {
	for _, n := range m.alerts.Take() {
		m.notifyBus.Publish(n)
	}
	return m, tea.Batch(m.ensureToastTick(), m.alerts.Wait())
}

// --- Input ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m.quit()
	}

	switch m.state {
	case stateForm:
		return m.handleFormKey(msg)
	case stateConfirming:
		return m.handleConfirmKey(msg)
	case stateDetail:
		return m.handleDetailKey(msg)
	case stateShowingHelp:
		return m.handleHelpKey(msg)
	case stateShowingSummary, stateShowingNotifications:
		return m.handleInfoKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// while the grid filter is being typed into every key belongs to it
	if m.hasEditorFocus() {
		return m.delegateToView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		return m.showHelp()
	case key.Matches(msg, m.keys.NextView):
		m.activeView = m.activeView.next(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.activeView = m.activeView.next(-1)
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad()
	case key.Matches(msg, m.keys.Add):
		return m.openAddForm()
	case key.Matches(msg, m.keys.Edit):
		var id string
		if sel := m.selectedEvent(); sel != nil {
			id = sel.ID
		}
		return m.openEditForm(id)
	case key.Matches(msg, m.keys.Detail):
		return m.openDetail()
	case key.Matches(msg, m.keys.Summary):
		m.modals.ShowSummary(m.store.State(), m.srcDesc)
		m.state = stateShowingSummary
		return m, nil
	case key.Matches(msg, m.keys.History):
		return m.showNotifications()
	case key.Matches(msg, m.keys.Dismiss) && m.toastController.HasToasts():
		m.toastController.Dismiss()
		return m, nil
	}

	return m.delegateToView(msg)
}

func (m Model) delegateToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeView {
	case ViewTimeline:
		m.timelineView, cmd = m.timelineView.Update(msg)
	default:
		m.gridView, cmd = m.gridView.Update(msg)
	}
	return m, cmd
}

func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		dialog, cmd := m.modals.Form.dialog.Update(msg)
		m.modals.Form.dialog = dialog
		return m, cmd
	case stateDetail:
		m.modals.Detail.UpdateViewport(msg)
	}
	return m, nil
}

// --- Form ---

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	if err := m.store.Dispatch(dashboard.OpenForm{Mode: dashboard.ModeAdd}); err != nil {
		return m, m.notifyError("Cannot add event: %v", err)
	}
	m.modals.ShowForm(newEventForm(dashboard.ModeAdd, newAddDraft(m.now())))
	m.state = stateForm
	return m, nil
}

// openEditForm opens the form seeded from the event with id. An empty id
// means nothing is selected.
func (m Model) openEditForm(id string) (tea.Model, tea.Cmd) {
	if id == "" {
		m.notifyBus.Warnf("No event selected")
		return m, m.ensureToastTick()
	}

	if err := m.store.Dispatch(dashboard.OpenForm{Mode: dashboard.ModeEdit, EventID: id}); err != nil {
		return m, m.notifyError("Cannot edit event: %v", err)
	}

	target, ok := m.store.EditingEvent()
	if !ok {
		_ = m.store.Dispatch(dashboard.CloseForm{})
		return m, m.notifyError("Cannot edit event: %v", dashboard.ErrEditTargetNotFound)
	}

	m.modals.ShowForm(newEventForm(dashboard.ModeEdit, eventform.FromEvent(target)))
	m.state = stateForm
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	f := m.modals.Form
	dialog, cmd := f.dialog.Update(msg)
	f.dialog = dialog

	switch {
	case dialog.Submitted():
		return m.submitForm(cmd)
	case dialog.Cancelled():
		return m.cancelForm(cmd)
	}
	return m, cmd
}

// submitForm validates the draft. Field errors keep the form open with the
// first failing field focused; a valid draft is committed to the store.
func (m Model) submitForm(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	f := m.modals.Form

	ev, err := m.validator.Validate(f.Draft())
	if err != nil {
		return m, tea.Batch(cmd, f.dialog.SetErrors(eventform.Messages(err)))
	}

	var (
		action dashboard.Action = dashboard.AddEvent{Event: ev}
		done                    = "Event added"
	)
	if f.mode == dashboard.ModeEdit {
		action = dashboard.EditEvent{Event: ev}
		done = "Event updated"
	}

	if err := m.store.Dispatch(action); err != nil {
		m.closeForm()
		return m, tea.Batch(cmd, m.notifyError("Save failed: %v", err))
	}

	m.modals.DismissForm()
	m.state = stateNormal
	m.syncViews()
	m.gridView.Select(ev.ID)
	m.timelineView.Select(ev.ID)

	m.log.Info().Str("event_id", ev.ID).Str("mode", string(f.mode)).Msg("event saved")
	return m, tea.Batch(cmd, m.notifySuccess("%s", done))
}

// cancelForm closes a pristine form right away and asks before discarding
// edits.
func (m Model) cancelForm(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.modals.Form.Dirty() {
		m.modals.ShowConfirm("Discard changes?", "Your edits to this event will be lost.")
		m.state = stateConfirming
		return m, cmd
	}
	m.closeForm()
	return m, cmd
}

func (m *Model) closeForm() {
	if err := m.store.Dispatch(dashboard.CloseForm{}); err != nil {
		m.log.Error().Err(err).Msg("close form rejected")
	}
	m.modals.DismissForm()
	m.state = stateNormal
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		m.modals.Confirm.ToggleSelection()
	case keyEnter:
		if m.modals.Confirm.ConfirmSelected() {
			m.closeForm()
			return m, nil
		}
		m.resumeForm()
	case keyEsc:
		m.resumeForm()
	}
	return m, nil
}

func (m *Model) resumeForm() {
	m.modals.DismissConfirm()
	m.modals.Form.dialog.Resume()
	m.state = stateForm
}

// --- Dialogs ---

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	selected := m.selectedEvent()
	if selected == nil {
		return m, nil
	}
	m.modals.ShowDetail(*selected)
	m.state = stateDetail
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyEnter, "q":
		m.closeDialogs()
	case "up", "k":
		m.modals.Detail.ScrollUp()
	case "down", "j":
		m.modals.Detail.ScrollDown()
	case "e":
		target := m.modals.Detail.Event()
		m.closeDialogs()
		return m.openEditForm(target.ID)
	default:
		m.modals.Detail.UpdateViewport(msg)
	}
	return m, nil
}

func (m Model) showHelp() (tea.Model, tea.Cmd) {
	sections := []components.HelpSection{
		{Title: "Dashboard", Bindings: []key.Binding{
			m.keys.Add, m.keys.Edit, m.keys.Detail, m.keys.Reload,
			m.keys.Summary, m.keys.History, m.keys.Dismiss,
			m.keys.NextView, m.keys.Help, m.keys.Quit,
		}},
	}

	var view [][]key.Binding
	title := m.activeView.Title()
	switch m.activeView {
	case ViewTimeline:
		view = m.timelineView.KeyMap().FullHelp()
	default:
		view = m.gridView.KeyMap().FullHelp()
	}
	var bindings []key.Binding
	for _, group := range view {
		bindings = append(bindings, group...)
	}
	sections = append(sections, components.HelpSection{Title: title, Bindings: bindings})

	m.modals.ShowHelp("Keyboard Shortcuts", sections)
	m.state = stateShowingHelp
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc, "?", "q":
		m.closeDialogs()
	}
	return m, nil
}

func (m Model) showNotifications() (tea.Model, tea.Cmd) {
	history, tally, err := m.notifyBus.History()
	if err != nil {
		return m, m.notifyError("Cannot read notifications: %v", err)
	}
	m.modals.ShowNotifications(history, tally)
	m.state = stateShowingNotifications
	return m, nil
}

func (m Model) handleInfoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	dialog := m.modals.Summary
	if m.state == stateShowingNotifications {
		dialog = m.modals.Notifications
	}

	switch msg.String() {
	case keyEsc, "q", keyEnter:
		m.closeDialogs()
	case "up", "k":
		dialog.ScrollUp()
	case "down", "j":
		dialog.ScrollDown()
	case "pgup", "ctrl+u":
		dialog.PageUp()
	case "pgdown", "ctrl+d":
		dialog.PageDown()
	case "g", "home":
		dialog.GotoTop()
	case "G", "end":
		dialog.GotoBottom()
	case "c":
		if m.state == stateShowingNotifications {
			if err := m.notifyBus.Clear(); err != nil {
				return m, m.notifyError("Cannot clear notifications: %v", err)
			}
			m.toastController.DismissAll()
			m.modals.ShowNotifications(nil, nil)
		}
	}
	return m, nil
}

func (m *Model) closeDialogs() {
	m.modals.DismissAll()
	m.state = stateNormal
}
