// Package tui implements the Bubble Tea dashboard for eventboard.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/eventboard/internal/core/config"
	"github.com/colonyops/eventboard/internal/core/dashboard"
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/eventform"
	"github.com/colonyops/eventboard/internal/core/grid"
	"github.com/colonyops/eventboard/internal/core/logging"
	"github.com/colonyops/eventboard/internal/core/notify"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/data/source"
	tuinotify "github.com/colonyops/eventboard/internal/tui/notify"
	gridview "github.com/colonyops/eventboard/internal/tui/views/grid"
	timelineview "github.com/colonyops/eventboard/internal/tui/views/timeline"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateForm
	stateConfirming
	stateDetail
	stateShowingHelp
	stateShowingSummary
	stateShowingNotifications
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

// Options configures the TUI behavior.
type Options struct {
	Source    source.Source
	Watcher   *source.Watcher // nil disables reload on change
	Validator eventform.Validator
	History   notify.Store // nil uses an in-memory store
	Logger    zerolog.Logger
	Warnings  []string // shown as toasts once the screen is sized
	Build     BuildInfo
	Now       func() time.Time // defaults to time.Now
}

// Model is the root Bubble Tea model. Record state lives in the dashboard
// store; the model owns presentation only.
type Model struct {
	cfg       *config.Config
	store     *dashboard.Store
	src       source.Source
	srcDesc   string
	srcKind   string
	watcher   *source.Watcher
	validator eventform.Validator
	log       zerolog.Logger
	build     BuildInfo
	now       func() time.Time
	loads     *loadTracker

	state        UIState
	activeView   ViewType
	gridView     gridview.View
	timelineView timelineview.View
	modals       *ModalCoordinator

	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	// Notifications
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView
	alerts          *alertQueue

	startupWarnings []string

	width    int
	height   int
	quitting bool
}

// loadTracker cancels the previous in-flight load when a new one starts.
// It is shared by every copy of the model.
type loadTracker struct {
	cancel context.CancelFunc
}

func (t *loadTracker) start() context.Context {
	t.stop()
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	return ctx
}

func (t *loadTracker) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// eventsLoadedMsg carries the result of load generation gen.
type eventsLoadedMsg struct {
	gen    uint64
	events []event.Event
	err    error
}

// sourceChangedMsg is sent when the watcher reports changed event files.
type sourceChangedMsg struct{}

// notificationMsg carries a notification from an async tea.Cmd into the Update loop.
type notificationMsg struct {
	notification notify.Notification
}

// New creates the root model.
func New(cfg *config.Config, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	history := opts.History
	if history == nil {
		history = notify.NewMemoryStore(notify.DefaultHistory)
	}

	toastController := NewToastController()
	bus := tuinotify.NewBus(history)
	bus.Subscribe(toastController.Push)

	alerts := newAlertQueue()
	if opts.Watcher != nil {
		opts.Watcher.OnError(func(err error) {
			alerts.Warnf("Watch error: %v", err)
		})
	}

	columns := grid.HideColumns(event.Columns(), cfg.Grid.HiddenColumns)

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	validator := opts.Validator
	if validator.NewID == nil {
		validator = eventform.New()
	}

	logger := logging.Tag(opts.Logger, "tui")

	return Model{
		cfg:             cfg,
		store:           dashboard.NewStore(opts.Logger),
		src:             opts.Source,
		srcDesc:         source.Describe(opts.Source),
		srcKind:         cfg.Source.Kind,
		watcher:         opts.Watcher,
		validator:       validator,
		log:             logger,
		build:           opts.Build,
		now:             now,
		loads:           &loadTracker{},
		activeView:      ViewGrid,
		gridView:        gridview.New(columns, cfg.Grid.PageSize),
		timelineView:    timelineview.New(cfg.Timeline.Window),
		modals:          NewModalCoordinator(),
		spinner:         s,
		help:            help.New(),
		keys:            DefaultKeyMap(),
		notifyBus:       bus,
		toastController: toastController,
		toastView:       NewToastView(toastController),
		alerts:          alerts,
		startupWarnings: opts.Warnings,
	}
}

// Init starts the first load and, when configured, the file watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startLoad(), m.alerts.Wait()}
	if m.watcher != nil {
		cmds = append(cmds, listenForChanges(m.watcher.Changes()))
	}
	return tea.Batch(cmds...)
}

// startLoad opens a new load generation and returns the command that runs
// the source. Any earlier load still in flight is cancelled; if its result
// arrives anyway the store rejects it as stale.
func (m Model) startLoad() tea.Cmd {
	if err := m.store.Dispatch(dashboard.LoadStart{}); err != nil {
		m.log.Error().Err(err).Msg("load start rejected")
		return nil
	}

	gen := m.store.State().LoadGen
	ctx := logging.WithLoad(m.loads.start(), logging.Load{Gen: gen, Source: m.srcKind})

	src := m.src
	logger := m.log
	load := func() tea.Msg {
		started := time.Now()
		events, err := src.Load(ctx)

		logger.Debug().
			Ctx(ctx).
			Err(err).
			Int("events", len(events)).
			Dur("elapsed", time.Since(started)).
			Msg("load finished")

		return eventsLoadedMsg{gen: gen, events: events, err: err}
	}

	return tea.Batch(load, m.spinner.Tick)
}

// listenForChanges waits for the next watcher signal.
func listenForChanges(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sourceChangedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case eventsLoadedMsg:
		return m.handleEventsLoaded(msg)
	case sourceChangedMsg:
		return m.handleSourceChanged()

	case toastTickMsg:
		return m.handleToastTick(msg)
	case notificationMsg:
		return m.handleNotification(msg)
	case alertsReadyMsg:
		return m.handleAlertsReady()

	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	return m.handleFallthrough(msg)
}

// State returns the current dashboard state.
func (m Model) State() dashboard.State {
	return m.store.State()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.loads.stop()
	m.quitting = true
	return m, tea.Quit
}

// selectedEvent returns the row under the cursor in the grid or the focused
// item on the timeline.
func (m Model) selectedEvent() *event.Event {
	switch m.activeView {
	case ViewTimeline:
		return m.timelineView.Selected()
	default:
		return m.gridView.Selected()
	}
}

// hasEditorFocus reports whether typed keys belong to a text input.
func (m Model) hasEditorFocus() bool {
	if m.modals.HasEditorFocus(m.state) {
		return true
	}
	return m.state == stateNormal && m.activeView == ViewGrid && m.gridView.HasEditorFocus()
}

// syncViews pushes the store's records into both tabs.
func (m *Model) syncViews() {
	events := m.store.State().Events
	m.gridView.SetRecords(events)
	m.timelineView.SetEvents(events)
}

// ensureToastTick starts the toast tick chain if toasts are showing and no
// chain is running. Only one chain may run since every tick ages the toasts.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(format, args...)
	return m.ensureToastTick()
}

func (m *Model) notifySuccess(format string, args ...any) tea.Cmd {
	m.notifyBus.Successf(format, args...)
	return m.ensureToastTick()
}
