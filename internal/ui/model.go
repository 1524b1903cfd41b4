package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scrollwatch/internal/config"
	"scrollwatch/internal/domain"
	"scrollwatch/internal/eventbus"
	"scrollwatch/internal/logic"
	"scrollwatch/internal/ratelimit"
	"scrollwatch/internal/scroll"
	"scrollwatch/internal/ui/input"
	"scrollwatch/internal/ui/views"
)

const (
	horizontalStep = 4
	wheelStep      = 3
)

// surface is what the navigation keys act on
type surface interface {
	Offset() (int, int)
	ScrollBy(dx, dy int) bool
	ScrollTo(x, y int) bool
	MaxY() int
	PageSize() int
	Above() int
	Below() int
}

// Model represents the application state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  logic.SnapshotStore
	title  string

	// Scroll surfaces
	screen *Screen
	pane   *Pane

	// Tracking state. activation increases on every (re)activation so
	// snapshots still queued from an earlier one can be told apart.
	tracker    *scroll.Tracker
	sched      ratelimit.Scheduler
	source     string
	activation int
	snapshot   domain.Snapshot
	published  bool

	// UI-specific state
	width         int
	height        int
	bodyRows      int
	help          help.Model
	input         *input.Handler
	renderer      *views.Renderer
	statusMessage string
	statusIsError bool
	inPagerMode   bool // tracks if we're currently in pager mode
	showReady     bool

	pager *HistoryPager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over the document lines
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.SnapshotStore, title string, lines []string) *Model {
	if store == nil {
		store = logic.NewMemorySnapshotStore(cfg.HistorySize)
	}
	return &Model{
		bus:      bus,
		config:   cfg,
		store:    store,
		title:    title,
		screen:   NewScreen(lines),
		pane:     NewPane(lines),
		tracker:  scroll.NewTracker(),
		sched:    ratelimit.SystemScheduler(),
		source:   config.SourceNone,
		help:     help.New(),
		input:    input.New(),
		renderer: views.NewRenderer(),
		pager:    NewHistoryPager(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewHistoryPager(p)
}

// SetScheduler replaces the clock the tracker throttles against. Call it
// before Init.
func (m *Model) SetScheduler(s ratelimit.Scheduler) {
	if s != nil {
		m.sched = s
	}
}

// EnableReadyMarker makes the status bar print the marker the end-to-end
// driver waits for
func (m *Model) EnableReadyMarker() {
	m.showReady = true
}

// Init starts tracking the configured source
func (m *Model) Init() tea.Cmd {
	m.activate(m.config.Source)
	return nil
}

// Shutdown stops tracking. Safe to call more than once.
func (m *Model) Shutdown() {
	m.deactivate()
}

// Source returns the tracked source kind
func (m *Model) Source() string {
	return m.source
}

// Snapshot returns the last snapshot published by the current activation
func (m *Model) Snapshot() (domain.Snapshot, bool) {
	return m.snapshot, m.published
}

// Tracking reports whether a tracker is active
func (m *Model) Tracking() bool {
	return m.tracker.State() == scroll.StateActive
}

// HeaderVisible reports whether the header is drawn. It hides while the
// last published snapshot says the user is scrolling down.
func (m *Model) HeaderVisible() bool {
	if !m.config.UISettings.HideHeaderOnScrollDown {
		return true
	}
	return !(m.Tracking() && m.published && m.snapshot.ScrollingDown)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, action := range m.input.HandleKey(msg) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case historyPagerMsg:
		if msg.err != nil {
			log.Printf("Error showing history in pager: %v", msg.err)
			m.setError(fmt.Sprintf("history: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	showHeader := m.HeaderVisible()
	rows := m.bodyRows
	if !showHeader {
		// The body takes over the header rows without changing its offsets
		rows += views.HeaderRows(m.config.UISettings.ShowPosition)
	}

	s := m.surface()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.title,
		ShowHeader:    showHeader,
		Body:          m.renderBody(rows),
		Above:         s.Above(),
		Below:         s.Below(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Help:          m.help.View(m.input.Keys()),
		Ready:         m.showReady,
	}
	if m.Tracking() {
		state.Tracking = m.source
	}
	if m.config.UISettings.ShowPosition {
		state.Position = m.positionText()
	}
	if m.published {
		state.Direction = m.snapshot.Direction()
		state.ScrollingDown = m.snapshot.ScrollingDown
	}

	return m.renderer.Render(state)
}

func (m *Model) processAction(action input.Action) tea.Cmd {
	switch a := action.(type) {
	case input.NavigateAction:
		m.navigate(a.Direction)
	case input.SwitchSourceAction:
		m.activate(nextSource(m.source))
	case input.ShowHistoryAction:
		return m.showHistory()
	case input.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case input.QuitAction:
		m.Shutdown()
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	s := m.surface()
	x, _ := s.Offset()
	switch direction {
	case "up":
		s.ScrollBy(0, -1)
	case "down":
		s.ScrollBy(0, 1)
	case "left":
		s.ScrollBy(-horizontalStep, 0)
	case "right":
		s.ScrollBy(horizontalStep, 0)
	case "pageup":
		s.ScrollBy(0, -s.PageSize())
	case "pagedown":
		s.ScrollBy(0, s.PageSize())
	case "home":
		s.ScrollTo(x, 0)
	case "end":
		s.ScrollTo(x, s.MaxY())
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	s := m.surface()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.ScrollBy(0, -wheelStep)
	case tea.MouseButtonWheelDown:
		s.ScrollBy(0, wheelStep)
	case tea.MouseButtonWheelLeft:
		s.ScrollBy(-horizontalStep, 0)
	case tea.MouseButtonWheelRight:
		s.ScrollBy(horizontalStep, 0)
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SnapshotPublishedEvent:
		if e.Activation != m.activation {
			return
		}
		m.snapshot = e.Snapshot
		m.published = true
	case eventbus.ErrorEvent:
		m.setError(e.Message)
	case eventbus.ConfigSavedEvent:
		m.setStatus("config saved to " + e.Path)
	}
}

// activate points the tracker at the surface of the given kind. Any
// previous activation is torn down first; "none" leaves tracking off.
func (m *Model) activate(kind string) {
	m.deactivate()

	m.activation++
	m.source = kind
	m.snapshot = domain.Snapshot{}
	m.published = false

	src := m.sourceFor(kind)
	if src == nil {
		m.setStatus("")
		return
	}

	bus, activation, sched := m.bus, m.activation, m.sched
	publish := func(s domain.Snapshot) {
		bus.Publish(eventbus.SnapshotPublishedEvent{
			Source:     kind,
			Activation: activation,
			At:         sched.Now(),
			Snapshot:   s,
		})
	}

	cfg := scroll.Config{Source: src, Interval: m.config.Interval(), Scheduler: sched}
	if err := m.tracker.Activate(cfg, publish); err != nil {
		log.Printf("Tracker: failed to activate %s source: %v", kind, err)
		m.bus.Publish(eventbus.ErrorEvent{Message: "failed to start tracking", Err: err})
		m.setError(fmt.Sprintf("tracking failed: %v", err))
		return
	}

	m.bus.Publish(eventbus.TrackerActivatedEvent{
		Source:     kind,
		Activation: activation,
		Interval:   cfg.Interval,
	})
	m.setStatus("")
}

func (m *Model) deactivate() {
	if !m.Tracking() {
		return
	}
	m.tracker.Deactivate()
	m.bus.Publish(eventbus.TrackerDeactivatedEvent{Source: m.source, Activation: m.activation})
}

func (m *Model) sourceFor(kind string) scroll.Source {
	switch kind {
	case config.SourceWindow:
		return m.screen
	case config.SourceElement:
		return m.pane
	}
	return nil
}

// surface returns what the keys scroll: the pane when it is tracked,
// the screen otherwise
func (m *Model) surface() surface {
	if m.source == config.SourceElement {
		return m.pane
	}
	return m.screen
}

func nextSource(kind string) string {
	switch kind {
	case config.SourceWindow:
		return config.SourceElement
	case config.SourceElement:
		return config.SourceNone
	}
	return config.SourceWindow
}

// layout sizes both surfaces. The body height does not depend on whether
// the header is showing, so hiding it never moves the offsets.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	helpRows := lipgloss.Height(m.help.View(m.input.Keys()))
	m.bodyRows = max(m.height-views.HeaderRows(m.config.UISettings.ShowPosition)-1-helpRows, 1)

	m.screen.SetSize(m.width, m.bodyRows)
	fw, fh := m.renderer.Styles().PaneFrame()
	m.pane.SetSize(m.width-fw, m.bodyRows-fh)
}

func (m *Model) renderBody(rows int) string {
	if m.source != config.SourceElement {
		return m.screen.View(rows)
	}
	box := m.renderer.Styles().Pane.Render(m.pane.View())
	if extra := rows - lipgloss.Height(box); extra > 0 {
		box += strings.Repeat("\n", extra)
	}
	return box
}

func (m *Model) positionText() string {
	if !m.Tracking() {
		return "not tracking"
	}
	if !m.published {
		return fmt.Sprintf("%s · waiting for scroll", m.source)
	}
	return fmt.Sprintf("%s · x=%d y=%d", m.source, m.snapshot.X, m.snapshot.Y)
}

// showHistory returns a command that shows the snapshot history in ov,
// pausing and resuming rendering
func (m *Model) showHistory() tea.Cmd {
	content := logic.FormatHistory(m.store.All())
	pager, program := m.pager, m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(content)

		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return historyPagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}
