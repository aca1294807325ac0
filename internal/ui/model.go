package ui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/study-input/internal/logging/events"
	"github.com/atomicstack/study-input/internal/plan"
	"github.com/atomicstack/study-input/internal/studyinput"
	"github.com/atomicstack/study-input/internal/theme"
	"github.com/atomicstack/study-input/internal/ui/command"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config describes the host's presentation options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	StartDir   string
	ShowHidden bool
}

// Outcome records how the program ended.
type Outcome struct {
	// Submitted is true when the form was submitted without a generator and
	// the goal is waiting to be printed.
	Submitted bool
	Goal      string
	// Plan holds the last generated plan, if any.
	Plan string
}

// Model implements the Bubble Tea model hosting the study goal form.
type Model struct {
	ctx  context.Context
	form *studyinput.Form
	bus  *command.Bus

	pendingID string
	errMsg    string
	planText  string
	planView  viewport.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	outcome Outcome

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the host. gen may be nil, in which case a submission
// ends the program and leaves the goal in Outcome.
func NewModel(ctx context.Context, cfg Config, gen plan.Generator) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:        ctx,
		bus:        command.New(gen),
		showFooter: cfg.ShowFooter,
		planView:   viewport.New(defaultWidth, minPlanHeight),
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.form = studyinput.New(studyinput.Props{OnGenerate: m.onGenerate}, studyinput.Options{
		StartDir:   cfg.StartDir,
		ShowHidden: cfg.ShowHidden,
		Width:      m.width,
		Height:     m.height,
	})
	m.syncPlanView()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update responds to Bubble Tea messages. Messages without a registered
// handler belong to the form.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.form.Update(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// onGenerate is the form's submission callback. It runs inside Update.
func (m *Model) onGenerate(goal string) tea.Cmd {
	if !m.bus.Ready() {
		m.outcome = Outcome{Submitted: true, Goal: goal}
		events.Plan.Print(len(goal))
		return tea.Quit
	}
	req := plan.NewRequest(goal)
	m.pendingID = req.ID
	m.errMsg = ""
	return tea.Batch(m.form.SetLoading(true), m.bus.Execute(m.ctx, req))
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Request.ID != m.pendingID {
		// superseded or already handled
		return nil
	}
	m.pendingID = ""
	cmd := m.form.SetLoading(false)
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return cmd
	}
	m.errMsg = ""
	m.planText = result.Plan.Text
	m.outcome.Plan = result.Plan.Text
	m.planView.SetContent(m.planText)
	m.planView.GotoTop()
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if !m.form.PickerOpen() {
			return tea.Quit
		}
	case "pgup", "pgdown":
		if m.planText != "" && !m.form.PickerOpen() {
			var cmd tea.Cmd
			m.planView, cmd = m.planView.Update(keyMsg)
			return cmd
		}
	}
	return m.form.Update(keyMsg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncPlanView()
	return m.form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// Form exposes the hosted form.
func (m *Model) Form() *studyinput.Form {
	return m.form
}

// Outcome reports how the program ended.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Pending reports whether a generation request is in flight.
func (m *Model) Pending() bool {
	return m.pendingID != ""
}
