package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/user/crush-cli/clip"
	"github.com/user/crush-cli/config"
	"github.com/user/crush-cli/tui/forms"
	"github.com/user/crush-cli/tui/styles"
)

// mode is which screen the model shows.
type mode int

const (
	// modeForm shows the cut form.
	modeForm mode = iota
	// modeRunning shows progress while a cut runs.
	modeRunning
	// modeConfirmCancel asks whether to cancel the running cut.
	modeConfirmCancel
	// modeFinished shows the result of the last cut.
	modeFinished
)

// Options configures Run.
type Options struct {
	Processor *clip.Processor
	Settings  config.Settings
	Logger    *zap.Logger
}

// Model is the Bubbletea model for the TUI application.
type Model struct {
	processor *clip.Processor
	logger    *zap.Logger
	now       func() time.Time

	mode   mode
	form   *huh.Form
	values *forms.CutFormResult

	confirm       *huh.Form
	confirmCancel bool

	// running job
	events     <-chan clip.Event
	cancel     context.CancelFunc
	cancelling bool
	started    time.Time
	finished   time.Time
	request    clip.Request
	stage      clip.Stage
	reached    clip.Stage
	outcome    *clip.Outcome

	// log is the append-only status log; only "c" clears it.
	log []clip.Event

	spinner spinner.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates the model with a form pre-filled from opts.Settings.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		processor: opts.Processor,
		logger:    logger,
		now:       time.Now,
		values:    forms.NewCutFormResult(opts.Settings),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.InfoLine),
		),
	}
	m.form = forms.NewCutForm(m.values)
	return m
}

// Init initializes the form.
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case jobEventMsg:
		return m.handleJobEvent(msg.event)

	case jobStartErrMsg:
		m.appendLog(clip.Event{Level: clip.LevelError, Message: msg.err.Error()})
		m.mode = modeFinished
		return m, nil

	case previewMsg:
		m.appendLog(msg.event)
		return m, nil

	case tea.QuitMsg, tea.InterruptMsg:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmCancel:
		return m.updateConfirm(msg)
	case modeRunning:
		return m.updateRunning(msg)
	default:
		return m.updateFinished(msg)
	}
}

// busy reports whether a cut is in flight.
func (m *Model) busy() bool {
	return m.events != nil
}

func (m *Model) appendLog(e clip.Event) {
	m.log = append(m.log, e)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submit()
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// submit starts the processor with the form values.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.request = m.values.Request()
	m.outcome = nil
	m.stage, m.reached = clip.StageIdle, clip.StageIdle
	m.cancelling = false

	ch, cancel, err := startJob(m.processor, m.request)
	if err != nil {
		m.logger.Warn("cut not started", zap.Error(err))
		return m, func() tea.Msg { return jobStartErrMsg{err: err} }
	}

	m.events = ch
	m.cancel = cancel
	m.started = m.now()
	m.mode = modeRunning
	return m, tea.Batch(m.spinner.Tick, waitForJobMsg(ch))
}

func (m *Model) handleJobEvent(e clip.Event) (tea.Model, tea.Cmd) {
	if e.Transition {
		m.stage, m.reached = e.Stage, e.Stage
		return m, waitForJobMsg(m.events)
	}

	m.appendLog(e)
	if !e.Done {
		return m, waitForJobMsg(m.events)
	}

	m.stage = e.Stage
	m.finished = m.now()
	if e.Err == nil {
		out := e.Outcome
		m.outcome = &out
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.events, m.cancel = nil, nil
	m.cancelling = false
	m.confirm = nil
	m.mode = modeFinished
	return m, nil
}

// shutdown cancels a running cut and waits for the worker to finish, so ffmpeg is
// killed and the run is recorded as cancelled before the program exits.
func (m *Model) shutdown() {
	if m.cancel != nil {
		m.cancelling = true
		m.cancel()
	}
	if m.events != nil {
		for e := range m.events {
			if e.Done {
				m.stage = e.Stage
				m.appendLog(e)
			}
		}
	}
	m.events, m.cancel = nil, nil
}

func (m *Model) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		if m.cancelling {
			return m, nil
		}
		m.confirmCancel = false
		m.confirm = forms.NewConfirmCancelForm(&m.confirmCancel).WithWidth(m.formWidth())
		m.mode = modeConfirmCancel
		return m, m.confirm.Init()
	case "c":
		m.log = nil
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.confirm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		if m.confirmCancel && m.cancel != nil {
			m.cancelling = true
			m.cancel()
		}
	case huh.StateAborted:
	default:
		return m, cmd
	}
	m.confirm = nil
	m.mode = modeRunning
	return m, nil
}

func (m *Model) updateFinished(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "c":
		m.log = nil
	case "n":
		m.values = m.values.Again()
		m.form = forms.NewCutForm(m.values).WithWidth(m.formWidth())
		m.stage, m.reached = clip.StageIdle, clip.StageIdle
		m.mode = modeForm
		return m, m.form.Init()
	case "p":
		if m.outcome != nil {
			return m, previewCmd(m.outcome.Result.Path)
		}
	}
	return m, nil
}

// Run starts the Bubbletea program and blocks until the user quits. A cut still
// running when the program exits, e.g. on SIGTERM, is cancelled and drained.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(*Model); ok {
		m.shutdown()
	}
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
