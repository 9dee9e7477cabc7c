package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/game"
	"github.com/vovakirdan/brick-breaker/internal/workflow"
)

// AttemptRecorder stores the history of finished attempts.
type AttemptRecorder interface {
	RecordAttempt(outcome string, level int32, score int) error
}

// Options configures a game session.
type Options struct {
	Config   config.BrickBreakerConfig
	Runtime  core.RuntimeConfig // terminal size, tick rate and debug flag
	FPS      int                // render rate; defaults to the tick rate
	Progress core.Progress
	Saver    game.ProgressSaver
	Recorder AttemptRecorder // optional
	Logger   *log.Logger
}

// Model is the Bubble Tea model for a brick breaker session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	input  *core.InputState
	clock  *core.FixedStep

	runtime    core.RuntimeConfig
	fps        int
	fixedWorld bool
	lastFrame  time.Time

	recorder AttemptRecorder
	logger   *log.Logger
	keys     GameKeyMap
	help     help.Model

	err      error
	quitting bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.TickRate
	}
	rt.Debug = rt.Debug || opts.Config.Debug

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = rt.TickRate
	}

	cell := core.Size{Width: float32(opts.Config.World.CellWidth), Height: float32(opts.Config.World.CellHeight)}
	params := game.ParamsFromConfig(opts.Config, game.WorldSize(rt.ScreenW, rt.ScreenH-helpRows, cell))

	g := game.New(params, opts.Progress,
		game.WithLogger(logger),
		game.WithSaver(opts.Saver),
	)

	cols, rows := game.ScreenSize(params.World, params.Cell)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       g,
		screen:     core.NewScreen(cols, rows),
		input:      core.NewInputState(opts.Config.Input.HoldTicks),
		clock:      core.NewFixedStep(rt.TickRate, opts.Config.MaxCatchUpTicks),
		runtime:    rt,
		fps:        fps,
		fixedWorld: game.FixedWorld(opts.Config),
		recorder:   opts.Recorder,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
}

// helpRows is the number of terminal rows below the playfield.
const helpRows = 1

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.input.Press(-1)

	case key.Matches(msg, m.keys.Right):
		m.input.Press(1)

	case key.Matches(msg, m.keys.Stop):
		m.input.Release()

	case key.Matches(msg, m.keys.Confirm):
		m.confirm()

	case key.Matches(msg, m.keys.Debug):
		m.runtime.Debug = !m.runtime.Debug
		m.logger.Debug("debug toggled", "debug", m.runtime.Debug)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// confirm advances the dialog currently on screen.
func (m *Model) confirm() {
	var intent workflow.Intent
	switch m.game.Workflow() {
	case workflow.NextLevel:
		intent = workflow.StartGame
	case workflow.GameOver:
		intent = workflow.GoToHomePage
	default:
		return
	}

	// Rejections are logged by the game and leave the state unchanged
	_ = m.game.Dispatch(intent)
	m.input.Release()
	m.clock.Reset()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	if !m.fixedWorld {
		params := m.game.Params()
		m.game.Resize(game.WorldSize(msg.Width, msg.Height-helpRows, params.Cell))
	}

	params := m.game.Params()
	cols, rows := game.ScreenSize(params.World, params.Cell)
	m.screen.Resize(cols, rows)

	return m, nil
}

// handleFrame runs as many fixed ticks as the elapsed time calls for.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return m, frameCmd(m.fps)
	}
	ticks := m.clock.Advance(now.Sub(m.lastFrame))
	m.lastFrame = now

	seconds := m.runtime.TickSeconds()
	for range ticks {
		out, err := m.game.Update(game.Tick{
			Seconds:      seconds,
			Movement:     m.input.Movement(),
			Invulnerable: m.runtime.Debug,
		})
		m.input.Tick()

		if out.Kind != game.OutcomeNone {
			m.record(out)
			m.input.Release()
		}
		if err != nil {
			m.logger.Error("session stopped", "err", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, frameCmd(m.fps)
}

// record stores a finished attempt. History is auxiliary, so a failure is
// only logged.
func (m *Model) record(out game.Outcome) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.RecordAttempt(out.Kind.String(), out.Level, out.Score); err != nil {
		m.logger.Error("cannot record attempt", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.runtime.Debug)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game driven by the model.
func (m Model) Game() *game.Game {
	return m.game
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
