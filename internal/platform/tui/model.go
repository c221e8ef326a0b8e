package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/runner"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held for a while after its last key event. The first
// press has to outlast the auto-repeat delay; repeats then arrive quickly.
const (
	holdFirst  = 500 * time.Millisecond
	holdRepeat = 150 * time.Millisecond
)

// holdUntil extends a direction's hold for a key event at now.
func holdUntil(until, now time.Time) time.Time {
	if now.Before(until) {
		return now.Add(holdRepeat)
	}
	return now.Add(holdFirst)
}

// RunRecorder stores finished runs for the scoreboard.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options carries the collaborators of a game model.
type Options struct {
	Config   config.RunnerConfig
	Runtime  core.RuntimeConfig
	Best     int
	Sink     runner.BestSink
	Recorder RunRecorder // Nil disables run history
	Player   string      // Recorded with each run
	Logger   *log.Logger
}

// runSavedMsg reports the outcome of recording a run.
type runSavedMsg struct {
	err error
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	session  *runner.Session
	scene    Scene
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	recorder RunRecorder
	player   string
	logger   *log.Logger

	origin     time.Time // Frame clock zero
	leftUntil  time.Time
	rightUntil time.Time

	snap      runner.Snapshot
	runStart  time.Duration // Session clock when the current run began
	recorded  bool          // Current run's game over has been recorded
	quitting  bool
	lastError error
}

// NewModel creates a model on the welcome screen.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	rt.TickRate = core.Clamp(rt.TickRate, 10, 240)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewScene(opts.Config.Render)
	session := runner.NewSession(opts.Config, scene.Viewport(rt.ScreenW, rt.ScreenH), runner.Options{
		Seed:   rt.Seed,
		Best:   opts.Best,
		Sink:   opts.Sink,
		Logger: logger,
	})

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		session:  session,
		scene:    scene,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     h,
		runtime:  rt,
		recorder: opts.Recorder,
		player:   opts.Player,
		logger:   logger,
		origin:   time.Now(),
		snap:     session.Snapshot(),
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case runSavedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.logger.Warn("could not record run", "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input at wall time now.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		m.begin()

	case core.ActionJump:
		if m.session.State() == runner.StateWelcome {
			m.begin()
		} else {
			m.session.Jump()
		}

	case core.ActionLeft:
		m.leftUntil = holdUntil(m.leftUntil, now)
		m.rightUntil = time.Time{}

	case core.ActionRight:
		m.rightUntil = holdUntil(m.rightUntil, now)
		m.leftUntil = time.Time{}

	case core.ActionPause:
		m.session.TogglePause()
	}

	m.snap = m.session.Snapshot()
	return m, nil
}

// begin starts or restarts a run, whichever the session accepts.
func (m *Model) begin() {
	if m.session.Start() || m.session.Restart() {
		m.runStart = m.session.Clock()
		m.recorded = false
		m.leftUntil = time.Time{}
		m.rightUntil = time.Time{}
	}
}

// handleResize processes window resize events. The run continues in the
// new play area.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.session.Resize(m.scene.Viewport(msg.Width, msg.Height))
	m.snap = m.session.Snapshot()
	return m, nil
}

// handleTick advances the session to the frame clock time t.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.session.SetMoveLeft(t.Before(m.leftUntil))
	m.session.SetMoveRight(t.Before(m.rightUntil))

	m.snap = m.session.Tick(t.Sub(m.origin))

	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}
	if m.snap.State == runner.StateGameOver && !m.recorded {
		m.recorded = true
		cmds = append(cmds, m.recordRun(m.snap))
	}
	return m, tea.Batch(cmds...)
}

// recordRun stores the finished run off the update loop.
func (m Model) recordRun(snap runner.Snapshot) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	run := storage.Run{
		Player:     m.player,
		Score:      snap.Score,
		Level:      snap.Level,
		Verdict:    snap.Verdict.Message(),
		DurationMs: (snap.Clock - m.runStart).Milliseconds(),
	}
	rec := m.recorder
	return func() tea.Msg {
		_, err := rec.SaveRun(run)
		return runSavedMsg{err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Draw(m.screen, m.snap)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dinodash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("dinodash_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.scene.Draw(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the last snapshot the model rendered from.
func (m Model) Snapshot() runner.Snapshot {
	return m.snap
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
