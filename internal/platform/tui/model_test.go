package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/runner"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

type fakeRecorder struct {
	runs []storage.Run
	err  error
}

func (f *fakeRecorder) SaveRun(r storage.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, r)
	return int64(len(f.runs)), nil
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel(rec RunRecorder) Model {
	cfg := config.DefaultRunnerConfig()
	cfg.Timing.StartDelayMs = 0
	return NewModel(Options{
		Config:   cfg,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Recorder: rec,
		Player:   "tester",
	})
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// tick delivers a frame at offset d from the model's clock origin.
func tick(m Model, d time.Duration) (Model, tea.Cmd) {
	return update(m, TickMsg(m.origin.Add(d)))
}

func TestModelStartsOnEnter(t *testing.T) {
	m := testModel(nil)
	if m.Snapshot().State != runner.StateWelcome {
		t.Fatalf("Model should open on the welcome screen")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Snapshot().State != runner.StatePlaying {
		t.Errorf("Enter should start a run, state=%v", m.Snapshot().State)
	}
}

func TestModelSpaceStartsFromWelcome(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, keyRune(' '))
	if m.Snapshot().State != runner.StatePlaying {
		t.Errorf("Space should start a run from the welcome screen")
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(nil)
	m, cmd := update(m, keyRune('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelPauseToggle(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(m, keyRune('p'))
	if !m.Snapshot().Paused {
		t.Fatal("p should pause")
	}
	m, _ = update(m, keyRune('p'))
	if m.Snapshot().Paused {
		t.Error("Second p should resume")
	}
}

func TestModelHoldWindow(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(m, 0)

	x0 := m.session.Player().X
	now := time.Now()
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, now)
	m = next.(Model)

	// Frames inside the hold window move the player
	base := now.Sub(m.origin)
	for i := 1; i <= 5; i++ {
		m, _ = tick(m, base+time.Duration(i)*16*time.Millisecond)
	}
	x1 := m.session.Player().X
	if x1 <= x0 {
		t.Fatalf("Player should move right while the key is held: %v -> %v", x0, x1)
	}

	// Long after the last key event the direction counts as released
	for i := 1; i <= 60; i++ {
		m, _ = tick(m, base+holdFirst+time.Duration(i)*16*time.Millisecond)
	}
	if vx := m.session.Player().VX; vx != 0 {
		t.Errorf("Player should coast to rest after release, VX=%v", vx)
	}
}

func TestHoldUntil(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Time
		now   time.Time
		want  time.Time
	}{
		{"first press", time.Time{}, t0, t0.Add(holdFirst)},
		{"press after release", t0, t0.Add(time.Second), t0.Add(time.Second + holdFirst)},
		{"auto-repeat", t0.Add(holdFirst), t0.Add(400 * time.Millisecond), t0.Add(400*time.Millisecond + holdRepeat)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := holdUntil(tt.until, tt.now); !got.Equal(tt.want) {
				t.Errorf("holdUntil() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelHoldBridgesRepeatDelay(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(m, 0)

	now := time.Now()
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, now)
	m = next.(Model)
	base := now.Sub(m.origin)

	// No key events until auto-repeat kicks in at 400ms
	for d := 16 * time.Millisecond; d < 400*time.Millisecond; d += 16 * time.Millisecond {
		m, _ = tick(m, base+d)
		if m.session.Player().VX <= 0 {
			t.Fatalf("Direction should stay held before auto-repeat starts, VX=%v at %v", m.session.Player().VX, d)
		}
	}

	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, now.Add(400*time.Millisecond))
	m = next.(Model)
	if want := now.Add(400*time.Millisecond + holdRepeat); !m.rightUntil.Equal(want) {
		t.Errorf("Repeat should extend the hold by the short window, until=%v want %v", m.rightUntil, want)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	rec := &fakeRecorder{}
	m := testModel(rec)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(m, 0)
	m, _ = tick(m, 16*time.Millisecond)

	m.session.RegisterHit()
	m, cmd := tick(m, 32*time.Millisecond)
	drain(t, cmd)

	if len(rec.runs) != 1 {
		t.Fatalf("Expected one recorded run, got %d", len(rec.runs))
	}
	if rec.runs[0].Player != "tester" {
		t.Errorf("Run should carry the player name, got %q", rec.runs[0].Player)
	}

	for i := 3; i < 10; i++ {
		m, cmd = tick(m, time.Duration(i)*16*time.Millisecond)
		drain(t, cmd)
	}
	if len(rec.runs) != 1 {
		t.Errorf("Game over should be recorded once, got %d", len(rec.runs))
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Snapshot().State != runner.StatePlaying {
		t.Fatal("Enter should restart after game over")
	}
	m.session.RegisterHit()
	_, cmd = tick(m, time.Second)
	drain(t, cmd)
	if len(rec.runs) != 2 {
		t.Errorf("Second run should be recorded, got %d", len(rec.runs))
	}
}

func TestModelRecordErrorIsKept(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, runSavedMsg{err: errors.New("disk full")})
	if m.lastError == nil {
		t.Error("Record failure should be remembered")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := testModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	snap := m.Snapshot()
	if snap.State != runner.StatePlaying {
		t.Errorf("Resize should not end the run, state=%v", snap.State)
	}
	if snap.Viewport.Width != 1200 {
		t.Errorf("Viewport should follow the terminal, width=%v", snap.Viewport.Width)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("Screen should be 120x39, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

// drain runs cmd and any batched commands it produces. Frame clock
// commands block for one frame and their messages are dropped.
func drain(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}
