// Package runner implements the dino-dash simulation: a single Session owns
// the player, hazards, pacing, score and state machine, and advances them
// one frame at a time from an external clock.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// State is the session's position in the Welcome → Playing → GameOver cycle.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options carries a session's collaborators.
type Options struct {
	Seed   int64      // Used when Rand is nil
	Rand   *rand.Rand // Source for every random decision
	Best   int        // Previously stored best score
	Sink   BestSink   // Receives new best scores; nil keeps them in memory
	Logger *log.Logger
}

// Session is one player's game. It is not safe for concurrent use: the
// frame clock owner calls Tick and the intent methods from one goroutine.
type Session struct {
	cfg    config.RunnerConfig
	vp     core.Viewport
	logger *log.Logger

	state  State
	live   bool
	paused bool

	clock   time.Duration // Session time: sum of clamped frame deltas
	lastNow time.Duration // Last frame clock timestamp seen
	haveNow bool
	liveAt  time.Duration

	player  *Player
	field   *HazardField
	spawner *SpawnScheduler
	score   *ScoreTracker
	timers  *Timers
	pacing  pacingCache

	intents core.Intents
	pulse   bool
	pulseID TimerID
}

// NewSession creates a session on the welcome screen.
func NewSession(cfg config.RunnerConfig, vp core.Viewport, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	s := &Session{
		cfg:     cfg,
		vp:      vp,
		logger:  logger,
		state:   StateWelcome,
		player:  NewPlayer(cfg, vp),
		field:   NewHazardField(),
		spawner: NewSpawnScheduler(rng, cfg),
		score:   NewScoreTracker(opts.Best, opts.Sink),
		timers:  NewTimers(),
		pacing:  pacingCache{d: cfg.Difficulty},
	}
	s.score.onChange = func(int) { s.pacing.Invalidate() }
	s.score.onCredit = s.onCredit
	return s
}

// Start begins the first run. Valid only on the welcome screen.
func (s *Session) Start() bool {
	if s.state != StateWelcome {
		return false
	}
	s.beginRun()
	return true
}

// Restart begins a new run after a game over.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}
	s.beginRun()
	return true
}

// beginRun resets everything owned by a run and enters Playing.
func (s *Session) beginRun() {
	s.timers.Reset()
	s.field.Clear()
	s.score.ResetRun()
	s.pacing.Reset()
	s.player.Reposition(s.vp)
	s.spawner.Reset(s.clock)
	s.intents = core.Intents{}
	s.pulse = false
	s.pulseID = 0
	s.paused = false
	s.haveNow = false

	s.state = StatePlaying
	delay := config.Millis(s.cfg.Timing.StartDelayMs)
	if delay <= 0 {
		s.goLive()
	} else {
		s.live = false
		s.liveAt = s.clock + delay
		s.timers.After(s.clock, delay, s.goLive)
	}
	s.logger.Debug("run started", "best", s.score.Best(), "level", s.pacing.Get(0).Level)
}

// goLive ends the start delay.
func (s *Session) goLive() {
	s.live = true
	s.liveAt = s.clock
	s.spawner.Reset(s.clock)
}

// RegisterHit ends the run. Valid only while Playing.
func (s *Session) RegisterHit() bool {
	if s.state != StatePlaying {
		return false
	}
	s.state = StateGameOver
	s.live = false
	s.player.VX = 0
	s.intents = core.Intents{}
	s.timers.Reset()
	s.pulse = false

	improved := s.score.OnGameOver()
	s.logger.Debug("run over",
		"score", s.score.Current(),
		"best", s.score.Best(),
		"new_best", improved,
		"verdict", s.score.Verdict().Message())
	return true
}

// Jump requests a jump; the next simulated tick consumes it.
func (s *Session) Jump() {
	s.intents.JumpRequested = true
}

// SetMoveLeft records whether the left direction is held.
func (s *Session) SetMoveLeft(held bool) {
	s.intents.MoveLeft = held
}

// SetMoveRight records whether the right direction is held.
func (s *Session) SetMoveRight(held bool) {
	s.intents.MoveRight = held
}

// Pause freezes a run in progress. It reports whether the state changed.
func (s *Session) Pause() bool {
	if s.state != StatePlaying || s.paused {
		return false
	}
	s.paused = true
	s.logger.Debug("paused", "clock", s.clock)
	return true
}

// Resume continues a paused run. The time spent paused is discarded.
func (s *Session) Resume() bool {
	if !s.paused {
		return false
	}
	s.paused = false
	s.haveNow = false
	s.logger.Debug("resumed", "clock", s.clock)
	return true
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() bool {
	if s.paused {
		return s.Resume()
	}
	return s.Pause()
}

// Resize adopts a new viewport. During a run hazards follow the ground line
// and the player is kept inside the new bounds. Outside a run the world stays
// frozen and the viewport takes effect when the next run begins.
func (s *Session) Resize(vp core.Viewport) {
	s.vp = vp
	if s.state != StatePlaying {
		return
	}
	oldGround := s.player.GroundY
	s.player.SetBounds(vp)
	if dy := s.player.GroundY - oldGround; dy != 0 {
		s.field.Shift(dy)
	}
}

// Tick advances the simulation to the frame clock time now and returns
// the resulting snapshot.
func (s *Session) Tick(now time.Duration) Snapshot {
	dt := s.delta(now)
	if s.state != StatePlaying || s.paused {
		return s.Snapshot()
	}

	s.clock += dt
	s.timers.Advance(s.clock)
	if s.state != StatePlaying || !s.live {
		return s.Snapshot()
	}

	s.step(dt.Seconds())
	return s.Snapshot()
}

// delta returns the clamped time since the previous frame. The first
// frame of a run, or after a resume, contributes nothing.
func (s *Session) delta(now time.Duration) time.Duration {
	if !s.haveNow {
		s.haveNow = true
		s.lastNow = now
		return 0
	}
	dt := now - s.lastNow
	s.lastNow = now
	if dt < 0 {
		return 0
	}
	if limit := config.Millis(s.cfg.Timing.MaxDeltaMs); limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// step runs one live simulation step of dt seconds.
func (s *Session) step(dt float64) {
	in := s.intents
	s.intents.JumpRequested = false

	startX := s.player.X
	s.player.Integrate(in, dt)
	if in.JumpRequested && s.player.StartJump(s.clock) {
		s.timers.After(s.clock, s.player.JumpDuration(), s.player.Land)
	}
	s.player.UpdateArc(s.clock)

	pacing := s.pacing.Get(s.score.Current())
	if pacing.Level != s.pacing.logged {
		s.pacing.logged = pacing.Level
		s.logger.Debug("level up", "level", pacing.Level, "spawn_interval", pacing.SpawnInterval)
	}
	s.spawner.Step(SpawnContext{
		Now:     s.clock,
		DT:      dt,
		Score:   s.score.Current(),
		Pacing:  pacing,
		Width:   s.vp.Width,
		GroundY: s.player.GroundY,
	}, s.field)

	s.field.Advance(dt)

	// Hazards are tested over the whole tick so fast ones cannot step
	// across the player between two frames.
	pb := s.player.Box()
	dx := s.player.X - startX
	margin := s.cfg.Collision.Margin
	for _, h := range s.field.Active() {
		if h == nil || h.removed {
			continue
		}
		if core.Overlaps(pb, h.Swept(dx), -margin) {
			s.logger.Debug("hit", "kind", h.Kind, "id", h.ID)
			s.RegisterHit()
			return
		}
	}

	for _, h := range s.field.Active() {
		if h == nil || h.Passed {
			continue
		}
		if h.Box.Right <= pb.Left {
			s.score.OnHazardPassed(h)
		}
	}

	s.field.Sweep()
}

// onCredit highlights the score for a moment after each pass.
func (s *Session) onCredit(*Hazard) {
	d := config.Millis(s.cfg.Timing.ScorePulseMs)
	if d <= 0 {
		return
	}
	if s.pulseID != 0 {
		s.timers.Cancel(s.pulseID)
	}
	s.pulse = true
	s.pulseID = s.timers.After(s.clock, d, func() {
		s.pulse = false
		s.pulseID = 0
	})
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	hazards := make([]HazardPose, 0, s.field.Len())
	for _, h := range s.field.Active() {
		if h == nil || h.removed {
			continue
		}
		hazards = append(hazards, HazardPose{
			ID:     h.ID,
			Kind:   h.Kind,
			Box:    h.Box,
			Passed: h.Passed,
		})
	}

	facing := 0.0
	switch {
	case s.player.VX > 0:
		facing = 1
	case s.player.VX < 0:
		facing = -1
	}

	var countdown time.Duration
	if s.state == StatePlaying && !s.live && s.liveAt > s.clock {
		countdown = s.liveAt - s.clock
	}

	return Snapshot{
		State:     s.state,
		Paused:    s.paused,
		Live:      s.live,
		Countdown: countdown,
		Pulse:     s.pulse,
		Viewport:  s.vp,
		GroundY:   s.player.GroundY,
		Player: PlayerPose{
			Box:      s.player.Box(),
			Airborne: s.player.Airborne,
			Facing:   facing,
		},
		Hazards: hazards,
		Score:   s.score.Current(),
		Best:    s.score.Best(),
		Level:   s.pacing.Get(s.score.Current()).Level,
		Gap:     s.score.Gap(),
		Verdict: s.score.Verdict(),
		Clock:   s.clock,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score.Current()
}

// Best returns the best score known to this session.
func (s *Session) Best() int {
	return s.score.Best()
}

// Player exposes the player for inspection.
func (s *Session) Player() *Player {
	return s.player
}

// Hazards exposes the hazard field for inspection and scripted setups.
func (s *Session) Hazards() *HazardField {
	return s.field
}

// Clock returns the session time.
func (s *Session) Clock() time.Duration {
	return s.clock
}

// pacingCache holds the pacing for the current level. Score changes mark
// it stale; the pacing itself is recomputed only when the level moves.
type pacingCache struct {
	d      config.DifficultyConfig
	valid  bool
	stale  bool
	pacing config.Pacing
	logged int

	recomputes int
}

// Get returns the pacing for score.
func (c *pacingCache) Get(score int) config.Pacing {
	if c.valid && !c.stale {
		return c.pacing
	}
	c.stale = false
	level := config.Level(score, c.d)
	if c.valid && level == c.pacing.Level {
		return c.pacing
	}
	c.pacing = config.PacingForLevel(level, c.d)
	c.valid = true
	c.recomputes++
	return c.pacing
}

// Invalidate marks the cached level as possibly out of date.
func (c *pacingCache) Invalidate() {
	c.stale = true
}

// Reset forgets the cached pacing.
func (c *pacingCache) Reset() {
	c.valid = false
	c.stale = false
	c.logged = config.Level(0, c.d)
}
