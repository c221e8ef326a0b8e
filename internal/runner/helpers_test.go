package runner

import (
	"sync"
	"time"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

const frame = 16 * time.Millisecond

// testViewport is an 80x24 terminal at the default cell size.
var testViewport = core.Viewport{Width: 800, Height: 480}

// quietConfig never spawns anything on its own, so tests can script hazards.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	never := config.Curve{BaseMs: 3.6e6, Ratio: 1, FloorMs: 3.6e6, CeilingMs: 3.6e6}
	cfg.Difficulty.SpawnInterval = never
	cfg.Difficulty.FlyerCooldown = never
	cfg.Hazards.Flyer.UnlockScore = 1 << 30
	cfg.Timing.StartDelayMs = 0
	return cfg
}

// clock is a fake frame clock.
type clock struct {
	now time.Duration
}

// tick advances the fake clock by one frame and ticks the session.
func (c *clock) tick(s *Session) Snapshot {
	c.now += frame
	return s.Tick(c.now)
}

// run ticks the session n times.
func (c *clock) run(s *Session, n int) Snapshot {
	var snap Snapshot
	for i := 0; i < n; i++ {
		snap = c.tick(s)
	}
	return snap
}

// overhead returns a box that moves along the play area above the player.
func overhead(x float64) core.Box {
	return core.NewBox(x, 0, 30, 10)
}

// recordingSink remembers every submitted best score.
type recordingSink struct {
	scores []int
}

func (r *recordingSink) Submit(score int) {
	r.scores = append(r.scores, score)
}

// memStore is a BestScoreStore kept in memory with optional failures.
type memStore struct {
	mu      sync.Mutex
	best    int
	has     bool
	saves   []int
	loadErr error
	saveErr error
	gate    chan struct{} // When set, each save waits for a receive
}

func (m *memStore) LoadBestScore() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return 0, false, m.loadErr
	}
	return m.best, m.has, nil
}

func (m *memStore) SaveBestScore(score int) error {
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	m.has = true
	m.saves = append(m.saves, score)
	return nil
}

func (m *memStore) saved() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.saves...)
}
