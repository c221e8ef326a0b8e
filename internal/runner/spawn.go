package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// SpawnScheduler decides each tick whether a rock or a flyer enters the field.
// A denied attempt is simply tried again on the next tick.
type SpawnScheduler struct {
	rng       *rand.Rand
	hazards   config.HazardsConfig
	entryZone float64

	lastGround time.Duration // Clock time of the last rock
	lastFlyer  time.Duration // Clock time of the last flyer
	lastAny    time.Duration // Clock time of the last hazard of either kind
}

// NewSpawnScheduler creates a scheduler drawing all randomness from rng.
func NewSpawnScheduler(rng *rand.Rand, cfg config.RunnerConfig) *SpawnScheduler {
	return &SpawnScheduler{
		rng:       rng,
		hazards:   cfg.Hazards,
		entryZone: cfg.Spawn.EntryZone,
	}
}

// Reset restarts all spawn clocks at the given time.
func (s *SpawnScheduler) Reset(now time.Duration) {
	s.lastGround = now
	s.lastFlyer = now
	s.lastAny = now
}

// SpawnContext is the read-only view of the run the scheduler decides on.
type SpawnContext struct {
	Now     time.Duration
	DT      float64 // Seconds since the previous tick
	Score   int
	Pacing  config.Pacing
	Width   float64 // Play area width; hazards enter at this x
	GroundY float64
}

// Step runs one scheduling decision and returns the hazards it spawned.
// Rocks are considered before flyers, so the gap rule keeps both from
// appearing on the same tick.
func (s *SpawnScheduler) Step(ctx SpawnContext, field *HazardField) []*Hazard {
	var spawned []*Hazard

	if s.groundReady(ctx, field) {
		spawned = append(spawned, s.spawnRock(ctx, field))
	}
	if s.flyerReady(ctx, field) {
		spawned = append(spawned, s.spawnFlyer(ctx, field))
	}

	return spawned
}

// groundReady reports whether a rock may spawn now.
func (s *SpawnScheduler) groundReady(ctx SpawnContext, field *HazardField) bool {
	if ctx.Now-s.lastGround < ctx.Pacing.SpawnInterval {
		return false
	}
	return !s.flyerInEntryZone(ctx, field)
}

// flyerInEntryZone reports whether the active flyer is still close enough
// to the spawn edge that a new rock would crowd it.
func (s *SpawnScheduler) flyerInEntryZone(ctx SpawnContext, field *HazardField) bool {
	f := field.ActiveFlyer()
	if f == nil {
		return false
	}
	return f.Box.Left >= ctx.Width*(1-s.entryZone)
}

// flyerReady reports whether a flyer may spawn now.
func (s *SpawnScheduler) flyerReady(ctx SpawnContext, field *HazardField) bool {
	fc := s.hazards.Flyer
	switch {
	case ctx.Score < fc.UnlockScore:
		return false
	case field.ActiveFlyer() != nil:
		return false
	case ctx.Now-s.lastFlyer < ctx.Pacing.FlyerCooldown:
		return false
	case ctx.Now-s.lastAny < ctx.Pacing.MinHazardGap:
		return false
	}
	if fc.Rate <= 0 {
		return true
	}
	return s.rng.Float64() < fc.Rate*ctx.DT
}

// spawnRock places a randomly sized rock at the spawn edge.
func (s *SpawnScheduler) spawnRock(ctx SpawnContext, field *HazardField) *Hazard {
	size := s.hazards.RockSizes[s.rng.Intn(len(s.hazards.RockSizes))]
	box := core.NewBox(ctx.Width, ctx.GroundY-size.Height, size.Width, size.Height)
	duration := s.crossDuration(ctx.Pacing)

	s.lastGround = ctx.Now
	s.lastAny = ctx.Now
	return field.Add(KindRock, box, speedFor(ctx.Width, size.Width, duration), ctx.Now)
}

// spawnFlyer places the flyer at the spawn edge at its cruising altitude.
func (s *SpawnScheduler) spawnFlyer(ctx SpawnContext, field *HazardField) *Hazard {
	fc := s.hazards.Flyer
	bottom := ctx.GroundY - fc.Altitude
	box := core.NewBox(ctx.Width, bottom-fc.Height, fc.Width, fc.Height)
	duration := time.Duration(float64(s.crossDuration(ctx.Pacing)) * fc.DurationFactor)

	s.lastFlyer = ctx.Now
	s.lastAny = ctx.Now
	return field.Add(KindFlyer, box, speedFor(ctx.Width, fc.Width, duration), ctx.Now)
}

// crossDuration draws a traversal time uniformly from the pacing range.
func (s *SpawnScheduler) crossDuration(p config.Pacing) time.Duration {
	lo, hi := p.CrossDurationMin, p.CrossDurationMax
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Float64()*float64(hi-lo))
}

// speedFor returns the speed that carries a hazard of the given width from
// the spawn edge fully past the trailing edge in d.
func speedFor(width, hazardWidth float64, d time.Duration) float64 {
	secs := d.Seconds()
	if secs <= 0 {
		secs = 0.001
	}
	return (width + hazardWidth) / secs
}
