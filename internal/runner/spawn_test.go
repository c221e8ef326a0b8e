package runner

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

func stepContext(now time.Duration, score int, p config.Pacing) SpawnContext {
	return SpawnContext{
		Now:     now,
		DT:      frame.Seconds(),
		Score:   score,
		Pacing:  p,
		Width:   testViewport.Width,
		GroundY: 440,
	}
}

func TestAtMostOneFlyer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Hazards.Flyer.UnlockScore = 0
	cfg.Hazards.Flyer.Rate = 0

	pacing := config.Pacing{
		SpawnInterval:    300 * time.Millisecond,
		CrossDurationMin: time.Second,
		CrossDurationMax: 2 * time.Second,
		MinHazardGap:     0,
		FlyerCooldown:    0,
	}

	s := NewSpawnScheduler(rand.New(rand.NewSource(7)), cfg)
	field := NewHazardField()
	flyers := 0

	var now time.Duration
	for i := 0; i < 10000; i++ {
		now += frame
		for _, h := range s.Step(stepContext(now, 50, pacing), field) {
			if h.Kind == KindFlyer {
				flyers++
			}
		}
		field.Advance(frame.Seconds())
		field.Sweep()

		if n := field.Count(KindFlyer); n > 1 {
			t.Fatalf("Tick %d: %d flyers active", i, n)
		}
	}

	if flyers < 2 {
		t.Errorf("Expected flyers to keep spawning, got %d", flyers)
	}
}

func TestFlyerLockedBelowUnlockScore(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Hazards.Flyer.Rate = 0
	pacing := config.PacingForLevel(0, cfg.Difficulty)

	s := NewSpawnScheduler(rand.New(rand.NewSource(1)), cfg)
	field := NewHazardField()

	var now time.Duration
	for i := 0; i < 2000; i++ {
		now += frame
		s.Step(stepContext(now, cfg.Hazards.Flyer.UnlockScore-1, pacing), field)
		field.Advance(frame.Seconds())
		field.Sweep()
		if field.Count(KindFlyer) != 0 {
			t.Fatalf("Flyer spawned below unlock score at tick %d", i)
		}
	}
}

func TestRockDeniedWhileFlyerInEntryZone(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Hazards.Flyer.UnlockScore = 1 << 30
	pacing := config.Pacing{
		SpawnInterval:    0,
		CrossDurationMin: time.Second,
		CrossDurationMax: time.Second,
	}

	s := NewSpawnScheduler(rand.New(rand.NewSource(1)), cfg)
	field := NewHazardField()
	flyer := field.Add(KindFlyer, core.NewBox(720, 300, 50, 40), 0, 0)

	if got := s.Step(stepContext(time.Second, 0, pacing), field); len(got) != 0 {
		t.Fatalf("Rock spawned while flyer at x=%v is in the entry zone", flyer.Box.Left)
	}

	flyer.Box = core.NewBox(300, 300, 50, 40)
	got := s.Step(stepContext(2*time.Second, 0, pacing), field)
	if len(got) != 1 || got[0].Kind != KindRock {
		t.Fatalf("Expected one rock once the flyer left the entry zone, got %d hazards", len(got))
	}
}

func TestGapSeparatesRockAndFlyer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Hazards.Flyer.UnlockScore = 0
	cfg.Hazards.Flyer.Rate = 0
	pacing := config.Pacing{
		SpawnInterval:    0,
		CrossDurationMin: time.Second,
		CrossDurationMax: time.Second,
		MinHazardGap:     time.Second,
		FlyerCooldown:    0,
	}

	s := NewSpawnScheduler(rand.New(rand.NewSource(1)), cfg)
	s.Reset(0)
	field := NewHazardField()

	got := s.Step(stepContext(2*time.Second, 20, pacing), field)
	if len(got) != 1 || got[0].Kind != KindRock {
		t.Fatalf("Expected only a rock on a tick where both are eligible, got %d", len(got))
	}

	// Rocks keep the gap clock fresh, so no flyer can slip in right after one
	got = s.Step(stepContext(2*time.Second+500*time.Millisecond, 20, config.Pacing{
		SpawnInterval:    time.Hour,
		CrossDurationMin: time.Second,
		CrossDurationMax: time.Second,
		MinHazardGap:     time.Second,
	}), field)
	if len(got) != 0 {
		t.Fatalf("Flyer spawned inside the hazard gap")
	}
}

func TestSpawnGeometry(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Hazards.Flyer.UnlockScore = 0
	cfg.Hazards.Flyer.Rate = 0
	pacing := config.Pacing{
		SpawnInterval:    time.Hour,
		CrossDurationMin: 2 * time.Second,
		CrossDurationMax: 2 * time.Second,
	}

	s := NewSpawnScheduler(rand.New(rand.NewSource(3)), cfg)
	field := NewHazardField()
	ctx := stepContext(time.Second, 10, pacing)

	rock := s.spawnRock(ctx, field)
	if rock.Box.Left != ctx.Width {
		t.Errorf("Rock should enter at the spawn edge, got x=%v", rock.Box.Left)
	}
	if rock.Box.Bottom != ctx.GroundY {
		t.Errorf("Rock should sit on the ground, bottom=%v", rock.Box.Bottom)
	}
	if want := (ctx.Width + rock.Box.Width()) / 2; rock.Speed != want {
		t.Errorf("Rock speed: expected %v, got %v", want, rock.Speed)
	}

	flyer := s.spawnFlyer(ctx, field)
	fc := cfg.Hazards.Flyer
	if want := ctx.GroundY - fc.Altitude; flyer.Box.Bottom != want {
		t.Errorf("Flyer bottom: expected %v, got %v", want, flyer.Box.Bottom)
	}
	if flyer.Speed <= rock.Speed {
		t.Errorf("Flyer should cross faster than rocks: %v <= %v", flyer.Speed, rock.Speed)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	pacing := config.PacingForLevel(2, cfg.Difficulty)

	run := func() []core.Box {
		s := NewSpawnScheduler(rand.New(rand.NewSource(99)), cfg)
		field := NewHazardField()
		var boxes []core.Box
		var now time.Duration
		for i := 0; i < 3000; i++ {
			now += frame
			for _, h := range s.Step(stepContext(now, 30, pacing), field) {
				boxes = append(boxes, h.Box)
			}
			field.Advance(frame.Seconds())
			field.Sweep()
		}
		return boxes
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("Spawn counts differ or empty: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Spawn %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestHazardFieldSweep(t *testing.T) {
	field := NewHazardField()
	gone := field.Add(KindRock, core.NewBox(-40, 0, 30, 10), 0, 0)
	edge := field.Add(KindRock, core.NewBox(-30, 0, 30, 10), 0, 0)
	kept := field.Add(KindRock, core.NewBox(-29, 0, 30, 10), 0, 0)

	if n := field.Sweep(); n != 2 {
		t.Fatalf("Expected 2 hazards swept, got %d", n)
	}
	if !gone.removed || !edge.removed || kept.removed {
		t.Error("Only hazards fully past the trailing edge should be removed")
	}
	if field.Len() != 1 || field.Active()[0] != kept {
		t.Error("Remaining hazard should be the one still on screen")
	}

	field.Shift(5)
	if kept.Box.Top != 5 {
		t.Errorf("Shift should move hazards vertically, top=%v", kept.Box.Top)
	}

	field.Clear()
	if field.Len() != 0 || !kept.removed {
		t.Error("Clear should remove every hazard")
	}
}

func TestHazardSwept(t *testing.T) {
	field := NewHazardField()
	h := field.Add(KindRock, core.NewBox(100, 0, 20, 40), 1000, 0)

	if got := h.Swept(0); got != h.Box {
		t.Errorf("Unmoved hazard should sweep only its own box, got %+v", got)
	}

	field.Advance(0.03) // 30 px
	tests := []struct {
		name string
		dx   float64
		want core.Box
	}{
		{"still observer", 0, core.Box{Left: 70, Right: 120, Top: 0, Bottom: 40}},
		{"observer running toward it", 10, core.Box{Left: 70, Right: 130, Top: 0, Bottom: 40}},
		{"observer running away", -10, core.Box{Left: 70, Right: 110, Top: 0, Bottom: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Swept(tt.dx); got != tt.want {
				t.Errorf("Swept(%v) = %+v, want %+v", tt.dx, got, tt.want)
			}
		})
	}

	field.Shift(5)
	if got := h.Swept(0); got.Top != 5 || got.Bottom != 45 {
		t.Errorf("Shift should move the swept area too, got %+v", got)
	}
}
