package config

import (
	"math"
	"time"
)

// Pacing is the set of timing parameters in force at one difficulty level.
// Every field only tightens (or holds) as the level rises.
type Pacing struct {
	Level            int
	SpawnInterval    time.Duration // Minimum time between ground hazards
	CrossDurationMin time.Duration // Fastest hazard traversal of the play area
	CrossDurationMax time.Duration // Slowest hazard traversal of the play area
	MinHazardGap     time.Duration // Separation between any hazard and a new flyer
	FlyerCooldown    time.Duration // Minimum time between flyers
}

// Level returns the difficulty level reached at the given score.
func Level(score int, d DifficultyConfig) int {
	if !d.Enabled {
		return d.StartLevel
	}
	step := d.Step
	if step <= 0 {
		step = 10 // Prevent division by zero
	}
	if score < 0 {
		score = 0
	}
	return d.StartLevel + score/step
}

// ComputePacing maps a score to its pacing configuration.
// It is a pure function of the score and the curves.
func ComputePacing(score int, d DifficultyConfig) Pacing {
	return PacingForLevel(Level(score, d), d)
}

// PacingForLevel evaluates every curve at the given level.
func PacingForLevel(level int, d DifficultyConfig) Pacing {
	p := Pacing{
		Level:            level,
		SpawnInterval:    d.SpawnInterval.At(level),
		CrossDurationMin: d.CrossMin.At(level),
		CrossDurationMax: d.CrossMax.At(level),
		MinHazardGap:     d.MinHazardGap.At(level),
		FlyerCooldown:    d.FlyerCooldown.At(level),
	}
	if p.CrossDurationMax < p.CrossDurationMin {
		p.CrossDurationMax = p.CrossDurationMin
	}
	return p
}

// Value returns the curve value in milliseconds at the given level.
func (c Curve) Value(level int) float64 {
	if level < 0 {
		level = 0
	}
	v := c.BaseMs * math.Pow(c.Ratio, float64(level))
	return math.Max(c.FloorMs, math.Min(c.CeilingMs, v))
}

// At returns the curve value at the given level as a duration.
func (c Curve) At(level int) time.Duration {
	return Millis(c.Value(level))
}

// Millis converts fractional milliseconds into a duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
