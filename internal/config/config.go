// Package config provides YAML-based runner configuration loading and
// the difficulty curves that turn score into pacing.
package config

// RunnerConfig contains all configuration for the runner.
// Distances are world pixels, durations are milliseconds.
type RunnerConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Jump       JumpConfig       `yaml:"jump"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Collision  CollisionConfig  `yaml:"collision"`
	Timing     TimingConfig     `yaml:"timing"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's hitbox and horizontal motion.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom of the viewport to the ground line
	MaxSpeed     float64 `yaml:"max_speed"`     // px/s
	Acceleration float64 `yaml:"acceleration"`  // px/s² while a direction is held
	Friction     float64 `yaml:"friction"`      // px/s² when released
}

// JumpConfig defines the scripted jump arc.
type JumpConfig struct {
	Height     float64 `yaml:"height"`
	DurationMs float64 `yaml:"duration_ms"` // Rise plus fall; a new jump is refused until it completes
}

// Size is a hazard footprint.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HazardsConfig defines hazard geometry.
type HazardsConfig struct {
	RockSizes []Size      `yaml:"rock_sizes"`
	Flyer     FlyerConfig `yaml:"flyer"`
}

// FlyerConfig defines the single-pass aerial hazard (the dragon).
type FlyerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Altitude       float64 `yaml:"altitude"`        // Gap between the ground line and the flyer's bottom edge
	UnlockScore    int     `yaml:"unlock_score"`    // Score at which flyers start appearing
	Rate           float64 `yaml:"rate"`            // Expected flyers per second once eligible; <= 0 spawns as soon as allowed
	DurationFactor float64 `yaml:"duration_factor"` // Multiplier on the drawn crossing duration
}

// SpawnConfig defines fairness rules for the spawn scheduler.
type SpawnConfig struct {
	// EntryZone is the fraction of the play width, measured from the spawn
	// edge, in which an active flyer blocks new ground hazards.
	EntryZone float64 `yaml:"entry_zone"`
}

// CollisionConfig defines hitbox forgiveness.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"` // Inset applied to both boxes before the overlap test
}

// TimingConfig defines frame clock handling and transient timers.
type TimingConfig struct {
	MaxDeltaMs   float64 `yaml:"max_delta_ms"`
	StartDelayMs float64 `yaml:"start_delay_ms"`
	ScorePulseMs float64 `yaml:"score_pulse_ms"`
}

// RenderConfig maps world pixels onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled       bool  `yaml:"enabled"`
	StartLevel    int   `yaml:"start_level"`
	Step          int   `yaml:"step"` // Points per difficulty level
	SpawnInterval Curve `yaml:"spawn_interval"`
	CrossMin      Curve `yaml:"cross_min"`
	CrossMax      Curve `yaml:"cross_max"`
	MinHazardGap  Curve `yaml:"min_hazard_gap"`
	FlyerCooldown Curve `yaml:"flyer_cooldown"`
}

// Curve is an exponential decay base * ratio^level clamped to [floor, ceiling].
type Curve struct {
	BaseMs    float64 `yaml:"base_ms"`
	Ratio     float64 `yaml:"ratio"`
	FloorMs   float64 `yaml:"floor_ms"`
	CeilingMs float64 `yaml:"ceiling_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting difficulty level for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ParsePreset converts a CLI value into a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
