package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			StartX:       100,
			Width:        30,
			Height:       60,
			GroundOffset: 40,
			MaxSpeed:     300,
			Acceleration: 1200,
			Friction:     1600,
		},
		Jump: JumpConfig{
			Height:     120,
			DurationMs: 800,
		},
		Hazards: HazardsConfig{
			RockSizes: []Size{
				{Width: 20, Height: 40},
				{Width: 30, Height: 40},
				{Width: 30, Height: 60},
			},
			Flyer: FlyerConfig{
				Width:          50,
				Height:         40,
				Altitude:       80,
				UnlockScore:    10,
				Rate:           0.5,
				DurationFactor: 0.8,
			},
		},
		Spawn: SpawnConfig{
			EntryZone: 0.5,
		},
		Collision: CollisionConfig{
			Margin: 10,
		},
		Timing: TimingConfig{
			MaxDeltaMs:   32,
			StartDelayMs: 300,
			ScorePulseMs: 300,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartLevel:    0,
			Step:          10,
			SpawnInterval: Curve{BaseMs: 2000, Ratio: 0.92, FloorMs: 1000, CeilingMs: 2000},
			CrossMin:      Curve{BaseMs: 3200, Ratio: 0.93, FloorMs: 1400, CeilingMs: 3200},
			CrossMax:      Curve{BaseMs: 4000, Ratio: 0.93, FloorMs: 1800, CeilingMs: 4000},
			MinHazardGap:  Curve{BaseMs: 1200, Ratio: 0.95, FloorMs: 700, CeilingMs: 1200},
			FlyerCooldown: Curve{BaseMs: 6000, Ratio: 0.90, FloorMs: 2500, CeilingMs: 6000},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
