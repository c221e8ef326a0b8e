package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.dinodash/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Only an explicit customPath can fail; the implicit locations fall through
// to the next candidate when they are missing or malformed.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinodash", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	}
}

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if c.Player.MaxSpeed < 0 || c.Player.Acceleration < 0 || c.Player.Friction < 0 {
		return fmt.Errorf("%w: player motion parameters must not be negative", ErrInvalid)
	}
	if c.Jump.DurationMs <= 0 {
		return fmt.Errorf("%w: jump.duration_ms must be positive", ErrInvalid)
	}
	if len(c.Hazards.RockSizes) == 0 {
		return fmt.Errorf("%w: hazards.rock_sizes must not be empty", ErrInvalid)
	}
	for i, s := range c.Hazards.RockSizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: hazards.rock_sizes[%d] must be positive", ErrInvalid, i)
		}
	}
	if c.Hazards.Flyer.Width <= 0 || c.Hazards.Flyer.Height <= 0 {
		return fmt.Errorf("%w: flyer size must be positive", ErrInvalid)
	}
	if c.Hazards.Flyer.DurationFactor <= 0 {
		return fmt.Errorf("%w: flyer.duration_factor must be positive", ErrInvalid)
	}
	if c.Spawn.EntryZone < 0 || c.Spawn.EntryZone > 1 {
		return fmt.Errorf("%w: spawn.entry_zone must be within [0, 1]", ErrInvalid)
	}
	if c.Timing.MaxDeltaMs <= 0 {
		return fmt.Errorf("%w: timing.max_delta_ms must be positive", ErrInvalid)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalid)
	}
	return c.Difficulty.Validate()
}

// Validate checks the difficulty curves.
func (d DifficultyConfig) Validate() error {
	if d.Step <= 0 {
		return fmt.Errorf("%w: difficulty.step must be positive", ErrInvalid)
	}
	if d.StartLevel < 0 {
		return fmt.Errorf("%w: difficulty.start_level must not be negative", ErrInvalid)
	}
	curves := []struct {
		name  string
		curve Curve
	}{
		{"spawn_interval", d.SpawnInterval},
		{"cross_min", d.CrossMin},
		{"cross_max", d.CrossMax},
		{"min_hazard_gap", d.MinHazardGap},
		{"flyer_cooldown", d.FlyerCooldown},
	}
	for _, c := range curves {
		if err := c.curve.validate(); err != nil {
			return fmt.Errorf("%w: difficulty.%s: %s", ErrInvalid, c.name, err.Error())
		}
	}
	if d.CrossMin.BaseMs > d.CrossMax.BaseMs {
		return fmt.Errorf("%w: difficulty.cross_min starts above cross_max", ErrInvalid)
	}
	return nil
}

func (c Curve) validate() error {
	switch {
	case c.BaseMs < 0 || c.FloorMs < 0:
		return errors.New("durations must not be negative")
	case c.Ratio <= 0 || c.Ratio > 1:
		return errors.New("ratio must be within (0, 1]")
	case c.FloorMs > c.CeilingMs:
		return errors.New("floor_ms exceeds ceiling_ms")
	}
	return nil
}
