package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadDetector loads the detector runner configuration.
// Search order: customPath -> ~/.detector/configs/detector.yaml -> ./configs/detector.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadDetector(customPath string) (DetectorConfig, error) {
	cfg := DefaultDetectorConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("detector.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultDetectorConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "detector.yaml")); err == nil {
		candidate := DefaultDetectorConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDetectorYAML, &cfg); err != nil {
		return DefaultDetectorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".detector", "configs", filename)
}

// ApplyPreset scales the per-tick speed increase for a difficulty preset.
func ApplyPreset(cfg *DetectorConfig, preset DifficultyPreset) {
	cfg.Speed.Increase *= IncreaseFactorForPreset(preset)
}

// ApplyEnv overrides audio settings from the environment.
// DETECTOR_AUDIO_ENABLED takes a bool, DETECTOR_VOLUME a percentage (0-100).
// Unparseable values are ignored.
func ApplyEnv(cfg *DetectorConfig) {
	if enabled := os.Getenv("DETECTOR_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	if volume := os.Getenv("DETECTOR_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}
}

// Validate checks that the configuration describes a playable game.
func (c DetectorConfig) Validate() error {
	m := c.Collision.Margin

	switch {
	case c.Physics.Gravity <= 0:
		return invalid("physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return invalid("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	case m < 0:
		return invalid("collision.margin must not be negative, got %v", m)
	case c.Player.Width <= 2*m || c.Player.Height <= 2*m:
		return invalid("player must be larger than twice the collision margin")
	case c.Items.Width <= 2*m || c.Items.Height <= 2*m:
		return invalid("items must be larger than twice the collision margin")
	case c.Items.BonusChance < 0 || c.Items.BonusChance > 1:
		return invalid("items.bonus_chance must be within [0, 1], got %v", c.Items.BonusChance)
	case c.Items.HighLaneChance < 0 || c.Items.HighLaneChance > 1:
		return invalid("items.high_lane_chance must be within [0, 1], got %v", c.Items.HighLaneChance)
	case c.Spawn.BaseInterval <= 0:
		return invalid("spawn.base_interval must be positive, got %v", c.Spawn.BaseInterval)
	case c.Spawn.MinGap < 0 || c.Spawn.MaxExtraGap < 0:
		return invalid("spawn gaps must not be negative")
	case c.Speed.Initial <= 0:
		return invalid("speed.initial must be positive, got %v", c.Speed.Initial)
	case c.Speed.Max != 0 && c.Speed.Max < c.Speed.Initial:
		return invalid("speed.max must be 0 or at least speed.initial")
	case c.Lives.Initial <= 0 || c.Lives.Initial > c.Lives.Max:
		return invalid("lives.initial must be within [1, lives.max]")
	case c.Viewport.MaxWidth <= 0:
		return invalid("viewport.max_width must be positive, got %v", c.Viewport.MaxWidth)
	case c.Viewport.GroundRatio <= 0 || c.Viewport.GroundRatio > 1:
		return invalid("viewport.ground_ratio must be within (0, 1], got %v", c.Viewport.GroundRatio)
	case c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0:
		return invalid("viewport cell size must be positive")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
