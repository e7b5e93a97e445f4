package config

import (
	_ "embed"
)

//go:embed defaults/detector.yaml
var defaultDetectorYAML []byte

// DefaultDetectorConfig returns the built-in configuration.
// Must stay in sync with defaults/detector.yaml.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Physics: PhysicsConfig{
			Gravity:     1.0,
			JumpImpulse: -16,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  50,
			Height: 80,
		},
		Items: ItemsConfig{
			Width:          40,
			Height:         40,
			LowLaneLift:    5,
			HighLaneOffset: 120,
			BonusChance:    0.5,
			HighLaneChance: 0.5,
		},
		Spawn: SpawnConfig{
			BaseInterval: 80,
			MinGap:       100,
			MaxExtraGap:  80,
		},
		Collision: CollisionConfig{
			Margin: 10,
		},
		Speed: SpeedConfig{
			Initial:  9,
			Increase: 0.003,
			Max:      0,
		},
		Lives: LivesConfig{
			Initial: 3,
			Max:     3,
		},
		Viewport: ViewportConfig{
			MaxWidth:    800,
			GroundRatio: 0.8,
			CellWidth:   10,
			CellHeight:  20,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDetectorYAML
}
