// Package config provides YAML-based game configuration loading and
// the linear speed ramp for the detector runner.
package config

// DetectorConfig contains all configuration for the detector runner.
// Distances are world units; the terminal renderer maps them to cells
// through the viewport cell size.
type DetectorConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Items     ItemsConfig     `yaml:"items"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Speed     SpeedConfig     `yaml:"speed"`
	Lives     LivesConfig     `yaml:"lives"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
}

// PlayerConfig defines the detector's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ItemsConfig defines item geometry, lanes and type mix.
type ItemsConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	LowLaneLift    float64 `yaml:"low_lane_lift"`    // gap between a low item and the ground
	HighLaneOffset float64 `yaml:"high_lane_offset"` // distance from ground to a high item's top
	BonusChance    float64 `yaml:"bonus_chance"`
	HighLaneChance float64 `yaml:"high_lane_chance"`
}

// SpawnConfig defines spawn cadence and spacing.
type SpawnConfig struct {
	BaseInterval float64 `yaml:"base_interval"` // ticks; actual interval is 0.5x..1.5x
	MinGap       float64 `yaml:"min_gap"`
	MaxExtraGap  float64 `yaml:"max_extra_gap"`
}

// CollisionConfig defines the forgiving hitbox margin.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"`
}

// SpeedConfig defines the linear scroll speed ramp.
type SpeedConfig struct {
	Initial  float64 `yaml:"initial"`
	Increase float64 `yaml:"increase"` // added every tick while playing
	Max      float64 `yaml:"max"`      // 0 = uncapped
}

// LivesConfig defines starting and maximum lives.
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// ViewportConfig maps the terminal onto world units.
type ViewportConfig struct {
	MaxWidth    float64 `yaml:"max_width"`
	GroundRatio float64 `yaml:"ground_ratio"` // ground line as a fraction of height
	CellWidth   float64 `yaml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height"`
}

// AudioConfig defines the optional sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	BonusFile  string  `yaml:"bonus_file"`
	HazardFile string  `yaml:"hazard_file"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values
// report false so the config file's own ramp is used.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IncreaseFactorForPreset returns the multiplier applied to the per-tick
// speed increase for a preset.
func IncreaseFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyFixed:
		return 0
	default:
		return 1.0
	}
}
