// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PowerUpConfig contains all tuning for the Power-Up game.
type PowerUpConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Level    LevelConfig    `yaml:"level"`
}

// FieldConfig defines the logical playfield all positions are expressed in.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player movement and starting stats.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the player's top edge
	Speed        float64 `yaml:"speed"`
	BoostSpeed   float64 `yaml:"boost_speed"`
	FollowGain   float64 `yaml:"follow_gain"` // Pointer spring strength per second
	StartHealth  int     `yaml:"start_health"`
	ScorePerSec  float64 `yaml:"score_per_second"`
}

// EnemyConfig defines enemy spawning, movement and level scaling.
type EnemyConfig struct {
	Size            float64 `yaml:"size"`
	BaseSpawnDelay  float64 `yaml:"base_spawn_delay"`
	SpawnDelayStep  float64 `yaml:"spawn_delay_step"` // Subtracted per level
	MinSpawnDelay   float64 `yaml:"min_spawn_delay"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step"` // Added per level
	LateralSpeed    float64 `yaml:"lateral_speed"`
	Damage          int     `yaml:"damage"`
	ZigzagFromLevel int     `yaml:"zigzag_from_level"`
	HomingFromLevel int     `yaml:"homing_from_level"`
}

// PowerUpsConfig defines power-up spawning and effects.
type PowerUpsConfig struct {
	Size           float64 `yaml:"size"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	FallSpeed      float64 `yaml:"fall_speed"`
	HealthBonus    int     `yaml:"health_bonus"`
	EffectDuration float64 `yaml:"effect_duration"`
}

// LevelConfig defines how the level is derived from score.
type LevelConfig struct {
	StartLevel     int     `yaml:"start_level"`
	PointsPerLevel float64 `yaml:"points_per_level"`
	Progression    bool    `yaml:"progression"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty values
// return the empty preset, which keeps the loaded config as is.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
