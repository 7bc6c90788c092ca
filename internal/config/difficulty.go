package config

import "math"

// DifficultyManager derives the integer level from the running score.
type DifficultyManager struct {
	cfg LevelConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg LevelConfig) *DifficultyManager {
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the level grows with score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression && d.cfg.PointsPerLevel > 0
}

// Level returns start_level + floor(score / points_per_level).
// With progression disabled the start level is returned unchanged.
func (d *DifficultyManager) Level(score float64) int {
	if !d.IsEnabled() || score <= 0 {
		return d.cfg.StartLevel
	}
	return d.cfg.StartLevel + int(math.Floor(score/d.cfg.PointsPerLevel))
}

// SpawnDelay returns the enemy spawn interval for a level.
func SpawnDelay(e EnemyConfig, level int) float64 {
	return math.Max(e.MinSpawnDelay, e.BaseSpawnDelay-float64(level)*e.SpawnDelayStep)
}

// EnemySpeed returns the enemy fall speed for a level.
func EnemySpeed(e EnemyConfig, level int) float64 {
	return e.BaseSpeed + float64(level)*e.SpeedStep
}
