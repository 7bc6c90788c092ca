package config

import (
	_ "embed"
)

//go:embed defaults/powerup.yaml
var defaultPowerUpYAML []byte

// DefaultPowerUpConfig returns the built-in Power-Up configuration.
// It matches defaults/powerup.yaml and is the fallback when no YAML parses.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:         50,
			BottomOffset: 100,
			Speed:        350,
			BoostSpeed:   550,
			FollowGain:   6,
			StartHealth:  10,
			ScorePerSec:  10,
		},
		Enemies: EnemyConfig{
			Size:            50,
			BaseSpawnDelay:  0.6,
			SpawnDelayStep:  0.05,
			MinSpawnDelay:   0.15,
			BaseSpeed:       260,
			SpeedStep:       20,
			LateralSpeed:    120,
			Damage:          10,
			ZigzagFromLevel: 3,
			HomingFromLevel: 6,
		},
		PowerUps: PowerUpsConfig{
			Size:           40,
			SpawnInterval:  4,
			FallSpeed:      200,
			HealthBonus:    50,
			EffectDuration: 5,
		},
		Level: LevelConfig{
			StartLevel:     1,
			PointsPerLevel: 500,
			Progression:    true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "powerup":
		return defaultPowerUpYAML
	default:
		return nil
	}
}
