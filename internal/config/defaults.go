package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default game configuration.
// Kept in sync with defaults/asteroids.yaml as the last-resort fallback.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			SpawnMargin: 200,
		},
		Ship: ShipConfig{
			RotateStep:     10,
			MaxSpeed:       20,
			SpriteSize:     64,
			FireIntervalMS: 150,
		},
		Missile: MissileConfig{
			Speed: 15,
		},
		Rocks: RockConfig{
			Speed:         4,
			StartCount:    4,
			PopulationCap: 10,
			HardCap:       15,
			HitThresholds: SizeValues{
				Big:    80,
				Normal: 55,
				Small:  30,
			},
			DeathDistances: SizeValues{
				Big:    90,
				Normal: 65,
				Small:  40,
			},
			Scores: SizeValues{
				Big:    20,
				Normal: 50,
				Small:  100,
			},
		},
		Difficulty: DifficultyConfig{
			RampIntervalSecs:    20,
			InitialRockDistance: 350,
			RockDistanceFloor:   200,
			RockDistanceStep:    50,
		},
		Session: SessionConfig{
			Lives:          3,
			ExtraDelaySecs: 1,
		},
	}
}
