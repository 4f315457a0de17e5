// Package config provides YAML-based game configuration loading for the
// asteroids game.
package config

import "fmt"

// AsteroidsConfig contains all tuning parameters for the game.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Missile    MissileConfig    `yaml:"missile"`
	Rocks      RockConfig       `yaml:"rocks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
}

// WorldConfig defines the simulation coordinate space. The terminal renderer
// projects world units onto screen cells, so the simulation is independent of
// terminal size.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Inset for first rock placement attempt
}

// ShipConfig defines ship handling parameters.
type ShipConfig struct {
	RotateStep     float64 `yaml:"rotate_step"`      // Degrees per tick while a rotate key is held
	MaxSpeed       float64 `yaml:"max_speed"`        // Thrust speed cap
	SpriteSize     float64 `yaml:"sprite_size"`      // Square sprite extent in world units
	FireIntervalMS int     `yaml:"fire_interval_ms"` // Minimum delay between missiles
}

// MissileConfig defines missile parameters.
type MissileConfig struct {
	Speed float64 `yaml:"speed"`
}

// SizeValues holds one tuning value per rock size category.
type SizeValues struct {
	Big    float64 `yaml:"big"`
	Normal float64 `yaml:"normal"`
	Small  float64 `yaml:"small"`
}

// RockConfig defines rock behavior and the per-size thresholds.
type RockConfig struct {
	Speed          float64    `yaml:"speed"`
	StartCount     int        `yaml:"start_count"`     // Big rocks spawned per fresh life
	PopulationCap  int        `yaml:"population_cap"`  // Respawn/replacement cap
	HardCap        int        `yaml:"hard_cap"`        // Difficulty-ramp spawn cap
	HitThresholds  SizeValues `yaml:"hit_thresholds"`  // Missile-to-rock kill distance
	DeathDistances SizeValues `yaml:"death_distances"` // Rock-to-ship death distance
	Scores         SizeValues `yaml:"scores"`          // Points per destroyed rock
}

// DifficultyConfig defines the survival-based difficulty ramp.
type DifficultyConfig struct {
	RampIntervalSecs    int     `yaml:"ramp_interval_secs"`    // Survival time between ramps
	InitialRockDistance float64 `yaml:"initial_rock_distance"` // Spawn exclusion radius at start
	RockDistanceFloor   float64 `yaml:"rock_distance_floor"`   // Exclusion radius never shrinks below this
	RockDistanceStep    float64 `yaml:"rock_distance_step"`    // Shrink per ramp
}

// SessionConfig defines session lifecycle parameters.
type SessionConfig struct {
	Lives          int     `yaml:"lives"`
	ExtraDelaySecs float64 `yaml:"extra_delay_secs"` // Added to audio cue length for transition timers
}

// Validate checks that the configuration is internally usable.
func (c AsteroidsConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Ship.MaxSpeed <= 0 {
		return fmt.Errorf("config: ship max_speed must be positive, got %g", c.Ship.MaxSpeed)
	}
	if c.Missile.Speed <= 0 {
		return fmt.Errorf("config: missile speed must be positive, got %g", c.Missile.Speed)
	}
	if c.Rocks.StartCount <= 0 {
		return fmt.Errorf("config: rocks start_count must be positive, got %d", c.Rocks.StartCount)
	}
	if c.Session.Lives <= 0 {
		return fmt.Errorf("config: session lives must be positive, got %d", c.Session.Lives)
	}
	for _, v := range []struct {
		name string
		sv   SizeValues
	}{
		{"hit_thresholds", c.Rocks.HitThresholds},
		{"death_distances", c.Rocks.DeathDistances},
		{"scores", c.Rocks.Scores},
	} {
		if v.sv.Big <= 0 || v.sv.Normal <= 0 || v.sv.Small <= 0 {
			return fmt.Errorf("config: rocks %s must all be positive, got %+v", v.name, v.sv)
		}
	}
	return nil
}
