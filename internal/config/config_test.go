package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids with no custom path should not fail: %v", err)
	}

	want := DefaultAsteroidsConfig()
	if loaded.World != want.World {
		t.Errorf("embedded world config = %+v, expected %+v", loaded.World, want.World)
	}
	if loaded.Rocks.HitThresholds != want.Rocks.HitThresholds {
		t.Errorf("embedded hit thresholds = %+v, expected %+v", loaded.Rocks.HitThresholds, want.Rocks.HitThresholds)
	}
	if loaded.Session != want.Session {
		t.Errorf("embedded session config = %+v, expected %+v", loaded.Session, want.Session)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
world:
  width: 400
  height: 300
  spawn_margin: 100
ship:
  rotate_step: 5
  max_speed: 10
  sprite_size: 32
  fire_interval_ms: 200
missile:
  speed: 8
rocks:
  speed: 2
  start_count: 2
  population_cap: 5
  hard_cap: 8
  hit_thresholds: {big: 40, normal: 28, small: 15}
  death_distances: {big: 45, normal: 33, small: 20}
  scores: {big: 20, normal: 50, small: 100}
difficulty:
  ramp_interval_secs: 10
  initial_rock_distance: 175
  rock_distance_floor: 100
  rock_distance_step: 25
session:
  lives: 2
  extra_delay_secs: 0.5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids(%s) failed: %v", path, err)
	}
	if cfg.World.Width != 400 {
		t.Errorf("world width = %g, expected 400", cfg.World.Width)
	}
	if cfg.Session.Lives != 2 {
		t.Errorf("lives = %d, expected 2", cfg.Session.Lives)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadAsteroids("/nonexistent/path.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing custom config path")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
	}{
		{"zero world width", func(c *AsteroidsConfig) { c.World.Width = 0 }},
		{"negative max speed", func(c *AsteroidsConfig) { c.Ship.MaxSpeed = -1 }},
		{"zero missile speed", func(c *AsteroidsConfig) { c.Missile.Speed = 0 }},
		{"zero start count", func(c *AsteroidsConfig) { c.Rocks.StartCount = 0 }},
		{"zero lives", func(c *AsteroidsConfig) { c.Session.Lives = 0 }},
		{"zero hit threshold", func(c *AsteroidsConfig) { c.Rocks.HitThresholds.Small = 0 }},
		{"negative death distance", func(c *AsteroidsConfig) { c.Rocks.DeathDistances.Big = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
