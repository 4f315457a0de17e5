// Package asteroids implements the classic rock-shooter arcade game.
// The ship rotates and thrusts through a bounded 800x600 world, fires
// missiles, and must avoid drifting rocks that split when destroyed.
package asteroids

import (
	"fmt"
	"math/rand"

	"github.com/akovrin/tui-asteroids/internal/config"
	"github.com/akovrin/tui-asteroids/internal/core"
)

// Size is a rock size category. It determines the rock's drawing extent,
// hit threshold, death distance, point value, and splitting behavior.
type Size string

const (
	SizeBig    Size = "big"
	SizeNormal Size = "normal"
	SizeSmall  Size = "small"
)

// valid reports whether s is one of the three known categories.
func (s Size) valid() bool {
	switch s {
	case SizeBig, SizeNormal, SizeSmall:
		return true
	}
	return false
}

// split returns the size of the fragments a destroyed rock of this size
// breaks into, or false for small rocks, which have no fragments.
func (s Size) split() (Size, bool) {
	switch s {
	case SizeBig:
		return SizeNormal, true
	case SizeNormal:
		return SizeSmall, true
	}
	return "", false
}

// Drawing radii per size, in world units.
const (
	bigRockRadius    = 40.0
	normalRockRadius = 27.0
	smallRockRadius  = 15.0
	missileRadius    = 4.0
)

// Entity is the capability shared by everything that drifts through the
// world: a position, a drawing/collision extent, and one tick of motion.
type Entity interface {
	Position() core.Vec2
	Radius() float64
	Move()
}

// Ship is the player-controlled spaceship. Its direction is always derived
// from Heading, never stored.
type Ship struct {
	Pos       core.Vec2
	Heading   float64 // Degrees in [0, 360)
	Speed     float64
	Thrusting bool

	maxSpeed   float64
	spriteSize float64
}

// newShip creates a ship at rest at the given position, heading up.
func newShip(pos core.Vec2, cfg config.ShipConfig) *Ship {
	return &Ship{
		Pos:        pos,
		maxSpeed:   cfg.MaxSpeed,
		spriteSize: cfg.SpriteSize,
	}
}

// Position returns the ship's center.
func (s *Ship) Position() core.Vec2 { return s.Pos }

// Radius returns the ship's drawing extent.
func (s *Ship) Radius() float64 { return s.spriteSize / 2 }

// Rotate adds delta degrees to the heading and re-normalizes into [0, 360).
func (s *Ship) Rotate(delta float64) {
	s.Heading = core.NormalizeHeading(s.Heading + delta)
}

// Thrust applies one tick of throttle. While on, speed ramps up by 1 per tick
// to the cap; while off, it decays by 1 per tick to zero, so the ship drifts
// to a stop rather than halting instantly.
func (s *Ship) Thrust(on bool) {
	s.Thrusting = on
	if on {
		if s.Speed < s.maxSpeed {
			s.Speed++
		}
		return
	}
	if s.Speed > 0 {
		s.Speed--
	}
}

// Move advances the ship by one tick along its heading.
func (s *Ship) Move() {
	s.Pos = s.Pos.Add(core.HeadingVec(s.Heading).Scale(s.Speed))
}

// Fire creates a missile launched from the tip of the ship. The spawn point
// is offset from the ship's center along its heading, by the full sprite
// extent on X and half of it on Y, so missiles appear in front of the ship
// rather than inside it.
func (s *Ship) Fire(speed float64) *Missile {
	dir := core.HeadingVec(s.Heading)
	spawn := s.Pos.Add(core.Vec2{X: dir.X * s.spriteSize, Y: dir.Y * s.spriteSize / 2})
	return &Missile{
		Pos:     spawn,
		Heading: s.Heading,
		Speed:   speed,
	}
}

// Missile is a projectile fired by the ship. It flies straight along the
// heading it was fired with, at a fixed speed.
type Missile struct {
	Pos     core.Vec2
	Heading float64
	Speed   float64
}

// Position returns the missile's center.
func (m *Missile) Position() core.Vec2 { return m.Pos }

// Radius returns the missile's drawing extent.
func (m *Missile) Radius() float64 { return missileRadius }

// Move advances the missile by one tick.
func (m *Missile) Move() {
	m.Pos = m.Pos.Add(core.HeadingVec(m.Heading).Scale(m.Speed))
}

// Rock is a drifting obstacle. Its direction is random, assigned once at
// creation, and never changes.
type Rock struct {
	Pos   core.Vec2
	Size  Size
	Dir   core.Vec2
	Speed float64
}

// NewRock creates a rock of the given size at the given position with a
// random drift direction, each component drawn from [-1, 1].
// An unrecognized size is a contract violation and returns an error.
func NewRock(pos core.Vec2, size Size, speed float64, rng *rand.Rand) (*Rock, error) {
	if !size.valid() {
		return nil, fmt.Errorf("asteroids: unknown rock size %q", size)
	}

	dx := rng.Float64()
	if rng.Intn(2) == 1 {
		dx = -dx
	}
	dy := rng.Float64()
	if rng.Intn(2) == 1 {
		dy = -dy
	}

	return &Rock{
		Pos:   pos,
		Size:  size,
		Dir:   core.Vec2{X: dx, Y: dy},
		Speed: speed,
	}, nil
}

// Position returns the rock's center.
func (r *Rock) Position() core.Vec2 { return r.Pos }

// Radius returns the rock's drawing extent for its size.
func (r *Rock) Radius() float64 {
	switch r.Size {
	case SizeBig:
		return bigRockRadius
	case SizeNormal:
		return normalRockRadius
	default:
		return smallRockRadius
	}
}

// Move advances the rock by one tick along its drift direction.
func (r *Rock) Move() {
	r.Pos = r.Pos.Add(r.Dir.Scale(r.Speed))
}

// sizeValue picks the tuning value for a rock size out of a per-size triple.
func sizeValue(v config.SizeValues, s Size) float64 {
	switch s {
	case SizeBig:
		return v.Big
	case SizeNormal:
		return v.Normal
	default:
		return v.Small
	}
}
