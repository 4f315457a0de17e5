package asteroids

import (
	"time"

	"github.com/akovrin/tui-asteroids/internal/core"
)

// rockHit records one missile-rock collision found during the scan phase.
// Removals and split spawns are applied afterwards, in scan order, so the
// collections are never mutated while being iterated.
type rockHit struct {
	rockIdx    int
	missileIdx int
	size       Size
	pos        core.Vec2
}

// updateMissiles advances every missile and resolves missile-rock collisions.
//
// Consequences per hit, in scan order: the rock and missile are removed, the
// size's point value is scored, big rocks split into two normal rocks offset
// 10 world units either side, normal rocks split into two small rocks, and a
// destroyed small rock is replaced by one new big rock elsewhere only while
// the live rock count (measured after the removal, splits included) is below
// the population cap.
func (g *Game) updateMissiles() {
	for _, m := range g.missiles {
		m.Move()
	}

	deadRocks := make(map[int]bool)
	deadMissiles := make(map[int]bool)
	var hits []rockHit

	for mi, m := range g.missiles {
		for ri, r := range g.rocks {
			if deadRocks[ri] {
				continue
			}
			if core.Distance(m.Pos, r.Pos) < sizeValue(g.cfg.Rocks.HitThresholds, r.Size) {
				deadRocks[ri] = true
				deadMissiles[mi] = true
				hits = append(hits, rockHit{rockIdx: ri, missileIdx: mi, size: r.Size, pos: r.Pos})
			}
		}
	}

	if len(hits) == 0 {
		return
	}

	// Apply consequences in scan order. liveCount tracks what the rock count
	// will be after each removal and spawn, which is what the population-cap
	// check for small-rock replacement keys off.
	liveCount := len(g.rocks)
	var spawned []*Rock

	for _, h := range hits {
		liveCount--
		g.score += int(sizeValue(g.cfg.Rocks.Scores, h.size))

		if child, ok := h.size.split(); ok {
			for _, dx := range []float64{10, -10} {
				rock, err := g.spawn.spawnAt(core.Vec2{X: h.pos.X + dx, Y: h.pos.Y}, child)
				if err != nil {
					continue
				}
				spawned = append(spawned, rock)
				liveCount++
			}
			continue
		}

		// Small rock: replace with a fresh big rock elsewhere, population
		// cap permitting.
		if liveCount < g.cfg.Rocks.PopulationCap {
			rock, err := g.spawn.spawnRandom(SizeBig, g.ship.Pos, g.minRockDistance)
			if err != nil {
				continue
			}
			spawned = append(spawned, rock)
			liveCount++
		}
	}

	g.rocks = sweepRocks(g.rocks, deadRocks)
	g.rocks = append(g.rocks, spawned...)
	g.missiles = sweepMissiles(g.missiles, deadMissiles)
}

// updateRocks advances every rock and resolves rock-ship proximity and
// out-of-bounds respawns.
//
// Per rock per tick the two outcomes are mutually exclusive: a rock that
// breaches the death distance costs a life and is not also respawned, even
// if it is simultaneously beyond the world's bounding circle.
func (g *Game) updateRocks(now time.Time) {
	halfDiag := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}.Length()
	center := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}

	gone := make(map[int]bool)
	var escaped []Size

	for ri, r := range g.rocks {
		r.Move()

		if core.Distance(r.Pos, g.ship.Pos) < sizeValue(g.cfg.Rocks.DeathDistances, r.Size) {
			g.die(now)
		} else if core.Distance(r.Pos, center) > halfDiag {
			gone[ri] = true
			escaped = append(escaped, r.Size)
		}
	}

	if len(gone) == 0 {
		return
	}

	g.rocks = sweepRocks(g.rocks, gone)

	// Respawn same-size replacements elsewhere while below the population
	// cap, so the field stays roughly constant without true wraparound.
	for _, size := range escaped {
		if len(g.rocks) >= g.cfg.Rocks.PopulationCap {
			continue
		}
		rock, err := g.spawn.spawnRandom(size, g.ship.Pos, g.minRockDistance)
		if err != nil {
			continue
		}
		g.rocks = append(g.rocks, rock)
	}
}

// sweepRocks returns rocks with the marked indices removed, preserving order.
func sweepRocks(rocks []*Rock, dead map[int]bool) []*Rock {
	if len(dead) == 0 {
		return rocks
	}
	kept := rocks[:0]
	for i, r := range rocks {
		if !dead[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

// sweepMissiles returns missiles with the marked indices removed, preserving
// order.
func sweepMissiles(missiles []*Missile, dead map[int]bool) []*Missile {
	if len(dead) == 0 {
		return missiles
	}
	kept := missiles[:0]
	for i, m := range missiles {
		if !dead[i] {
			kept = append(kept, m)
		}
	}
	return kept
}
