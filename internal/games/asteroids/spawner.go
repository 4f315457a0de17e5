package asteroids

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/akovrin/tui-asteroids/internal/config"
	"github.com/akovrin/tui-asteroids/internal/core"
)

// maxPlacementAttempts bounds the random-placement loop. The first attempt
// samples inside the spawn margin; the rest sample the full viewport. If the
// exclusion radius cannot be satisfied (tiny world, huge radius), placement
// falls back to the point diametrically opposite the ship instead of looping
// forever.
const maxPlacementAttempts = 32

// spawner produces rocks at valid random positions or at derived positions
// when a destroyed rock splits.
type spawner struct {
	rng    *rand.Rand
	world  config.WorldConfig
	rocks  config.RockConfig
	logger *log.Logger
}

// spawnAt creates a rock of the given size exactly at pos. Used for splits;
// no distance constraint applies.
func (sp *spawner) spawnAt(pos core.Vec2, size Size) (*Rock, error) {
	return NewRock(pos, size, sp.rocks.Speed, sp.rng)
}

// spawnRandom creates a rock of the given size at a random position at least
// minDist away from the ship. The first sample is inset by the spawn margin;
// retries sample the whole viewport.
func (sp *spawner) spawnRandom(size Size, ship core.Vec2, minDist float64) (*Rock, error) {
	pos := sp.place(ship, minDist)
	return NewRock(pos, size, sp.rocks.Speed, sp.rng)
}

// place finds a spawn position honoring the exclusion radius around the ship.
func (sp *spawner) place(ship core.Vec2, minDist float64) core.Vec2 {
	w, h := sp.world.Width, sp.world.Height
	margin := sp.world.SpawnMargin

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		var pos core.Vec2
		if attempt == 0 {
			pos = core.Vec2{
				X: margin + sp.rng.Float64()*(w-2*margin),
				Y: margin + sp.rng.Float64()*(h-2*margin),
			}
		} else {
			pos = core.Vec2{
				X: sp.rng.Float64() * w,
				Y: sp.rng.Float64() * h,
			}
		}
		if core.Distance(pos, ship) >= minDist {
			return pos
		}
	}

	// The exclusion radius could not be satisfied by sampling. Fall back to
	// the point opposite the ship, which maximizes distance inside the world.
	fallback := core.Vec2{X: w - ship.X, Y: h - ship.Y}
	if sp.logger != nil {
		sp.logger.Warn("rock placement fell back to opposite point",
			"attempts", maxPlacementAttempts,
			"min_distance", minDist,
		)
	}
	return fallback
}
