package asteroids

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Phase           string
	Score           int
	Lives           int
	Rocks           int
	BigRocks        int
	NormalRocks     int
	SmallRocks      int
	Missiles        int
	ShipX           float64
	ShipY           float64
	ShipHeading     float64
	ShipSpeed       float64
	MinRockDistance float64
	Counter         int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		Phase:           g.phase.String(),
		Score:           g.score,
		Lives:           g.lives,
		Rocks:           len(g.rocks),
		Missiles:        len(g.missiles),
		MinRockDistance: g.minRockDistance,
		Counter:         g.counter,
	}

	for _, r := range g.rocks {
		switch r.Size {
		case SizeBig:
			snap.BigRocks++
		case SizeNormal:
			snap.NormalRocks++
		case SizeSmall:
			snap.SmallRocks++
		}
	}

	if g.ship != nil {
		snap.ShipX = g.ship.Pos.X
		snap.ShipY = g.ship.Pos.Y
		snap.ShipHeading = g.ship.Heading
		snap.ShipSpeed = g.ship.Speed
	}

	return snap
}
