package asteroids

import (
	"fmt"
	"math"

	"github.com/akovrin/tui-asteroids/internal/core"
)

// Ship glyphs by heading octant, counter-clockwise from straight up.
var shipGlyphs = []rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Rock fill glyphs by size.
const (
	bigRockGlyph    = '▓'
	normalRockGlyph = '▒'
	smallRockGlyph  = '░'
	missileGlyph    = '•'
	flameGlyph      = '·'
)

// Render draws the current game state to the screen. The 800x600 world is
// projected onto whatever cell grid the terminal provides.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseWelcome {
		g.renderWelcome(dst)
		return
	}

	for _, r := range g.rocks {
		g.drawRock(dst, r)
	}
	for _, m := range g.missiles {
		x, y := g.project(dst, m.Pos)
		dst.SetColored(x, y, missileGlyph, core.ColorBrightYellow)
	}
	if g.ship != nil {
		g.drawShip(dst)
	}

	g.renderHUD(dst)
}

// project maps a world position to a screen cell.
func (g *Game) project(dst *core.Screen, pos core.Vec2) (int, int) {
	x := int(pos.X / g.cfg.World.Width * float64(dst.Width()))
	y := int(pos.Y / g.cfg.World.Height * float64(dst.Height()))
	return x, y
}

// drawShip renders the ship as a direction glyph, with a thrust variant.
func (g *Game) drawShip(dst *core.Screen) {
	x, y := g.project(dst, g.ship.Pos)

	octant := int(math.Round(g.ship.Heading/45)) % len(shipGlyphs)
	glyph := shipGlyphs[octant]

	color := core.ColorBrightWhite
	if g.ship.Thrusting {
		color = core.ColorBrightYellow
		// Exhaust trails opposite the heading.
		back := core.HeadingVec(g.ship.Heading).Scale(-1)
		dst.SetColored(x+int(math.Round(back.X)), y+int(math.Round(back.Y)), flameGlyph, core.ColorOrange)
	}
	dst.SetColored(x, y, glyph, color)
}

// drawRock renders a rock as a filled ellipse scaled from its world radius.
func (g *Game) drawRock(dst *core.Screen, r *Rock) {
	cx, cy := g.project(dst, r.Pos)

	rx := r.Radius() / g.cfg.World.Width * float64(dst.Width())
	ry := r.Radius() / g.cfg.World.Height * float64(dst.Height())
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}

	var glyph rune
	switch r.Size {
	case SizeBig:
		glyph = bigRockGlyph
	case SizeNormal:
		glyph = normalRockGlyph
	default:
		glyph = smallRockGlyph
	}

	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			fx := float64(dx) / rx
			fy := float64(dy) / ry
			if fx*fx+fy*fy <= 1 {
				dst.SetColored(cx+dx, cy+dy, glyph, core.ColorGray)
			}
		}
	}
}

// renderHUD draws score, remaining lives, and the game-over banner.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("%d", g.score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-2, 0, scoreText, core.ColorGreen)

	// One ship icon per remaining life, top-left.
	for i := 0; i < g.lives; i++ {
		dst.SetColored(2+i*2, 0, shipGlyphs[0], core.ColorBrightWhite)
	}

	if g.phase == PhaseGameOver || g.phase == PhaseStarting {
		dst.DrawTextCenteredColored(dst.Height()/2, "GAME OVER", core.ColorBrightRed)
		if g.phase == PhaseStarting {
			dst.DrawTextCenteredColored(dst.Height()/2+2, "[Click anywhere/press Enter] to play again", core.ColorBlue)
		}
	}
}

// renderWelcome draws the title screen.
func (g *Game) renderWelcome(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-2, "A S T E R O I D S", core.ColorGold)
	dst.DrawTextCenteredColored(mid+1, "[Click anywhere/press Enter] to begin!", core.ColorBlue)
}
