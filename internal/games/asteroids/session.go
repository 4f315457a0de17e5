package asteroids

import (
	"time"

	"github.com/akovrin/tui-asteroids/internal/core"
)

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseWelcome  Phase = iota // Title screen, waiting for the first start
	PhasePlaying               // Live gameplay
	PhaseDying                 // Transient: a life was just lost
	PhaseGameOver              // Last life lost, game-over cue playing
	PhaseStarting              // Post game-over, waiting for a restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	case PhaseStarting:
		return "starting"
	default:
		return "unknown"
	}
}

// oneShotTimer is a deferred action keyed by a wall-clock deadline, checked
// once per tick. It must be disarmed as soon as it fires so a stale deadline
// can never trigger a transition twice.
type oneShotTimer struct {
	deadline time.Time
	armed    bool
}

func (t *oneShotTimer) arm(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.armed = true
}

func (t *oneShotTimer) disarm() {
	t.armed = false
}

func (t *oneShotTimer) fired(now time.Time) bool {
	return t.armed && !now.Before(t.deadline)
}

// CueDurations holds the lengths of the one-shot audio cues. The state
// machine waits cue length plus the configured extra delay before leaving
// the Dying and GameOver phases, so the cue finishes before play resumes.
type CueDurations struct {
	Death    time.Duration
	GameOver time.Duration
}

// defaultCueDurations matches the synthesized cues in the audio platform.
func defaultCueDurations() CueDurations {
	return CueDurations{
		Death:    900 * time.Millisecond,
		GameOver: 1400 * time.Millisecond,
	}
}

// extraDelay converts the configured post-cue padding to a duration.
func (g *Game) extraDelay() time.Duration {
	return time.Duration(g.cfg.Session.ExtraDelaySecs * float64(time.Second))
}

// beginSession fully (re)initializes a session: fresh ship, fresh rock field,
// full lives, zero score. Entered from Welcome or Starting on player confirm.
func (g *Game) beginSession() {
	g.reviveTimer.disarm()
	g.restartTimer.disarm()

	g.rocks = nil
	g.minRockDistance = g.cfg.Difficulty.InitialRockDistance

	g.startLife()
	g.spawnStartRocks()

	g.lives = g.cfg.Session.Lives
	g.score = 0
	g.counter = 0
}

// startLife creates a fresh ship at the world center, clears missiles,
// resumes the soundtrack, and enters Playing.
func (g *Game) startLife() {
	center := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	g.ship = newShip(center, g.cfg.Ship)
	g.missiles = nil
	g.emit(core.EventMusicStart)
	g.phase = PhasePlaying
}

// spawnStartRocks populates the field with the configured number of big
// rocks, respecting the current exclusion radius around the ship.
func (g *Game) spawnStartRocks() {
	for i := 0; i < g.cfg.Rocks.StartCount; i++ {
		rock, err := g.spawn.spawnRandom(SizeBig, g.ship.Pos, g.minRockDistance)
		if err != nil {
			// Unreachable with the built-in sizes; logged rather than dropped
			// silently if a config ever routes a bad size through here.
			if g.logger != nil {
				g.logger.Error("failed to spawn rock", "error", err)
			}
			continue
		}
		g.rocks = append(g.rocks, rock)
	}
}

// die handles the loss of a life. Guarded by the phase so that two rocks
// breaching the death distance in the same tick cost a single life.
func (g *Game) die(now time.Time) {
	if g.phase != PhasePlaying {
		return
	}

	g.lives--
	g.counter = 0
	g.phase = PhaseDying
	g.emit(core.EventMusicStop)
	g.emit(core.EventDeath)

	g.restartTimer.disarm()
	g.reviveTimer.arm(now, g.cues.Death+g.extraDelay())
}

// gameOver enters the GameOver phase and schedules the switch to the
// restart-prompt display.
func (g *Game) gameOver(now time.Time) {
	g.phase = PhaseGameOver
	g.emit(core.EventGameOver)

	g.reviveTimer.disarm()
	g.restartTimer.arm(now, g.cues.GameOver+g.extraDelay())
}

// tickTimers fires due deferred transitions. Each timer is disarmed before
// its action runs to prevent re-entry.
func (g *Game) tickTimers(now time.Time) {
	if g.reviveTimer.fired(now) {
		g.reviveTimer.disarm()
		if g.lives < 1 {
			g.gameOver(now)
		} else {
			// Fresh rock field first: placement measures from the old ship
			// position, then the new ship appears at the center.
			g.rocks = nil
			g.spawnStartRocks()
			g.startLife()
		}
	}

	if g.restartTimer.fired(now) {
		g.restartTimer.disarm()
		g.phase = PhaseStarting
	}
}
