package asteroids

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/akovrin/tui-asteroids/internal/config"
	"github.com/akovrin/tui-asteroids/internal/core"
	"github.com/akovrin/tui-asteroids/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// pkgLogger is the logger handed to new game instances.
var pkgLogger *log.Logger

// pkgCues overrides the default cue durations when the audio platform is up.
var pkgCues *CueDurations

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for new game instances. May be nil.
func SetLogger(logger *log.Logger) {
	pkgLogger = logger
}

// SetCueDurations overrides the audio cue lengths used to time the dying and
// game-over transitions. Called by the platform once the audio collaborator
// knows its actual cue lengths.
func SetCueDurations(c CueDurations) {
	pkgCues = &c
}

// Game implements the asteroids game logic. It owns all session state and is
// mutated exclusively by the platform's single tick loop; no locking needed.
type Game struct {
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger
	spawn   *spawner

	// now is the wall clock; swapped for a fake in tests.
	now func() time.Time

	phase    Phase
	ship     *Ship
	missiles []*Missile
	rocks    []*Rock

	lives           int
	score           int
	minRockDistance float64
	counter         int // Ticks survived since the last ramp or death
	tick            uint64

	reviveTimer  oneShotTimer
	restartTimer oneShotTimer
	lastFire     time.Time
	cues         CueDurations

	events []core.Event
}

// New creates a new asteroids game instance.
func New() *Game {
	return &Game{
		now:    time.Now,
		logger: pkgLogger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game at the welcome screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("falling back to default config", "error", err)
		}
		cfg = config.DefaultAsteroidsConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawn = &spawner{
		rng:    g.rng,
		world:  cfg.World,
		rocks:  cfg.Rocks,
		logger: g.logger,
	}

	g.cues = defaultCueDurations()
	if pkgCues != nil {
		g.cues = *pkgCues
	}

	g.phase = PhaseWelcome
	g.ship = nil
	g.missiles = nil
	g.rocks = nil
	g.lives = 0
	g.score = 0
	g.minRockDistance = cfg.Difficulty.InitialRockDistance
	g.counter = 0
	g.tick = 0
	g.reviveTimer.disarm()
	g.restartTimer.disarm()
	g.lastFire = time.Time{}
	g.events = nil
}

// Step advances the game by one tick: deferred transitions, then input, then
// simulation, then the difficulty ramp.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.now()
	g.events = nil
	g.tick++

	g.tickTimers(now)

	// Starting a session from the title or restart screen.
	if (g.phase == PhaseWelcome || g.phase == PhaseStarting) && in.Has(core.ActionConfirm) {
		g.beginSession()
		return g.result()
	}

	// Firing works in any state past the welcome screen, gated to one
	// missile per fire interval.
	if g.phase != PhaseWelcome && g.ship != nil && in.Has(core.ActionFire) {
		interval := time.Duration(g.cfg.Ship.FireIntervalMS) * time.Millisecond
		if now.Sub(g.lastFire) > interval {
			g.missiles = append(g.missiles, g.ship.Fire(g.cfg.Missile.Speed))
			g.emit(core.EventFire)
			g.lastFire = now
		}
	}

	if g.phase == PhasePlaying {
		if in.Has(core.ActionRight) {
			g.ship.Rotate(-g.cfg.Ship.RotateStep)
		}
		if in.Has(core.ActionLeft) {
			g.ship.Rotate(g.cfg.Ship.RotateStep)
		}
		g.ship.Thrust(in.Has(core.ActionThrust))

		g.updateMissiles()
		g.updateRocks(now)
		if g.phase == PhasePlaying { // a rock may have ended the life above
			g.ship.Move()
		}

		g.rampDifficulty()
	}

	return g.result()
}

// rampDifficulty counts survival ticks and, after each full ramp interval,
// adds one big rock (below the hard cap) and tightens the spawn exclusion
// radius toward its floor.
func (g *Game) rampDifficulty() {
	if g.phase != PhasePlaying {
		return
	}

	g.counter++
	if g.counter < g.cfg.Difficulty.RampIntervalSecs*g.runtime.TickRate {
		return
	}

	if len(g.rocks) < g.cfg.Rocks.HardCap {
		rock, err := g.spawn.spawnRandom(SizeBig, g.ship.Pos, g.minRockDistance)
		if err == nil {
			g.rocks = append(g.rocks, rock)
		}
	}

	if g.minRockDistance > g.cfg.Difficulty.RockDistanceFloor {
		g.minRockDistance -= g.cfg.Difficulty.RockDistanceStep
	}

	g.counter = 0
}

// emit queues an audio event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result packages the current state and this tick's events.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseStarting,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
