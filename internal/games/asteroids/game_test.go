package asteroids

import (
	"reflect"
	"testing"
	"time"

	"github.com/akovrin/tui-asteroids/internal/core"
)

func TestResetStartsAtWelcome(t *testing.T) {
	g, _ := newTestGame(t, 1)

	if g.phase != PhaseWelcome {
		t.Errorf("phase = %v, expected welcome", g.phase)
	}
	state := g.State()
	if state.Score != 0 || state.Lives != 0 || state.GameOver {
		t.Errorf("state = %+v, expected zeroed pre-session state", state)
	}
	if g.ship != nil || len(g.rocks) != 0 || len(g.missiles) != 0 {
		t.Error("no entities should exist before the first session")
	}
}

func TestConfirmStartsSession(t *testing.T) {
	g, clk := newTestGame(t, 1)

	res := stepWith(g, clk, core.ActionConfirm)

	if g.phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.phase)
	}
	if res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("state = %+v, expected 3 lives and 0 score", res.State)
	}
	if g.ship == nil {
		t.Fatal("ship missing after session start")
	}
	if g.ship.Pos.X != 400 || g.ship.Pos.Y != 300 {
		t.Errorf("ship pos = %v, expected world center", g.ship.Pos)
	}
	if g.ship.Heading != 0 || g.ship.Speed != 0 {
		t.Errorf("ship heading/speed = %g/%g, expected 0/0", g.ship.Heading, g.ship.Speed)
	}
	if len(g.rocks) != 4 {
		t.Fatalf("rocks = %d, expected 4", len(g.rocks))
	}
	for _, r := range g.rocks {
		if r.Size != SizeBig {
			t.Errorf("starting rock size = %q, expected big", r.Size)
		}
	}
	if !hasEvent(res.Events, core.EventMusicStart) {
		t.Error("session start should resume the soundtrack")
	}
}

func TestInputOnlyStartsFromWelcomeOrStarting(t *testing.T) {
	g, clk := newTestGame(t, 1)

	// Movement and fire input is ignored on the title screen.
	stepWith(g, clk, core.ActionThrust, core.ActionFire, core.ActionLeft)
	if g.phase != PhaseWelcome || len(g.missiles) != 0 {
		t.Error("non-confirm input must not leave the welcome screen")
	}
}

func TestRotationInput(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = nil

	stepWith(g, clk, core.ActionLeft)
	if g.ship.Heading != 10 {
		t.Errorf("heading after left = %g, expected 10", g.ship.Heading)
	}
	stepWith(g, clk, core.ActionRight)
	if g.ship.Heading != 0 {
		t.Errorf("heading after right = %g, expected 0", g.ship.Heading)
	}
	stepWith(g, clk, core.ActionRight)
	if g.ship.Heading != 350 {
		t.Errorf("heading after wrap = %g, expected 350", g.ship.Heading)
	}
}

func TestThrustInput(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = nil

	stepWith(g, clk, core.ActionThrust)
	if g.ship.Speed != 1 {
		t.Errorf("speed = %g, expected 1 after one thrust tick", g.ship.Speed)
	}
	if g.ship.Pos.Y != 299 {
		t.Errorf("ship y = %g, expected 299 after moving at speed 1", g.ship.Pos.Y)
	}

	stepWith(g, clk)
	if g.ship.Speed != 0 {
		t.Errorf("speed = %g, expected decay back to 0", g.ship.Speed)
	}
}

func TestFireRateLimit(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = nil

	res := stepWith(g, clk, core.ActionFire)
	if len(g.missiles) != 1 {
		t.Fatalf("missiles = %d, expected 1", len(g.missiles))
	}
	if !hasEvent(res.Events, core.EventFire) {
		t.Error("firing should emit a fire event")
	}

	// One tick later (33ms) the gate is still closed.
	res = stepWith(g, clk, core.ActionFire)
	if len(g.missiles) != 1 {
		t.Errorf("missiles = %d, expected the fire gate to hold", len(g.missiles))
	}
	if hasEvent(res.Events, core.EventFire) {
		t.Error("a gated fire must not emit an event")
	}

	clk.advance(200 * time.Millisecond)
	stepWith(g, clk, core.ActionFire)
	if len(g.missiles) != 2 {
		t.Errorf("missiles = %d, expected 2 after the gate reopened", len(g.missiles))
	}
}

func TestLifeLossAndRevive(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.score = 70
	g.rocks = []*Rock{mustRock(t, g, g.ship.Pos, SizeBig)}

	res := stepWith(g, clk)
	if g.phase != PhaseDying {
		t.Fatalf("phase = %v, expected dying", g.phase)
	}
	if res.State.Lives != 2 {
		t.Errorf("lives = %d, expected 2", res.State.Lives)
	}
	if !hasEvent(res.Events, core.EventMusicStop) || !hasEvent(res.Events, core.EventDeath) {
		t.Errorf("events = %v, expected music stop and death cue", res.Events)
	}

	// The revive waits for the death cue plus the extra delay.
	stepWith(g, clk)
	if g.phase != PhaseDying {
		t.Error("phase should hold at dying while the cue plays")
	}

	clk.advance(g.cues.Death + g.extraDelay())
	res = stepWith(g, clk)
	if g.phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing after the revive delay", g.phase)
	}
	if g.ship.Pos.X != 400 || g.ship.Pos.Y != 300 {
		t.Errorf("revived ship pos = %v, expected world center", g.ship.Pos)
	}
	if len(g.rocks) != 4 {
		t.Errorf("rocks = %d, expected a fresh field of 4", len(g.rocks))
	}
	if len(g.missiles) != 0 {
		t.Error("missiles should be cleared on revive")
	}
	if g.score != 70 || g.lives != 2 {
		t.Errorf("score/lives = %d/%d, expected 70/2 carried across the revive", g.score, g.lives)
	}
	if !hasEvent(res.Events, core.EventMusicStart) {
		t.Error("revive should resume the soundtrack")
	}
}

func TestReviveTimerFiresOnce(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = []*Rock{mustRock(t, g, g.ship.Pos, SizeBig)}

	stepWith(g, clk)
	clk.advance(g.cues.Death + g.extraDelay())
	stepWith(g, clk)
	if g.phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.phase)
	}

	g.rocks = nil
	lives := g.lives
	for i := 0; i < 10; i++ {
		stepWith(g, clk)
	}
	if g.phase != PhasePlaying || g.lives != lives {
		t.Error("a fired timer must never trigger again")
	}
}

func TestGameOverFlow(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.lives = 1
	g.score = 340
	g.rocks = []*Rock{mustRock(t, g, g.ship.Pos, SizeBig)}

	stepWith(g, clk)
	if g.phase != PhaseDying || g.lives != 0 {
		t.Fatalf("phase/lives = %v/%d, expected dying with no lives left", g.phase, g.lives)
	}

	clk.advance(g.cues.Death + g.extraDelay())
	res := stepWith(g, clk)
	if g.phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected game over with no lives left", g.phase)
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("entering game over should emit its cue")
	}
	if !res.State.GameOver {
		t.Error("state should report game over")
	}

	clk.advance(g.cues.GameOver + g.extraDelay())
	res = stepWith(g, clk)
	if g.phase != PhaseStarting {
		t.Fatalf("phase = %v, expected the restart prompt", g.phase)
	}
	if !res.State.GameOver {
		t.Error("state should still report game over at the restart prompt")
	}

	// Confirm starts a completely fresh session.
	res = stepWith(g, clk, core.ActionConfirm)
	if g.phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.phase)
	}
	if res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("state = %+v, expected a reset session", res.State)
	}
	if len(g.rocks) != 4 {
		t.Errorf("rocks = %d, expected a fresh field of 4", len(g.rocks))
	}
}

func TestFiringAllowedWhileDying(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = []*Rock{mustRock(t, g, g.ship.Pos, SizeBig)}
	stepWith(g, clk)
	if g.phase != PhaseDying {
		t.Fatalf("phase = %v, expected dying", g.phase)
	}

	clk.advance(200 * time.Millisecond)
	stepWith(g, clk, core.ActionFire)
	if len(g.missiles) != 1 {
		t.Errorf("missiles = %d, firing is gated but not phase-locked past welcome", len(g.missiles))
	}
}

func TestDifficultyRamp(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = rockRing(t, g, 12)
	g.counter = g.cfg.Difficulty.RampIntervalSecs*g.runtime.TickRate - 1
	g.minRockDistance = 300

	stepWith(g, clk)

	if len(g.rocks) != 13 {
		t.Errorf("rocks = %d, expected one extra big rock", len(g.rocks))
	}
	if g.minRockDistance != 250 {
		t.Errorf("min rock distance = %g, expected 250", g.minRockDistance)
	}
	if g.counter != 0 {
		t.Errorf("counter = %d, expected reset after the ramp", g.counter)
	}
}

func TestDifficultyRampAtHardCap(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = rockRing(t, g, 15)
	g.counter = g.cfg.Difficulty.RampIntervalSecs*g.runtime.TickRate - 1
	g.minRockDistance = 300

	stepWith(g, clk)

	if len(g.rocks) != 15 {
		t.Errorf("rocks = %d, expected no spawn at the hard cap", len(g.rocks))
	}
	if g.minRockDistance != 250 {
		t.Error("the exclusion radius still tightens at the hard cap")
	}
}

func TestDifficultyRampDistanceFloor(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.rocks = rockRing(t, g, 3)
	g.counter = g.cfg.Difficulty.RampIntervalSecs*g.runtime.TickRate - 1
	g.minRockDistance = g.cfg.Difficulty.RockDistanceFloor

	stepWith(g, clk)

	if g.minRockDistance != g.cfg.Difficulty.RockDistanceFloor {
		t.Errorf("min rock distance = %g, expected to hold at the floor", g.minRockDistance)
	}
}

func TestCounterResetsOnDeath(t *testing.T) {
	g, clk := playingGame(t, 1)
	g.counter = 400
	g.rocks = []*Rock{mustRock(t, g, g.ship.Pos, SizeBig)}

	stepWith(g, clk)

	if g.counter != 0 {
		t.Errorf("counter = %d, expected reset when a life is lost", g.counter)
	}
}

func TestStateGameOverByPhase(t *testing.T) {
	tests := []struct {
		phase    Phase
		gameOver bool
	}{
		{PhaseWelcome, false},
		{PhasePlaying, false},
		{PhaseDying, false},
		{PhaseGameOver, true},
		{PhaseStarting, true},
	}

	g, _ := newTestGame(t, 1)
	for _, tc := range tests {
		g.phase = tc.phase
		if got := g.State().GameOver; got != tc.gameOver {
			t.Errorf("phase %v: GameOver = %v, expected %v", tc.phase, got, tc.gameOver)
		}
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() (Snapshot, []core.Vec2) {
		g, clk := newTestGame(t, 42)
		stepWith(g, clk, core.ActionConfirm)
		for i := 0; i < 200; i++ {
			var actions []core.Action
			if i%3 == 0 {
				actions = append(actions, core.ActionThrust)
			}
			if i%5 == 0 {
				actions = append(actions, core.ActionLeft)
			}
			if i%4 == 0 {
				actions = append(actions, core.ActionFire)
			}
			stepWith(g, clk, actions...)
		}
		positions := make([]core.Vec2, len(g.rocks))
		for i, r := range g.rocks {
			positions[i] = r.Pos
		}
		return g.Snapshot(), positions
	}

	snapA, rocksA := run()
	snapB, rocksB := run()

	if snapA != snapB {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snapA, snapB)
	}
	if !reflect.DeepEqual(rocksA, rocksB) {
		t.Error("rock positions diverged between identical runs")
	}
}

func TestRegistryRegistration(t *testing.T) {
	g := New()
	if g.ID() != "asteroids" {
		t.Errorf("ID = %q, expected asteroids", g.ID())
	}
	if g.Title() != "Asteroids" {
		t.Errorf("Title = %q", g.Title())
	}
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
