// Package audio plays synthesized sound for the game using the beep library.
// All cues are generated streamers; no sample files are shipped. The game
// core never touches this package: it emits core.Event values from Step and
// the platform forwards them here.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/akovrin/tui-asteroids/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Cue lengths. The game waits these out (plus its configured padding) before
// leaving the dying and game-over phases, so keep them in sync with the
// generators below.
const (
	FireCueDuration     = 120 * time.Millisecond
	DeathCueDuration    = 900 * time.Millisecond
	GameOverCueDuration = 1400 * time.Millisecond
)

// Player owns the speaker and mixes one-shot cues over a looping soundtrack.
// All methods are safe to call on a nil Player, which plays nothing; the
// --no-sound path simply never constructs one.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Returns an error if the
// audio device is unavailable; the caller may keep the player and every later
// call degrades to silence.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close; clearing the
// mixer stops all streamers.
func (p *Player) Cleanup() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	p.initialized = false
}

// HandleEvents dispatches one tick's worth of game events.
func (p *Player) HandleEvents(events []core.Event) {
	if p == nil {
		return
	}
	for _, e := range events {
		switch e {
		case core.EventFire:
			p.playFire()
		case core.EventDeath:
			p.playDeath()
		case core.EventGameOver:
			p.playGameOver()
		case core.EventMusicStart:
			p.startMusic()
		case core.EventMusicStop:
			p.stopMusic()
		}
	}
}

func (p *Player) playFire() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(FireCueDuration), newFireGenerator(sampleRate)))
	speaker.Unlock()
}

func (p *Player) playDeath() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(DeathCueDuration), newDeathGenerator(sampleRate)))
	speaker.Unlock()
}

func (p *Player) playGameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(GameOverCueDuration), newGameOverGenerator(sampleRate)))
	speaker.Unlock()
}

// startMusic starts the soundtrack loop, or resumes it after a stop. The
// loop plays quietly under the effect cues.
func (p *Player) startMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = false
		return
	}

	// The generator wraps around on its own, so it feeds the volume stage
	// directly instead of going through a compositor.
	quiet := &effects.Volume{Streamer: newSoundtrackGenerator(sampleRate), Base: 2, Volume: -3}
	p.music = &beep.Ctrl{Streamer: quiet}
	p.mixer.Add(p.music)
}

func (p *Player) stopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		speaker.Lock()
		p.music.Paused = true
		speaker.Unlock()
	}
}
