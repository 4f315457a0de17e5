package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// fireGenerator produces a short descending laser blip.
type fireGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newFireGenerator(sr beep.SampleRate) *fireGenerator {
	return &fireGenerator{sr: sr}
}

func (g *fireGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(g.sr.N(FireCueDuration))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / dur

		// Pitch drops from 900Hz to 300Hz across the blip.
		freq := 900 - 600*progress
		envelope := math.Exp(-progress * 4)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *fireGenerator) Err() error {
	return nil
}

// deathGenerator produces a rumbling downward sweep with noise, for the
// ship explosion.
type deathGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newDeathGenerator(sr beep.SampleRate) *deathGenerator {
	return &deathGenerator{sr: sr, seed: 0x5DEECE66D}
}

func (g *deathGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	dur := float64(g.sr.N(DeathCueDuration))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / dur

		// Sweep from 400Hz down to 60Hz.
		freq := 400 - 340*progress
		envelope := math.Exp(-progress * 3)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (0.3*math.Sin(2*math.Pi*freq*t) + 0.2*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *deathGenerator) Err() error {
	return nil
}

// gameOverGenerator plays three descending notes.
type gameOverGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newGameOverGenerator(sr beep.SampleRate) *gameOverGenerator {
	return &gameOverGenerator{sr: sr}
}

// E4, C4, G3.
var gameOverNotes = []float64{329.63, 261.63, 196.00}

func (g *gameOverGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(GameOverCueDuration) / len(gameOverNotes)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		note := g.pos / noteLen
		if note >= len(gameOverNotes) {
			note = len(gameOverNotes) - 1
		}
		freq := gameOverNotes[note]

		// Each note fades out before the next starts.
		notePos := float64(g.pos%noteLen) / float64(noteLen)
		envelope := math.Exp(-notePos * 3)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)
		sample += 0.08 * envelope * math.Sin(2*math.Pi*freq*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *gameOverGenerator) Err() error {
	return nil
}

// soundtrackGenerator produces a looping two-bar bass pulse that sits under
// the effect cues.
type soundtrackGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func newSoundtrackGenerator(sr beep.SampleRate) *soundtrackGenerator {
	return &soundtrackGenerator{
		sr:      sr,
		samples: sr.N(1600 * time.Millisecond),
	}
}

// Alternating bass notes, A1 and E2.
var soundtrackNotes = []float64{55.0, 82.41}

func (g *soundtrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	beatLen := g.samples / 4
	for i := range samples {
		loopPos := g.pos % g.samples
		t := float64(loopPos) / float64(g.sr)

		beat := loopPos / beatLen
		freq := soundtrackNotes[beat%len(soundtrackNotes)]

		beatPos := float64(loopPos%beatLen) / float64(beatLen)
		envelope := math.Exp(-beatPos * 2)

		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)
		// A faint fifth above for texture.
		sample += 0.06 * envelope * math.Sin(2*math.Pi*freq*1.5*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *soundtrackGenerator) Err() error {
	return nil
}
