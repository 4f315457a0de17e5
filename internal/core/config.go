package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the current session has ended
}

// Event is a sound or lifecycle cue emitted by the simulation for the
// platform's audio collaborator. The core never plays audio itself.
type Event int

const (
	EventFire       Event = iota // A missile was fired
	EventDeath                   // The ship was destroyed
	EventGameOver                // The last life was lost
	EventMusicStart              // Start (or resume) the soundtrack loop
	EventMusicStop               // Stop the soundtrack loop
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFire:
		return "Fire"
	case EventDeath:
		return "Death"
	case EventGameOver:
		return "GameOver"
	case EventMusicStart:
		return "MusicStart"
	case EventMusicStop:
		return "MusicStop"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
