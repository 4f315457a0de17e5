package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovrin/tui-asteroids/internal/core"
	"github.com/akovrin/tui-asteroids/internal/games/asteroids"
	"github.com/akovrin/tui-asteroids/internal/platform/audio"
	"github.com/akovrin/tui-asteroids/internal/platform/tui"
	"github.com/akovrin/tui-asteroids/internal/registry"
	"github.com/akovrin/tui-asteroids/internal/storage"
)

var (
	flagConfig  string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play asteroids",
	Long: `Start the game in the current terminal.

Controls:
  Left/A, Right/D - Rotate
  Up/W            - Thrust
  Space           - Fire
  Enter or click  - Start / play again
  R               - Full restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  asteroids play
  asteroids play --no-sound
  asteroids play --config ./my-asteroids.yaml
  asteroids play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable all audio")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "asteroids",
	})

	// Get terminal size for the initial projection
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetLogger(logger)

	// Bring up audio unless disabled. The game times its dying and game-over
	// phases off the cue lengths, so hand those over before creating it.
	var player *audio.Player
	if !flagNoSound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("audio unavailable, running silent", "error", err)
			player = nil
		} else {
			asteroids.SetCueDurations(asteroids.CueDurations{
				Death:    audio.DeathCueDuration,
				GameOver: audio.GameOverCueDuration,
			})
		}
	}

	game, err := registry.Create("asteroids")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, player, cfg)

	player.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
