// asteroids is a terminal rendition of the classic rock-shooter, with
// synthesized sound, persistent high scores, and optional play over SSH.
//
// Usage:
//
//	asteroids play           - Play in the current terminal
//	asteroids scores         - Show high scores
//	asteroids serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/akovrin/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge the rocks, shoot them first",
	Long: `Asteroids is a terminal-based rendition of the classic arcade
rock-shooter. Rotate, thrust, and fire missiles while rocks split
and multiply around you.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  asteroids play
  asteroids play --no-sound
  asteroids scores
  asteroids serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
