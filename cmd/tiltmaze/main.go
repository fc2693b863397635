// tiltmaze is a tilt-controlled labyrinth for the terminal: tip the play
// field with the arrow keys and roll the ball past four fixed barriers to
// the exit at the right edge.
//
// Usage:
//
//	tiltmaze play [mode]     - Play a mode (default: tiltmaze)
//	tiltmaze menu            - Interactive mode picker
//	tiltmaze list            - List available modes
//	tiltmaze layout          - Browse the barrier layout at preset field sizes
//	tiltmaze config          - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--config <path>  - Path to custom maze config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/dkorolev/tiltmaze/internal/games/tiltmaze"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

// logger reports warnings and errors outside the alternate screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tiltmaze",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltmaze",
	Short: "Tilt Maze - Roll a ball through a terminal labyrinth",
	Long: `Tilt Maze is a terminal game where the arrow keys tilt the play field
and the ball rolls accordingly. Thread it through the barrier gaps and
escape past the exit wall at the right edge. The timer is your score;
lower is better.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  layout   - Browse the barrier layout at preset field sizes
  config   - Print the default configuration YAML

Examples:
  tiltmaze play
  tiltmaze play tiltmaze_demo
  tiltmaze play --feel twitchy
  tiltmaze menu
  tiltmaze layout --plain --width 400 --height 800
  tiltmaze config > ~/.tiltmaze/configs/maze.yaml`,
	// Bare invocation opens the menu
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}
