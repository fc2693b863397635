package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkorolev/tiltmaze/internal/core"
	"github.com/dkorolev/tiltmaze/internal/games/tiltmaze"
	"github.com/dkorolev/tiltmaze/internal/platform/tui"
	"github.com/dkorolev/tiltmaze/internal/registry"
)

var flagFeel string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or the classic maze when omitted.

Controls:
  Arrows/WASD  - Tilt the field
  P            - Pause (levels the field)
  R            - Restart (after escaping)
  Q/Ctrl+C     - Quit

Feel presets:
  gentle   - Softer impulses, lower top rate
  standard - As configured
  twitchy  - Harder impulses, higher top rate

Examples:
  tiltmaze play
  tiltmaze play tiltmaze_demo
  tiltmaze play --feel gentle
  tiltmaze play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFeel, "feel", "", "Tilt feel preset: gentle, standard, twitchy")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tiltmaze"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		logger.Error("unknown mode", "mode", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tiltmaze list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early so the first Reset sizes the field correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and feel before creation
	tiltmaze.SetConfigPath(flagConfig)
	tiltmaze.SetFeelPreset(flagFeel)

	// Create mode instance
	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create mode", "error", err)
		os.Exit(1)
	}

	// Run the game
	if runErr := tui.Run(game, cfg); runErr != nil {
		logger.Error("session failed", "error", runErr)
		os.Exit(1)
	}
}
