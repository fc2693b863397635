package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkorolev/tiltmaze/internal/config"
	"github.com/dkorolev/tiltmaze/internal/core"
	"github.com/dkorolev/tiltmaze/internal/games/tiltmaze"
	"github.com/dkorolev/tiltmaze/internal/platform/tui"
	"github.com/dkorolev/tiltmaze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a run ends,
you return to the menu. The tilt feel chosen in the menu sticks for
the rest of the session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Layout browser
  Q            - Quit

Examples:
  tiltmaze menu
  tiltmaze menu --fps 30
  tiltmaze menu --config ./my-maze.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Feel chosen in the menu, carried across runs
	feel := config.FeelStandard

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(cfg, string(feel))
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the layout browser
		if menuResult.WantsLayouts {
			goBack, lbErr := tui.RunLayoutBrowser(cfg.ScreenW, cfg.ScreenH)
			if lbErr != nil {
				logger.Error("layout browser failed", "error", lbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the browser
		}

		// Check if user wants to change the tilt feel
		if menuResult.WantsFeel {
			picked, feelErr := tui.RunFeelSelector(cfg, feel)
			if feelErr != nil {
				logger.Error("feel selector failed", "error", feelErr)
			}
			if picked != nil {
				feel = *picked
			}
			continue // Back to menu either way
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Set config path and feel before creation
		tiltmaze.SetConfigPath(flagConfig)
		tiltmaze.SetFeelPreset(string(feel))

		// Create mode instance
		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create mode", "error", err)
			continue
		}

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, cfg); err != nil {
			logger.Error("session failed", "error", err)
		}

		// Loop back to menu
	}
}
