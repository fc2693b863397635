package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkorolev/tiltmaze/internal/maze"
	"github.com/dkorolev/tiltmaze/internal/platform/tui"
)

var (
	flagLayoutWidth  float64
	flagLayoutHeight float64
	flagLayoutPlain  bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Browse the barrier layout at preset field sizes",
	Long: `Open an interactive browser showing the obstacle rectangles the maze
derives from a field size. Barriers scale with the field while the wall
thickness stays fixed, so corridors keep their absolute width.

With --plain, print the obstacle table for one field size to stdout
instead of opening the browser.

Examples:
  tiltmaze layout
  tiltmaze layout --plain
  tiltmaze layout --plain --width 400 --height 800`,
	Run: runLayout,
}

func init() {
	layoutCmd.Flags().Float64Var(&flagLayoutWidth, "width", 936, "Field width in px (with --plain)")
	layoutCmd.Flags().Float64Var(&flagLayoutHeight, "height", 504, "Field height in px (with --plain)")
	layoutCmd.Flags().BoolVar(&flagLayoutPlain, "plain", false, "Print the obstacle table to stdout")
}

func runLayout(cmd *cobra.Command, args []string) {
	if flagLayoutPlain {
		printLayout(maze.Field{Width: flagLayoutWidth, Height: flagLayoutHeight})
		return
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if _, err := tui.RunLayoutBrowser(width, height); err != nil {
		logger.Error("layout browser failed", "error", err)
		os.Exit(1)
	}
}

// printLayout writes the obstacle table for one field size to stdout.
func printLayout(f maze.Field) {
	obstacles := maze.BuildLayout(f)

	fmt.Printf("Field %.1f x %.1f\n", f.Width, f.Height)

	if len(obstacles) == 0 {
		fmt.Println("No obstacles: field has no positive width.")
		return
	}

	fmt.Println()
	fmt.Printf("  %-3s %-8s %8s %8s %8s %8s %8s %8s\n",
		"#", "Kind", "Left", "Top", "Width", "Height", "Right", "Bottom")

	for i, o := range obstacles {
		kind := "barrier"
		if o.Kind == maze.KindExit {
			kind = "exit"
		}
		fmt.Printf("  %-3d %-8s %8.1f %8.1f %8.1f %8.1f %8.1f %8.1f\n",
			i+1, kind, o.Left, o.Top, o.Width, o.Height, o.Right(), o.Bottom())
	}

	bound := maze.MinTraversableField()
	fmt.Println()
	fmt.Printf("Ball radius %.0f, wall thickness %.0f. Every passage clears the ball above %.0f x %.0f.\n",
		maze.BallRadius, maze.WallThickness, bound.Width, bound.Height)
}
