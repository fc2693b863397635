package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// The maze draws with a small fixed palette. Each element of the scene has
// its own color so the goal reads at a glance even on dim terminals.
const (
	ColorDefault      Color = iota
	ColorRed                // ball
	ColorYellow             // exit wall
	ColorBlue               // barriers
	ColorCyan               // HUD title
	ColorGray               // dim hints
	ColorBrightYellow       // win overlay
	ColorBrightWhite        // pause overlay
)
