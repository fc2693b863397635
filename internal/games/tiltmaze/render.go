package tiltmaze

import (
	"fmt"

	"github.com/dkorolev/tiltmaze/internal/core"
	"github.com/dkorolev/tiltmaze/internal/maze"
)

// Visual characters for rendering
const (
	WallChar = '█'
	ExitChar = '▒'
	BallChar = '●'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		bound := maze.MinTraversableField()
		cols := int(bound.Width)/g.cellW + 3
		rows := int(bound.Height)/g.cellH + 4
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need about %dx%d", cols, rows))
		return
	}

	g.renderHUD(dst)

	// Border box around the play field; the interior maps onto the virtual
	// field at cellW x cellH px per terminal cell.
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1))

	g.renderObstacles(dst)
	g.renderBall(dst)

	switch g.state {
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case StateWon:
		g.drawCenteredMessage(dst, "ESCAPED!",
			fmt.Sprintf("Time %ds  |  Press R to restart", g.elapsedSeconds()),
			core.ColorBrightYellow)
	}
}

// renderHUD draws the title, mode hint and elapsed time on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorCyan)

	if g.mode == ModeDemo {
		hint := "autopilot"
		dst.DrawTextColored((dst.Width()-len(hint))/2, 0, hint, core.ColorGray)
	}

	timeText := fmt.Sprintf("Time: %ds", g.elapsedSeconds())
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)
}

// cellCenter returns the field position sampled for the interior screen cell
// at (sx, sy).
func (g *Game) cellCenter(sx, sy int) (float64, float64) {
	fx := (float64(sx-1) + 0.5) * float64(g.cellW)
	fy := (float64(sy-2) + 0.5) * float64(g.cellH)
	return fx, fy
}

// renderObstacles draws every cell whose center falls inside a barrier.
// The exit barrier is tinted differently so the player can read the goal.
func (g *Game) renderObstacles(dst *core.Screen) {
	for sy := 2; sy < dst.Height()-1; sy++ {
		for sx := 1; sx < dst.Width()-1; sx++ {
			fx, fy := g.cellCenter(sx, sy)
			for _, o := range g.obstacles {
				if fx >= o.Left && fx < o.Right() && fy >= o.Top && fy < o.Bottom() {
					if o.Kind == maze.KindExit {
						dst.SetCell(sx, sy, ExitChar, core.ColorYellow)
					} else {
						dst.SetCell(sx, sy, WallChar, core.ColorBlue)
					}
					break
				}
			}
		}
	}
}

// renderBall draws the ball as a disc of cells whose centers lie within the
// ball radius.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.engine.Position()
	r := g.engine.Radius()

	for sy := 2; sy < dst.Height()-1; sy++ {
		for sx := 1; sx < dst.Width()-1; sx++ {
			fx, fy := g.cellCenter(sx, sy)
			dx, dy := fx-x, fy-y
			if dx*dx+dy*dy <= r*r {
				dst.SetCell(sx, sy, BallChar, core.ColorRed)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, titleColor)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
