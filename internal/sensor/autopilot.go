package sensor

import (
	"math"
	"sync"
	"time"

	"github.com/dkorolev/tiltmaze/internal/maze"
)

// arriveDistance is how close the ball must get to a waypoint, in field
// pixels, before the pilot starts chasing the next one.
const arriveDistance = 20.0

// waypoint is a route stop expressed as fractions of the field size, so the
// route survives resizes.
type waypoint struct {
	fx, fy float64
}

// demoRoute leads from the starting center up into the band above the exit
// barrier and then across it to the right field edge.
var demoRoute = []waypoint{
	{0.50, 0.10},
	{1.00, 0.10},
}

// Autopilot drives the ball through the maze without player input: it chases
// a fixed waypoint route, emitting rates pointed at the current target. It
// never touches the engine; the game pushes position updates in through
// Observe, which keeps all engine access on the game goroutine.
type Autopilot struct {
	mu    sync.Mutex
	x, y  float64
	field maze.Field
	next  int
	gain  float64
}

// NewAutopilot returns a pilot emitting rates of the given magnitude.
func NewAutopilot(gain float64) *Autopilot {
	return &Autopilot{gain: gain}
}

// Observe feeds the pilot the latest ball position and field. Called by the
// game after every step.
func (p *Autopilot) Observe(x, y float64, f maze.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.x, p.y = x, y
	p.field = f
}

// Read emits a reading steering toward the current waypoint. Before the
// first Observe, or on an unsized field, the pilot reads level.
func (p *Autopilot) Read(now time.Time) Sample {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.field.Width <= 0 {
		return Sample{At: now}
	}

	tx := demoRoute[p.next].fx * p.field.Width
	ty := demoRoute[p.next].fy * p.field.Height

	dx := tx - p.x
	dy := ty - p.y
	dist := math.Hypot(dx, dy)

	if dist < arriveDistance && p.next < len(demoRoute)-1 {
		p.next++
		tx = demoRoute[p.next].fx * p.field.Width
		ty = demoRoute[p.next].fy * p.field.Height
		dx, dy = tx-p.x, ty-p.y
		dist = math.Hypot(dx, dy)
	}

	if dist == 0 {
		return Sample{At: now}
	}

	// Inverse of the integrator mapping: roll drives +x, pitch drives -y.
	return Sample{
		Rate: [3]float64{-p.gain * dy / dist, p.gain * dx / dist, 0},
		At:   now,
	}
}
