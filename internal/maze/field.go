// Package maze implements the motion core of the game: a ball displaced by
// tilt-derived deltas inside a bounded play field, blocked by a fixed set of
// axis-aligned rectangular obstacles derived from the field size.
//
// The package is pure logic. It performs no I/O, takes no locks and assumes a
// single caller goroutine; the host serializes resize and movement events.
package maze

// Field is the rectangular drawable area the ball and obstacles live in,
// measured in device-independent pixels.
type Field struct {
	Width  float64
	Height float64
}

// Kind tags an obstacle for display purposes only. Physics ignores it.
type Kind int

const (
	KindBarrier Kind = iota
	KindExit
)

// Obstacle is a static axis-aligned rectangular barrier blocking ball
// movement. Obstacles are recomputed wholesale from the field size; none
// keeps identity across resizes.
type Obstacle struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Kind   Kind
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.Left + o.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (o Obstacle) Bottom() float64 {
	return o.Top + o.Height
}

// Delta is one tick's worth of integrated tilt, already converted to a planar
// displacement in field pixels. Produced by the sensor layer, consumed
// immediately, never retained.
type Delta struct {
	DX float64
	DY float64
}
