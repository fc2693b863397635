package sensor

import (
	"time"

	"github.com/dkorolev/tiltmaze/internal/maze"
)

// Sensitivity converts integrated angular rate into field pixels. It is part
// of the movement feel and deliberately not configurable.
const Sensitivity = 180.0

// Integrator turns consecutive samples into movement deltas by integrating
// the angular rate over the elapsed time between readings.
//
// The first sample after construction or Reset only establishes the
// timestamp baseline and produces no delta.
type Integrator struct {
	last   time.Time
	primed bool
}

// NewIntegrator returns an integrator waiting for its baseline sample.
func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Integrate consumes one sample. The boolean is false while the integrator
// is establishing its baseline or when the sample does not advance time.
//
// Roll (axis 1) maps to horizontal displacement; pitch (axis 0) maps to
// vertical with the sign flipped, so tilting toward the player moves the
// ball down the screen.
func (it *Integrator) Integrate(s Sample) (maze.Delta, bool) {
	if !it.primed {
		it.last = s.At
		it.primed = true
		return maze.Delta{}, false
	}

	dt := s.At.Sub(it.last).Seconds()
	if dt <= 0 {
		return maze.Delta{}, false
	}
	it.last = s.At

	return maze.Delta{
		DX: s.Rate[1] * Sensitivity * dt,
		DY: -s.Rate[0] * Sensitivity * dt,
	}, true
}

// Reset drops the timestamp baseline, as after a re-subscription: the next
// sample is discarded again.
func (it *Integrator) Reset() {
	it.primed = false
}
