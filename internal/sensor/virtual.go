package sensor

import (
	"sync"
	"time"

	"github.com/dkorolev/tiltmaze/internal/core"
)

// VirtualTilt simulates a gyroscope for terminals, which have neither a real
// tilt sensor nor key-release events. Steering impulses raise the angular
// rate and every reading decays it back toward level, approximating a device
// that is tilted and then slowly righted.
//
// Steer runs on the game goroutine while Read runs on the sampling
// goroutine, so the rate state is mutex-guarded.
type VirtualTilt struct {
	mu      sync.Mutex
	rate    [3]float64
	impulse float64 // rate added per steering press
	decay   float64 // per-read multiplier pulling rates back to level
	maxRate float64 // cap on the absolute rate per axis
}

// NewVirtualTilt returns a virtual sensor with the given feel parameters.
func NewVirtualTilt(impulse, decay, maxRate float64) *VirtualTilt {
	return &VirtualTilt{
		impulse: impulse,
		decay:   decay,
		maxRate: maxRate,
	}
}

// Steer applies one tick of key input: dx and dy in {-1, 0, 1} for the held
// horizontal and vertical directions. Positive dy tilts toward the player,
// which moves the ball down the screen once integrated.
func (v *VirtualTilt) Steer(dx, dy float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rate[1] = core.ClampF(v.rate[1]+dx*v.impulse, -v.maxRate, v.maxRate)
	v.rate[0] = core.ClampF(v.rate[0]-dy*v.impulse, -v.maxRate, v.maxRate)
}

// Level zeroes the rates, as if the device were laid flat. Used when the
// game pauses so the ball does not drift on resume.
func (v *VirtualTilt) Level() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rate = [3]float64{}
}

// Read returns the current reading and decays the rates toward level.
func (v *VirtualTilt) Read(now time.Time) Sample {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Sample{Rate: v.rate, At: now}
	for i := range v.rate {
		v.rate[i] *= v.decay
	}
	return s
}
