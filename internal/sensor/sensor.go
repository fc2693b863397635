// Package sensor produces the tilt signal that drives the ball: sample
// sources (a key-driven virtual gyroscope and a self-playing pilot), the
// integrator that turns raw angular rates into movement deltas, and a scoped
// subscription pumping samples from a source into a bounded channel.
package sensor

import "time"

// Sample is one reading of a 3-axis angular-rate sensor. Axis 0 is pitch
// (tilting toward or away from the player), axis 1 is roll (tilting left or
// right); axis 2 is unused by the movement mapping.
type Sample struct {
	Rate [3]float64 // angular rate per axis
	At   time.Time  // reading timestamp, drives the integration interval
}

// Source is anything that can be polled for tilt readings.
type Source interface {
	// Read returns the current reading stamped with the given time.
	Read(now time.Time) Sample
}
