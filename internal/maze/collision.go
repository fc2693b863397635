package maze

// clampAxis restricts v to [lo, hi], saturating to lo when the interval is
// inverted (a field smaller than the ball diameter). The bounds never flip,
// so movement on an unsized field degrades to a fixed point instead of
// producing out-of-range coordinates.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// circleHitsRect reports whether a circle at (cx, cy) touches the obstacle.
// The closest rectangle point is found by clamping the center into the
// rectangle; grazing contact at exactly radius distance counts as a hit.
// Exact for a solid ball against a solid rectangle, including edges and
// corners.
func circleHitsRect(cx, cy, radius float64, o Obstacle) bool {
	closestX := clampAxis(cx, o.Left, o.Right())
	closestY := clampAxis(cy, o.Top, o.Bottom())

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= radius*radius
}
