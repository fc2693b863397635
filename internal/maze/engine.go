package maze

// Engine owns the ball position and the play field it moves in. All inputs
// are treated as valid numeric values; degenerate geometry is absorbed by
// saturating clamps, so no operation can fail.
type Engine struct {
	field Field
	ballX float64
	ballY float64
}

// NewEngine returns an engine with no field and an unplaced ball.
func NewEngine() *Engine {
	return &Engine{}
}

// SetField replaces the play field. The first call with a positive width
// places the ball at the field center; later calls only swap the bounds.
// Obstacle recomputation is the caller's job (BuildLayout), kept separate so
// rendering and physics can re-derive independently.
//
// The zero position doubles as the "never placed" marker. The center of a
// positively sized field is never (0,0), so placement cannot retrigger once
// the ball exists.
func (e *Engine) SetField(width, height float64) {
	e.field = Field{Width: width, Height: height}
	if e.ballX == 0 && e.ballY == 0 && width > 0 {
		e.ballX = width / 2
		e.ballY = height / 2
	}
}

// ApplyMovement moves the ball by one delta. The candidate position is
// clamped into the field independently per axis, then tested against every
// obstacle; any contact discards the whole move and the ball stays exactly
// where it was. No sliding along a blocking edge, no partial movement.
//
// An empty obstacle slice means free movement within the field bounds.
func (e *Engine) ApplyMovement(d Delta, obstacles []Obstacle) {
	candX := clampAxis(e.ballX+d.DX, BallRadius, e.field.Width-BallRadius)
	candY := clampAxis(e.ballY+d.DY, BallRadius, e.field.Height-BallRadius)

	for _, o := range obstacles {
		if circleHitsRect(candX, candY, BallRadius, o) {
			return
		}
	}

	e.ballX = candX
	e.ballY = candY
}

// Position returns the current ball center.
func (e *Engine) Position() (x, y float64) {
	return e.ballX, e.ballY
}

// Radius returns the fixed ball radius.
func (e *Engine) Radius() float64 {
	return BallRadius
}

// Field returns the current play field.
func (e *Engine) Field() Field {
	return e.field
}
