package maze

import "testing"

func TestSetFieldCentersBallOnce(t *testing.T) {
	e := NewEngine()

	e.SetField(400, 800)
	x, y := e.Position()
	if x != 200 || y != 400 {
		t.Fatalf("ball after first SetField = (%.2f, %.2f), expected (200, 400)", x, y)
	}

	// Move the ball, then resize: the ball must keep its position.
	e.ApplyMovement(Delta{DX: 5}, nil)
	e.SetField(400, 800)
	if x, y = e.Position(); x != 205 || y != 400 {
		t.Errorf("identical resize moved the ball to (%.2f, %.2f), expected (205, 400)", x, y)
	}
	e.SetField(600, 900)
	if x, y = e.Position(); x != 205 || y != 400 {
		t.Errorf("resize re-centered the ball to (%.2f, %.2f), expected (205, 400)", x, y)
	}
}

func TestSetFieldZeroWidthDefersPlacement(t *testing.T) {
	e := NewEngine()

	e.SetField(0, 800)
	if x, y := e.Position(); x != 0 || y != 0 {
		t.Fatalf("ball placed on a zero-width field at (%.2f, %.2f)", x, y)
	}

	// The first properly sized field places the ball.
	e.SetField(400, 800)
	if x, y := e.Position(); x != 200 || y != 400 {
		t.Errorf("ball after sized SetField = (%.2f, %.2f), expected (200, 400)", x, y)
	}
}

func TestApplyMovementZeroDelta(t *testing.T) {
	e := NewEngine()
	e.SetField(400, 800)
	obstacles := BuildLayout(e.Field())

	tests := []struct {
		name string
		x, y float64
	}{
		{"field center", 200, 400},
		{"next to the upper barrier", 175, 200},
		{"near the field edge", 26, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e.ballX, e.ballY = tc.x, tc.y
			for i := 0; i < 3; i++ {
				e.ApplyMovement(Delta{}, obstacles)
			}
			if x, y := e.Position(); x != tc.x || y != tc.y {
				t.Errorf("zero delta moved the ball from (%.2f, %.2f) to (%.2f, %.2f)", tc.x, tc.y, x, y)
			}
		})
	}
}

func TestApplyMovementBoundaryClamp(t *testing.T) {
	tests := []struct {
		name  string
		delta Delta
		wantX float64
		wantY float64
	}{
		{"push right", Delta{DX: 1e6}, 375, 400},
		{"push left", Delta{DX: -1e6}, 25, 400},
		{"push down", Delta{DY: 1e6}, 200, 775},
		{"push up", Delta{DY: -1e6}, 200, 25},
		{"push corner", Delta{DX: -1e6, DY: -1e6}, 25, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine()
			e.SetField(400, 800)
			e.ApplyMovement(tc.delta, nil)

			x, y := e.Position()
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("position = (%.2f, %.2f), expected (%.2f, %.2f)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestApplyMovementObstacleRejection(t *testing.T) {
	e := NewEngine()
	e.SetField(400, 800)
	obstacles := BuildLayout(e.Field())

	// Candidate (135, 200) lands inside the upper barrier (x 120-150): the
	// whole move is discarded, both axes included.
	e.ApplyMovement(Delta{DX: -65, DY: -200}, obstacles)

	if x, y := e.Position(); x != 200 || y != 400 {
		t.Errorf("rejected move changed position to (%.2f, %.2f), expected (200, 400)", x, y)
	}
}

func TestApplyMovementRepeatedSteps(t *testing.T) {
	e := NewEngine()
	e.SetField(400, 800)

	for i := 0; i < 10; i++ {
		e.ApplyMovement(Delta{DX: 5}, nil)
	}

	if x, y := e.Position(); x != 250 || y != 400 {
		t.Errorf("after 10 steps of +5: position = (%.2f, %.2f), expected (250, 400)", x, y)
	}
}

func TestApplyMovementHugeDelta(t *testing.T) {
	// Without obstacles the candidate clamps to the right bound and commits.
	e := NewEngine()
	e.SetField(400, 800)
	e.ApplyMovement(Delta{DX: 1000}, nil)
	if x, y := e.Position(); x != 375 || y != 400 {
		t.Fatalf("clamped position = (%.2f, %.2f), expected (375, 400)", x, y)
	}

	// With the real layout the clamped candidate (375, 400) sits 5 px from
	// the exit barrier (right edge 370), inside the ball radius: rejected.
	e = NewEngine()
	e.SetField(400, 800)
	e.ApplyMovement(Delta{DX: 1000}, BuildLayout(e.Field()))
	if x, y := e.Position(); x != 200 || y != 400 {
		t.Errorf("position = (%.2f, %.2f), expected the move rejected at (200, 400)", x, y)
	}
}

func TestApplyMovementUnsizedField(t *testing.T) {
	// Degenerate bounds saturate to the radius point instead of inverting.
	e := NewEngine()
	e.SetField(0, 0)
	e.ApplyMovement(Delta{DX: 50, DY: 50}, nil)

	if x, y := e.Position(); x != BallRadius || y != BallRadius {
		t.Errorf("position on an unsized field = (%.2f, %.2f), expected (%.1f, %.1f)",
			x, y, float64(BallRadius), float64(BallRadius))
	}
}

func TestEngineAccessors(t *testing.T) {
	e := NewEngine()
	e.SetField(640, 480)

	if r := e.Radius(); r != BallRadius {
		t.Errorf("Radius() = %.2f, expected %.2f", r, float64(BallRadius))
	}
	if f := e.Field(); f.Width != 640 || f.Height != 480 {
		t.Errorf("Field() = %+v, expected {640 480}", f)
	}
}
