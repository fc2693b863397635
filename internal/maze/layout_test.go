package maze

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildLayoutGeometry(t *testing.T) {
	// Reference field from the 400x800 portrait layout.
	got := BuildLayout(Field{Width: 400, Height: 800})

	expected := []Obstacle{
		{Left: 120, Top: 0, Width: 30, Height: 400, Kind: KindBarrier},
		{Left: 120, Top: 480, Width: 30, Height: 320, Kind: KindBarrier},
		{Left: 0, Top: 600, Width: 280, Height: 30, Kind: KindBarrier},
		{Left: 340, Top: 160, Width: 30, Height: 480, Kind: KindExit},
	}

	if len(got) != len(expected) {
		t.Fatalf("BuildLayout returned %d obstacles, expected %d", len(got), len(expected))
	}

	for i, want := range expected {
		o := got[i]
		if !almostEqual(o.Left, want.Left) || !almostEqual(o.Top, want.Top) ||
			!almostEqual(o.Width, want.Width) || !almostEqual(o.Height, want.Height) {
			t.Errorf("obstacle %d = {%.2f %.2f %.2f %.2f}, expected {%.2f %.2f %.2f %.2f}",
				i, o.Left, o.Top, o.Width, o.Height, want.Left, want.Top, want.Width, want.Height)
		}
		if o.Kind != want.Kind {
			t.Errorf("obstacle %d kind = %d, expected %d", i, o.Kind, want.Kind)
		}
	}
}

func TestBuildLayoutWithinBounds(t *testing.T) {
	fields := []struct {
		name string
		f    Field
	}{
		{"portrait", Field{Width: 400, Height: 800}},
		{"landscape", Field{Width: 960, Height: 576}},
		{"square", Field{Width: 600, Height: 600}},
		{"large", Field{Width: 2560, Height: 1440}},
	}

	for _, tc := range fields {
		t.Run(tc.name, func(t *testing.T) {
			obstacles := BuildLayout(tc.f)
			if len(obstacles) != 4 {
				t.Fatalf("expected 4 obstacles, got %d", len(obstacles))
			}

			for i, o := range obstacles {
				if o.Width <= 0 || o.Height <= 0 {
					t.Errorf("obstacle %d has non-positive size: %.2f x %.2f", i, o.Width, o.Height)
				}
				if o.Left < 0 || o.Top < 0 {
					t.Errorf("obstacle %d starts outside the field: (%.2f, %.2f)", i, o.Left, o.Top)
				}
				if o.Right() > tc.f.Width+1e-9 {
					t.Errorf("obstacle %d right edge %.2f exceeds field width %.2f", i, o.Right(), tc.f.Width)
				}
				if o.Bottom() > tc.f.Height+1e-9 {
					t.Errorf("obstacle %d bottom edge %.2f exceeds field height %.2f", i, o.Bottom(), tc.f.Height)
				}
			}
		})
	}
}

func TestBuildLayoutGap(t *testing.T) {
	f := Field{Width: 1000, Height: 1000}
	obstacles := BuildLayout(f)

	// The vertical pair shares an x band and leaves the only passage between
	// 0.50H and 0.60H.
	upper, lower := obstacles[0], obstacles[1]
	if !almostEqual(upper.Left, lower.Left) || !almostEqual(upper.Width, lower.Width) {
		t.Errorf("vertical barriers are not aligned: upper x [%.2f, %.2f], lower x [%.2f, %.2f]",
			upper.Left, upper.Right(), lower.Left, lower.Right())
	}
	gap := lower.Top - upper.Bottom()
	if !almostEqual(gap, 0.10*f.Height) {
		t.Errorf("vertical gap = %.2f, expected %.2f", gap, 0.10*f.Height)
	}

	// The horizontal barrier leaves the right 30% open.
	shelf := obstacles[2]
	if !almostEqual(f.Width-shelf.Right(), 0.30*f.Width) {
		t.Errorf("open span right of the shelf = %.2f, expected %.2f", f.Width-shelf.Right(), 0.30*f.Width)
	}
}

func TestBuildLayoutFixedThickness(t *testing.T) {
	// Corridor width is constant: walls stay 30 px thick on any field.
	small := BuildLayout(Field{Width: 300, Height: 400})
	large := BuildLayout(Field{Width: 3000, Height: 4000})

	for i := range small {
		smallThk, largeThk := small[i].Width, large[i].Width
		if i == 2 {
			smallThk, largeThk = small[i].Height, large[i].Height
		}
		if smallThk != WallThickness || largeThk != WallThickness {
			t.Errorf("obstacle %d thickness = %.2f / %.2f, expected %.2f on both fields",
				i, smallThk, largeThk, float64(WallThickness))
		}
	}
}

func TestBuildLayoutDeterministic(t *testing.T) {
	f := Field{Width: 640, Height: 480}

	first := BuildLayout(f)
	second := BuildLayout(f)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("obstacle %d differs between identical calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMinTraversableField(t *testing.T) {
	bound := MinTraversableField()

	// 50 px diameter through the 0.10H vertical gap and the 0.15W
	// shelf-to-exit gap.
	if !almostEqual(bound.Width, 2*BallRadius/0.15) {
		t.Errorf("min width = %.4f, expected %.4f", bound.Width, 2*BallRadius/0.15)
	}
	if !almostEqual(bound.Height, 2*BallRadius/0.10) {
		t.Errorf("min height = %.4f, expected %.4f", bound.Height, 2*BallRadius/0.10)
	}

	// On a field strictly above the minimum, both narrow passages admit the
	// ball with room to spare.
	f := Field{Width: bound.Width * 1.2, Height: bound.Height * 1.2}
	obstacles := BuildLayout(f)

	verticalGap := obstacles[1].Top - obstacles[0].Bottom()
	if verticalGap <= 2*BallRadius {
		t.Errorf("vertical gap %.2f does not admit the ball (diameter %.2f)", verticalGap, 2*BallRadius)
	}
	exitGap := obstacles[3].Left - obstacles[2].Right()
	if exitGap <= 2*BallRadius {
		t.Errorf("shelf-to-exit gap %.2f does not admit the ball (diameter %.2f)", exitGap, 2*BallRadius)
	}
}

func TestBuildLayoutUnsizedField(t *testing.T) {
	tests := []struct {
		name string
		f    Field
	}{
		{"zero field", Field{}},
		{"zero width", Field{Width: 0, Height: 800}},
		{"negative width", Field{Width: -100, Height: 800}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildLayout(tc.f); len(got) != 0 {
				t.Errorf("expected no obstacles, got %d", len(got))
			}
		})
	}
}
