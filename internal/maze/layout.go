package maze

// Fixed dimensions of the moving parts, in field pixels.
const (
	// BallRadius is the ball radius. The clamp logic assumes
	// radius <= min(width, height)/2 for a playable field.
	BallRadius = 25.0

	// WallThickness is the obstacle thickness. It deliberately does not scale
	// with the field: corridors keep their absolute width at any field size.
	WallThickness = 30.0
)

// Barrier placement as fractions of the field dimensions.
const (
	barrierX    = 0.30 // vertical barrier pair: left edge
	upperHeight = 0.50 // upper barrier: height
	lowerTop    = 0.60 // lower barrier: top (the 0.50H-0.60H band is the gap)
	lowerHeight = 0.40 // lower barrier: height
	shelfTop    = 0.75 // horizontal barrier: top
	shelfWidth  = 0.70 // horizontal barrier: width (right 30% stays open)
	exitX       = 0.85 // exit barrier: left edge
	exitTop     = 0.20 // exit barrier: top
	exitHeight  = 0.60 // exit barrier: height
)

// MinTraversableField returns the smallest field on which every passage of
// the built layout is wider than the ball diameter, so no region of the maze
// is sealed off. The narrowest passages are the vertical gap between the two
// left barriers (0.10 of the height) and the horizontal gap between the shelf
// and the exit barrier (0.15 of the width). BuildLayout itself accepts any
// field; hosts use this to refuse windows too small to play in.
func MinTraversableField() Field {
	return Field{
		Width:  2 * BallRadius / (exitX - shelfWidth),
		Height: 2 * BallRadius / (lowerTop - upperHeight),
	}
}

// BuildLayout derives the obstacle set for a field: four barriers forming a
// partial maze with one guaranteed gap through the vertical pair. Pure and
// deterministic; the same field always yields bit-identical obstacles, so
// callers may invoke it on every resize without caching.
//
// A field without a positive width yields no obstacles.
func BuildLayout(f Field) []Obstacle {
	if f.Width <= 0 {
		return nil
	}

	return []Obstacle{
		{Left: barrierX * f.Width, Top: 0, Width: WallThickness, Height: upperHeight * f.Height},
		{Left: barrierX * f.Width, Top: lowerTop * f.Height, Width: WallThickness, Height: lowerHeight * f.Height},
		{Left: 0, Top: shelfTop * f.Height, Width: shelfWidth * f.Width, Height: WallThickness},
		{Left: exitX * f.Width, Top: exitTop * f.Height, Width: WallThickness, Height: exitHeight * f.Height, Kind: KindExit},
	}
}
