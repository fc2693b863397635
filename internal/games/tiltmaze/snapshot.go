package tiltmaze

// Snapshot is a pull-style view of the simulation: plain values captured on
// the update goroutine, safe to hand to tests or tooling without touching
// the engine.
type Snapshot struct {
	Tick   int
	X      float64
	Y      float64
	Radius float64
	FieldW float64
	FieldH float64
	State  string
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	x, y := g.engine.Position()
	f := g.engine.Field()

	return Snapshot{
		Tick:   g.tickCount,
		X:      x,
		Y:      y,
		Radius: g.engine.Radius(),
		FieldW: f.Width,
		FieldH: f.Height,
		State:  g.state,
	}
}
