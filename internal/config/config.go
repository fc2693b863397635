// Package config provides YAML-based configuration loading and tilt feel
// presets for the maze.
package config

// MazeConfig contains all configuration for the maze game. The motion core
// constants (ball radius, wall thickness, sensitivity) are fixed by the
// gameplay contract and deliberately absent here.
type MazeConfig struct {
	Tilt   TiltConfig   `yaml:"tilt"`
	Render RenderConfig `yaml:"render"`
}

// TiltConfig defines the simulated sensor feel.
type TiltConfig struct {
	Impulse        float64 `yaml:"impulse"`          // rate added per held steering key tick
	Decay          float64 `yaml:"decay"`            // per-sample multiplier pulling rates back to level
	MaxRate        float64 `yaml:"max_rate"`         // cap on the absolute rate per axis
	SamplePeriodMS int     `yaml:"sample_period_ms"` // sensor polling interval
	DemoGain       float64 `yaml:"demo_gain"`        // autopilot tilt magnitude
}

// RenderConfig defines how the virtual field maps onto terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`  // field pixels per terminal column
	CellHeight int `yaml:"cell_height"` // field pixels per terminal row
}

// SamplePeriodOrDefault guards against a missing or nonsense polling
// interval in user-provided configs.
func (t TiltConfig) SamplePeriodOrDefault() int {
	if t.SamplePeriodMS <= 0 {
		return DefaultMazeConfig().Tilt.SamplePeriodMS
	}
	return t.SamplePeriodMS
}

// CellWidthOrDefault guards against a missing or nonsense horizontal cell
// scale in user-provided configs.
func (r RenderConfig) CellWidthOrDefault() int {
	if r.CellWidth <= 0 {
		return DefaultMazeConfig().Render.CellWidth
	}
	return r.CellWidth
}

// CellHeightOrDefault guards against a missing or nonsense vertical cell
// scale in user-provided configs.
func (r RenderConfig) CellHeightOrDefault() int {
	if r.CellHeight <= 0 {
		return DefaultMazeConfig().Render.CellHeight
	}
	return r.CellHeight
}
