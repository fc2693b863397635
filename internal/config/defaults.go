package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hardcoded default configuration, used when
// the embedded YAML cannot be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Tilt: TiltConfig{
			Impulse:        0.4,
			Decay:          0.92,
			MaxRate:        3.0,
			SamplePeriodMS: 10,
			DemoGain:       1.2,
		},
		Render: RenderConfig{
			CellWidth:  12,
			CellHeight: 24,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMazeYAML
}
