package config

// FeelPreset is a named tilt response. Presets are static choices made before
// a run starts; nothing changes mid-game.
type FeelPreset string

const (
	FeelGentle   FeelPreset = "gentle"
	FeelStandard FeelPreset = "standard"
	FeelTwitchy  FeelPreset = "twitchy"
)

// Presets lists the selectable feel presets in menu order.
func Presets() []FeelPreset {
	return []FeelPreset{FeelGentle, FeelStandard, FeelTwitchy}
}

// ValidFeel reports whether the string names a known preset.
func ValidFeel(s string) bool {
	switch FeelPreset(s) {
	case FeelGentle, FeelStandard, FeelTwitchy:
		return true
	}
	return false
}

// ApplyFeelPreset scales the tilt response for a preset. The standard preset
// leaves the configured values untouched.
func ApplyFeelPreset(cfg *MazeConfig, preset FeelPreset) {
	switch preset {
	case FeelGentle:
		cfg.Tilt.Impulse *= 0.6
		cfg.Tilt.MaxRate *= 0.7
	case FeelTwitchy:
		cfg.Tilt.Impulse *= 1.6
		cfg.Tilt.MaxRate *= 1.5
	}
}
