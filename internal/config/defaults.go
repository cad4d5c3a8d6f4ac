package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Speed:   3.5,
			MinSize: 35,
			MaxSize: 70,
		},
		Display: Display{
			ElementID:  "rectangle",
			CellWidth:  8,
			CellHeight: 16,
			Fill:       "█",
			Color:      "bright_cyan",
		},
		Runtime: Runtime{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
