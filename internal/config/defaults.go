package config

import (
	_ "embed"
)

//go:embed defaults/barista.yaml
var defaultBaristaYAML []byte

// DefaultBaristaConfig returns the built-in tiers. It matches the embedded
// defaults/barista.yaml and is used only if that file fails to parse.
func DefaultBaristaConfig() BaristaConfig {
	return BaristaConfig{
		CupCapacity:        5,
		ScrambleIterations: 10000,
		MaxRescrambles:     8,
		DefaultDifficulty:  "medium",
		Tiers: map[string]TierConfig{
			"easy": {
				Colors:    []string{"red", "green"},
				EmptyCups: 1,
			},
			"medium": {
				Colors:    []string{"red", "green", "blue", "baby_blue", "pink", "yellow"},
				EmptyCups: 2,
			},
			"hard": {
				Colors:    []string{"red", "green", "blue", "baby_blue", "pink", "yellow", "green", "pink"},
				EmptyCups: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBaristaYAML
}
