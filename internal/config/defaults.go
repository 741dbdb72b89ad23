package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the hardcoded default configuration.
// It mirrors defaults/life.yaml.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Board: BoardConfig{
			CellSize: 1,
		},
		Simulation: SimulationConfig{
			IntervalMS:       250,
			StopOnExtinction: true,
			ToastMS:          2000,
		},
		Seeding: SeedingConfig{
			Probability: 0.25,
		},
		Colors: ColorsConfig{
			Live:   "bright_white",
			Dead:   "dark_gray",
			Eraser: "bright_red",
			HUD:    "gray",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
