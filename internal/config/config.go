// Package config provides YAML-based configuration loading and speed presets
// for the life simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// LifeConfig contains all configuration for the simulation.
type LifeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Simulation SimulationConfig `yaml:"simulation"`
	Seeding    SeedingConfig    `yaml:"seeding"`
	Colors     ColorsConfig     `yaml:"colors"`
}

// BoardConfig defines how the board maps onto the terminal.
type BoardConfig struct {
	CellSize int `yaml:"cell_size"` // Terminal characters per cell edge
}

// SimulationConfig defines the timed loop.
type SimulationConfig struct {
	IntervalMS       int    `yaml:"interval_ms"`
	StopOnExtinction bool   `yaml:"stop_on_extinction"`
	ToastMS          int    `yaml:"toast_ms"`
	Pattern          string `yaml:"pattern"`
}

// SeedingConfig defines random fill.
type SeedingConfig struct {
	Probability float64 `yaml:"probability"`
}

// ColorsConfig names the colors used for rendering (see core.ParseColor).
type ColorsConfig struct {
	Live   string `yaml:"live"`
	Dead   string `yaml:"dead"`
	Eraser string `yaml:"eraser"`
	HUD    string `yaml:"hud"`
}

// Validate reports the first setting that cannot be used.
func (c LifeConfig) Validate() error {
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: board.cell_size %d must be positive: %w", c.Board.CellSize, ErrInvalidConfig)
	}
	if c.Simulation.IntervalMS <= 0 {
		return fmt.Errorf("config: simulation.interval_ms %d must be positive: %w", c.Simulation.IntervalMS, ErrInvalidConfig)
	}
	if c.Simulation.ToastMS < 0 {
		return fmt.Errorf("config: simulation.toast_ms %d must not be negative: %w", c.Simulation.ToastMS, ErrInvalidConfig)
	}
	p := c.Seeding.Probability
	if p != p || p < 0 || p > 1 {
		return fmt.Errorf("config: seeding.probability %v must be within [0, 1]: %w", p, ErrInvalidConfig)
	}
	for field, name := range map[string]string{
		"colors.live":   c.Colors.Live,
		"colors.dead":   c.Colors.Dead,
		"colors.eraser": c.Colors.Eraser,
		"colors.hud":    c.Colors.HUD,
	} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: %s %q is not a known color: %w", field, name, ErrInvalidConfig)
		}
	}
	return nil
}

// Palette resolves the configured color names.
// Unknown names fall back to the defaults.
func (c LifeConfig) Palette() Palette {
	def := DefaultLifeConfig().Colors
	return Palette{
		Live:   colorOr(c.Colors.Live, def.Live),
		Dead:   colorOr(c.Colors.Dead, def.Dead),
		Eraser: colorOr(c.Colors.Eraser, def.Eraser),
		HUD:    colorOr(c.Colors.HUD, def.HUD),
	}
}

// Palette holds resolved rendering colors.
type Palette struct {
	Live   core.Color
	Dead   core.Color
	Eraser core.Color
	HUD    core.Color
}

func colorOr(name, fallback string) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	c, _ := core.ParseColor(fallback)
	return c
}
