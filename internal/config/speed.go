package config

import "strings"

// SpeedPreset names a generation interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// speedLadder is ordered from slowest to fastest.
var speedLadder = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedTurbo}

// IntervalForPreset returns the generation interval in milliseconds.
// Unknown presets return 0.
func IntervalForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 500
	case SpeedNormal:
		return 250
	case SpeedFast:
		return 100
	case SpeedTurbo:
		return 40
	default:
		return 0
	}
}

// ParseSpeedPreset parses a preset name, case-insensitively.
func ParseSpeedPreset(s string) (SpeedPreset, bool) {
	p := SpeedPreset(strings.ToLower(strings.TrimSpace(s)))
	return p, IntervalForPreset(p) > 0
}

// ApplySpeedPreset sets the interval from a preset. Unknown presets are ignored.
func ApplySpeedPreset(cfg *LifeConfig, preset SpeedPreset) {
	if ms := IntervalForPreset(preset); ms > 0 {
		cfg.Simulation.IntervalMS = ms
	}
}

// Faster returns the closest preset interval shorter than ms, or ms if none is.
func Faster(ms int) int {
	for _, p := range speedLadder {
		if cand := IntervalForPreset(p); cand < ms {
			return cand
		}
	}
	return ms
}

// Slower returns the closest preset interval longer than ms, or ms if none is.
func Slower(ms int) int {
	for i := len(speedLadder) - 1; i >= 0; i-- {
		if cand := IntervalForPreset(speedLadder[i]); cand > ms {
			return cand
		}
	}
	return ms
}

// PresetForInterval names the preset matching ms, or "" for custom intervals.
func PresetForInterval(ms int) SpeedPreset {
	for _, p := range speedLadder {
		if IntervalForPreset(p) == ms {
			return p
		}
	}
	return ""
}
