package config

import "math"

// DifficultyManager calculates dynamic spawn parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score
// or elapsed seconds.
func (d *DifficultyManager) Level(score int, seconds float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = seconds / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ItemInterval shortens a base item spawn interval (in ticks) as difficulty rises.
func (d *DifficultyManager) ItemInterval(base int, score int, seconds float64) int {
	return reduce(base, d.Level(score, seconds)*d.cfg.Scaling.ItemIntervalReduction)
}

// PowerupInterval shortens a base pickup spawn interval (in ticks) as difficulty rises.
func (d *DifficultyManager) PowerupInterval(base int, score int, seconds float64) int {
	return reduce(base, d.Level(score, seconds)*d.cfg.Scaling.PowerupIntervalReduction)
}

func reduce(base int, fraction float64) int {
	fraction = clampF(fraction, 0.0, 0.9)
	return max(1, int(math.Round(float64(base)*(1.0-fraction))))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
