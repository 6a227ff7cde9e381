package config

import "math"

// DifficultyManager calculates dynamic game parameters based on run time.
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

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of run seconds.
func (d *DifficultyManager) Level(seconds int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(seconds)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallSpeed returns the asteroid fall speed for the given run time.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) FallSpeed(base float64, seconds int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base * (1.0 + d.Level(seconds)*d.cfg.Scaling.SpeedMultiplier)
}

// MaxPerWave returns the maximum asteroids per wave for the given run time.
func (d *DifficultyManager) MaxPerWave(base int, seconds int) int {
	if !d.cfg.Enabled {
		return base
	}
	return base + int(d.Level(seconds)*float64(d.cfg.Scaling.ExtraAsteroids))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
