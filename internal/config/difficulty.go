package config

import "time"

// DifficultyManager calculates dynamic game parameters from level or score.
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

// Level returns the current difficulty (0.0 to 1.0) for a game level and score.
// With difficulty disabled it is always 0 so the configured values apply as-is.
func (d *DifficultyManager) Level(gameLevel int, score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	default: // "level"
		progress = float64(gameLevel-1) / maxAt
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to asteroid speeds.
func (d *DifficultyManager) SpeedFactor(gameLevel, score int) float64 {
	return 1.0 + d.Level(gameLevel, score)*d.cfg.Scaling.SpeedMultiplier
}

// AlienDelay shortens the gap between aliens as difficulty rises.
// The result never drops below a quarter of the base delay.
func (d *DifficultyManager) AlienDelay(base time.Duration, gameLevel, score int) time.Duration {
	cut := time.Duration(d.Level(gameLevel, score) * float64(d.cfg.Scaling.AlienDelayReduction))
	floor := base / 4
	if base-cut < floor {
		return floor
	}
	return base - cut
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
