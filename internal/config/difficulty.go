package config

import "math"

// Upper bounds of the generator counts.
const (
	MaxEnemies    = 10
	MaxBreakables = 100
)

// DifficultyManager calculates generator counts based on how many maps the
// player has cleared.
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

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(mapsCleared int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(mapsCleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Enemies returns the enemy count for the next map.
func (d *DifficultyManager) Enemies(base, mapsCleared int) int {
	extra := int(d.Level(mapsCleared) * float64(d.cfg.Scaling.ExtraEnemies))
	return clamp(base+extra, 0, MaxEnemies)
}

// Breakables returns the breakable count for the next map.
func (d *DifficultyManager) Breakables(base, mapsCleared int) int {
	extra := int(d.Level(mapsCleared) * float64(d.cfg.Scaling.ExtraBreakables))
	return clamp(base+extra, 0, MaxBreakables)
}

func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
