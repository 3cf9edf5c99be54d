package config

import "math"

// DifficultyManager scales puzzle parameters as the player clears levels.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
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

// Level returns the difficulty level (0.0 to 1.0) for a 1-based puzzle level.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(level-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BoardSize returns the grid side length for a puzzle level.
func (d *DifficultyManager) BoardSize(base, level int) int {
	return base + scaled(d.Level(level), d.cfg.Scaling.SizeBonus)
}

// Palette returns the palette size for a puzzle level, capped at 8 colors to
// keep the board readable.
func (d *DifficultyManager) Palette(base, level int) int {
	p := base + scaled(d.Level(level), d.cfg.Scaling.PaletteBonus)
	if p > 8 {
		p = 8
	}
	return p
}

// ScrambleMoves returns the scramble length for a puzzle level.
func (d *DifficultyManager) ScrambleMoves(base, level int) int {
	return base + scaled(d.Level(level), d.cfg.Scaling.ScrambleBonus)
}

// PowerTiles returns the power tile count for a puzzle level.
func (d *DifficultyManager) PowerTiles(base, level int) int {
	return base + scaled(d.Level(level), d.cfg.Scaling.PowerBonus)
}

// LockedTiles returns the locked tile count for a puzzle level.
func (d *DifficultyManager) LockedTiles(base, level int) int {
	return base + scaled(d.Level(level), d.cfg.Scaling.LockedBonus)
}

// scaled converts a difficulty level and a max bonus into a concrete bonus.
func scaled(level float64, bonus int) int {
	return int(level * float64(bonus))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
