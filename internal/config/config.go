// Package config provides YAML-based game configuration loading and
// difficulty management for the chroma platform.
package config

// ChromaConfig contains all configuration for the Chroma puzzle game.
type ChromaConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Modifiers  ModifierConfig   `yaml:"modifiers"`
	Solver     SolverConfig     `yaml:"solver"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the starting board parameters.
type BoardConfig struct {
	Size          int `yaml:"size"`           // Grid side length
	Palette       int `yaml:"palette"`        // Number of colors
	ScrambleMoves int `yaml:"scramble_moves"` // Scramble clicks per generated puzzle
}

// ModifierConfig defines how many special tiles each puzzle carries.
type ModifierConfig struct {
	PowerTiles   int `yaml:"power_tiles"`
	LockedTiles  int `yaml:"locked_tiles"`
	MaxLockTurns int `yaml:"max_lock_turns"`
}

// SolverConfig bounds the hint and solvability searches.
type SolverConfig struct {
	MaxStates int `yaml:"max_states"` // States explored before giving up
	MaxDepth  int `yaml:"max_depth"`  // Longest solution considered
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across puzzles.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SizeBonus     int `yaml:"size_bonus"`     // Extra grid side length
	PaletteBonus  int `yaml:"palette_bonus"`  // Extra colors
	ScrambleBonus int `yaml:"scramble_bonus"` // Extra scramble clicks
	PowerBonus    int `yaml:"power_bonus"`    // Extra power tiles
	LockedBonus   int `yaml:"locked_bonus"`   // Extra locked tiles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
