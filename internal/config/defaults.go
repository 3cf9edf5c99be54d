package config

import (
	_ "embed"
)

//go:embed defaults/chroma.yaml
var defaultChromaYAML []byte

//go:embed defaults/zen.yaml
var defaultZenYAML []byte

// DefaultChromaConfig returns the default campaign configuration.
func DefaultChromaConfig() ChromaConfig {
	return ChromaConfig{
		Board: BoardConfig{
			Size:          4,
			Palette:       3,
			ScrambleMoves: 8,
		},
		Modifiers: ModifierConfig{
			PowerTiles:   1,
			LockedTiles:  1,
			MaxLockTurns: 3,
		},
		Solver: SolverConfig{
			MaxStates: 10000,
			MaxDepth:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SizeBonus:     2,
				PaletteBonus:  1,
				ScrambleBonus: 8,
				PowerBonus:    2,
				LockedBonus:   2,
			},
		},
	}
}

// DefaultZenConfig returns the default zen-mode configuration: a fixed
// board with no modifiers and no progression.
func DefaultZenConfig() ChromaConfig {
	return ChromaConfig{
		Board: BoardConfig{
			Size:          5,
			Palette:       3,
			ScrambleMoves: 10,
		},
		Solver: SolverConfig{
			MaxStates: 10000,
			MaxDepth:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chroma":
		return defaultChromaYAML
	case "zen":
		return defaultZenYAML
	default:
		return nil
	}
}
