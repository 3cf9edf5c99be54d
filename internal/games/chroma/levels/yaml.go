// Package levels provides puzzle file loading and saving for Chroma.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

// YAMLPuzzle represents the YAML structure for a puzzle file.
type YAMLPuzzle struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Size     int               `yaml:"size"`
	Palette  int               `yaml:"palette"`
	Rows     [][]uint8         `yaml:"rows"`
	Power    []YAMLCoord       `yaml:"power,omitempty"`
	Locked   []YAMLLock        `yaml:"locked,omitempty"`
	Solution []YAMLCoord       `yaml:"solution,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCoord represents a grid coordinate in YAML format.
type YAMLCoord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// YAMLLock represents a locked tile with its remaining counter.
type YAMLLock struct {
	Row   int `yaml:"row"`
	Col   int `yaml:"col"`
	Turns int `yaml:"turns"`
}

// Puzzle is a parsed puzzle file ready for play.
type Puzzle struct {
	ID       string
	Name     string
	Instance *puzzle.PuzzleInstance
	FilePath string
}

// ParseYAML parses and validates a YAML puzzle file.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yp.Size < 2 {
		return Puzzle{}, fmt.Errorf("puzzle %q: size %d, need at least 2", yp.ID, yp.Size)
	}
	if yp.Palette < 2 || yp.Palette > 255 {
		return Puzzle{}, fmt.Errorf("puzzle %q: palette %d outside [2,255]", yp.ID, yp.Palette)
	}
	if len(yp.Rows) != yp.Size {
		return Puzzle{}, fmt.Errorf("puzzle %q: %d rows for size %d", yp.ID, len(yp.Rows), yp.Size)
	}
	for r, row := range yp.Rows {
		if len(row) != yp.Size {
			return Puzzle{}, fmt.Errorf("puzzle %q: row %d has %d cells for size %d", yp.ID, r, len(row), yp.Size)
		}
		for c, v := range row {
			if int(v) >= yp.Palette {
				return Puzzle{}, fmt.Errorf("puzzle %q: cell (%d,%d) value %d outside palette %d", yp.ID, r, c, v, yp.Palette)
			}
		}
	}

	grid := puzzle.GridFromRows(yp.Rows)
	power := puzzle.NewPowerTileSet(yp.Size)
	for _, p := range yp.Power {
		c := puzzle.At(p.Row, p.Col)
		if !grid.InBounds(c) {
			return Puzzle{}, fmt.Errorf("puzzle %q: power tile %v out of range", yp.ID, c)
		}
		power.Add(c)
	}

	locks := puzzle.NewLockedTileMap(yp.Size)
	for _, l := range yp.Locked {
		c := puzzle.At(l.Row, l.Col)
		if !grid.InBounds(c) {
			return Puzzle{}, fmt.Errorf("puzzle %q: locked tile %v out of range", yp.ID, c)
		}
		if l.Turns < 1 || l.Turns > 255 {
			return Puzzle{}, fmt.Errorf("puzzle %q: lock counter %d at %v outside [1,255]", yp.ID, l.Turns, c)
		}
		locks.Lock(c, l.Turns)
	}

	var certified []puzzle.Coord
	for _, mv := range yp.Solution {
		c := puzzle.At(mv.Row, mv.Col)
		if !grid.InBounds(c) {
			return Puzzle{}, fmt.Errorf("puzzle %q: solution move %v out of range", yp.ID, c)
		}
		certified = append(certified, c)
	}

	return Puzzle{
		ID:   yp.ID,
		Name: yp.Name,
		Instance: &puzzle.PuzzleInstance{
			Grid:      grid,
			Palette:   yp.Palette,
			Power:     power,
			Locks:     locks,
			Certified: certified,
		},
	}, nil
}

// EncodeYAML serializes a puzzle instance to the YAML file format.
func EncodeYAML(id, name string, inst *puzzle.PuzzleInstance) ([]byte, error) {
	yp := YAMLPuzzle{
		ID:      id,
		Name:    name,
		Size:    inst.Grid.Size,
		Palette: inst.Palette,
		Rows:    inst.Grid.Rows(),
	}
	for _, c := range inst.Power.Coords() {
		yp.Power = append(yp.Power, YAMLCoord{Row: c.Row, Col: c.Col})
	}
	for _, c := range inst.Locks.Coords() {
		yp.Locked = append(yp.Locked, YAMLLock{Row: c.Row, Col: c.Col, Turns: inst.Locks.Turns(c)})
	}
	for _, mv := range inst.Certified {
		yp.Solution = append(yp.Solution, YAMLCoord{Row: mv.Row, Col: mv.Col})
	}
	return yaml.Marshal(yp)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
