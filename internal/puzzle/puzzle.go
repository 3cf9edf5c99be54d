// Package puzzle provides the core logic for the Chroma grid-coloring game.
// This package is UI-agnostic and deterministic.
//
// A puzzle is an N×N grid of palette-indexed cells. Each click cyclically
// increments a cluster of cells around the clicked coordinate ("+" shaped by
// default, a full 3×3 block for power tiles), and the goal is to drive the
// whole grid to a single uniform color. Locked tiles are temporarily immune
// to color change and decay by one turn per click anywhere on the board.
package puzzle

import "fmt"

// Coord identifies a cell by row and column, both zero-based.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}
