package puzzle

import "fmt"

// Grid represents the board as a square matrix of palette-indexed cells.
// Cells are stored in row-major order: index = row*Size + col.
type Grid struct {
	Size  int     // Side length of the square grid
	Cells []uint8 // Flat array of cell colors, length Size*Size
}

// NewUniformGrid creates a grid with every cell set to the same color.
func NewUniformGrid(size int, color uint8) *Grid {
	if size < 0 {
		panic(fmt.Sprintf("puzzle: negative grid size %d", size))
	}
	cells := make([]uint8, size*size)
	for i := range cells {
		cells[i] = color
	}
	return &Grid{Size: size, Cells: cells}
}

// GridFromRows creates a grid from a slice of rows.
// Panics if the rows do not form a square matrix.
func GridFromRows(rows [][]uint8) *Grid {
	size := len(rows)
	cells := make([]uint8, 0, size*size)
	for r, row := range rows {
		if len(row) != size {
			panic(fmt.Sprintf("puzzle: row %d has %d cells, want %d", r, len(row), size))
		}
		cells = append(cells, row...)
	}
	return &Grid{Size: size, Cells: cells}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Size + c.Col
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// At returns the color at the given coordinate.
// Panics on an out-of-range coordinate; that is a caller contract breach.
func (g *Grid) At(c Coord) uint8 {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("puzzle: coordinate %v out of range for size %d", c, g.Size))
	}
	return g.Cells[g.index(c)]
}

// set writes the color at the given coordinate without bounds checking.
func (g *Grid) set(c Coord, v uint8) {
	g.Cells[g.index(c)] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size {
		return false
	}
	for i, v := range g.Cells {
		if v != other.Cells[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical byte-string key for the grid contents.
// Used for visited-state deduplication in search.
func (g *Grid) Key() string {
	return string(g.Cells)
}

// IsWinning returns true if every cell holds the same color.
// An empty grid is never winning.
func (g *Grid) IsWinning() bool {
	if len(g.Cells) == 0 {
		return false
	}
	first := g.Cells[0]
	for _, v := range g.Cells[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// Rows returns the grid contents as a slice of rows.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.Size)
	for r := range g.Size {
		rows[r] = make([]uint8, g.Size)
		copy(rows[r], g.Cells[r*g.Size:(r+1)*g.Size])
	}
	return rows
}
