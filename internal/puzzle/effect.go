package puzzle

import "fmt"

// Mask is a boolean effect pattern describing which cells a click mutates.
type Mask struct {
	size int
	bits []bool
}

// On returns true if the mask covers the coordinate.
func (m Mask) On(c Coord) bool {
	if c.Row < 0 || c.Row >= m.size || c.Col < 0 || c.Col >= m.size {
		return false
	}
	return m.bits[c.Row*m.size+c.Col]
}

// Size returns the side length of the mask.
func (m Mask) Size() int {
	return m.size
}

// Coords returns the covered coordinates in row-major order.
func (m Mask) Coords() []Coord {
	var coords []Coord
	for r := range m.size {
		for c := range m.size {
			if m.bits[r*m.size+c] {
				coords = append(coords, At(r, c))
			}
		}
	}
	return coords
}

// EffectMatrix builds the effect pattern for a click at (row, col) on a grid
// of the given size. Ordinary tiles use the 5-cell "+" neighborhood (the
// clicked cell plus its four axis neighbors); power tiles use the full 3×3
// block centered on the coordinate. Both are clipped at grid edges.
// The pattern depends only on its arguments, never on grid contents.
// Panics on an out-of-range coordinate.
func EffectMatrix(row, col, size int, isPower bool) Mask {
	if row < 0 || row >= size || col < 0 || col >= size {
		panic(fmt.Sprintf("puzzle: effect origin (%d,%d) out of range for size %d", row, col, size))
	}
	m := Mask{size: size, bits: make([]bool, size*size)}
	if isPower {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := row+dr, col+dc
				if r >= 0 && r < size && c >= 0 && c < size {
					m.bits[r*size+c] = true
				}
			}
		}
		return m
	}
	m.bits[row*size+col] = true
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < size && c >= 0 && c < size {
			m.bits[r*size+c] = true
		}
	}
	return m
}

// ApplyEffect returns a new grid with every unlocked cell under the mask
// cyclically incremented: (value + 1) mod palette. Locked cells under the
// mask keep their value. The input grid is never mutated.
// Panics if the palette is smaller than two or if a covered cell already
// holds a value outside [0, palette); both are contract breaches.
func ApplyEffect(g *Grid, m Mask, locks LockedTileMap, palette int) *Grid {
	if palette < 2 {
		panic(fmt.Sprintf("puzzle: palette size %d out of range", palette))
	}
	next := g.Clone()
	for r := range g.Size {
		for c := range g.Size {
			coord := At(r, c)
			if !m.On(coord) || locks.Locked(coord) {
				continue
			}
			v := g.At(coord)
			if int(v) >= palette {
				panic(fmt.Sprintf("puzzle: cell %v holds %d outside palette [0,%d)", coord, v, palette))
			}
			next.set(coord, uint8((int(v)+1)%palette))
		}
	}
	return next
}
