package puzzle

import "fmt"

// PowerTileSet marks coordinates whose clicks use the full 3×3 effect
// pattern instead of the default "+" pattern.
// Stored as a flat boolean array indexed row-major, never by string keys.
type PowerTileSet struct {
	size  int
	power []bool
}

// NewPowerTileSet creates an empty power tile set for a grid of the given size.
func NewPowerTileSet(size int) PowerTileSet {
	return PowerTileSet{size: size, power: make([]bool, size*size)}
}

// Has returns true if the coordinate is a power tile.
// Coordinates outside the grid are never power tiles.
func (p PowerTileSet) Has(c Coord) bool {
	if c.Row < 0 || c.Row >= p.size || c.Col < 0 || c.Col >= p.size {
		return false
	}
	return p.power[c.Row*p.size+c.Col]
}

// Add marks a coordinate as a power tile.
func (p *PowerTileSet) Add(c Coord) {
	if c.Row < 0 || c.Row >= p.size || c.Col < 0 || c.Col >= p.size {
		panic(fmt.Sprintf("puzzle: power tile %v out of range for size %d", c, p.size))
	}
	p.power[c.Row*p.size+c.Col] = true
}

// Count returns the number of power tiles.
func (p PowerTileSet) Count() int {
	n := 0
	for _, b := range p.power {
		if b {
			n++
		}
	}
	return n
}

// Coords returns all power tile coordinates in row-major order.
func (p PowerTileSet) Coords() []Coord {
	coords := make([]Coord, 0, p.Count())
	for r := range p.size {
		for c := range p.size {
			if p.power[r*p.size+c] {
				coords = append(coords, At(r, c))
			}
		}
	}
	return coords
}

// Clone returns a deep copy of the set.
func (p PowerTileSet) Clone() PowerTileSet {
	power := make([]bool, len(p.power))
	copy(power, p.power)
	return PowerTileSet{size: p.size, power: power}
}

// LockedTileMap tracks per-coordinate remaining-unlock counters.
// While a coordinate's counter is above zero its cell is immune to color
// change; every click anywhere on the board decrements every positive
// counter by exactly one. Counters never go below zero, and a cell whose
// counter reaches zero behaves as an ordinary cell for the rest of the
// puzzle. Stored as a flat counter array indexed row-major.
type LockedTileMap struct {
	size  int
	turns []uint8
}

// NewLockedTileMap creates an empty lock map for a grid of the given size.
func NewLockedTileMap(size int) LockedTileMap {
	return LockedTileMap{size: size, turns: make([]uint8, size*size)}
}

// Locked returns true if the coordinate currently has a positive counter.
// Coordinates outside the grid are never locked.
func (l LockedTileMap) Locked(c Coord) bool {
	return l.Turns(c) > 0
}

// Turns returns the remaining unlock counter for the coordinate.
func (l LockedTileMap) Turns(c Coord) int {
	if c.Row < 0 || c.Row >= l.size || c.Col < 0 || c.Col >= l.size {
		return 0
	}
	return int(l.turns[c.Row*l.size+c.Col])
}

// Lock sets the unlock counter for a coordinate.
// Panics on a non-positive counter or an out-of-range coordinate; both
// indicate a contract breach by the caller.
func (l *LockedTileMap) Lock(c Coord, turns int) {
	if c.Row < 0 || c.Row >= l.size || c.Col < 0 || c.Col >= l.size {
		panic(fmt.Sprintf("puzzle: locked tile %v out of range for size %d", c, l.size))
	}
	if turns <= 0 || turns > 255 {
		panic(fmt.Sprintf("puzzle: lock counter %d out of range at %v", turns, c))
	}
	l.turns[c.Row*l.size+c.Col] = uint8(turns)
}

// Decay decrements every positive counter by one and returns the
// coordinates whose counters reached zero on this call.
func (l *LockedTileMap) Decay() []Coord {
	var unlocked []Coord
	for i, t := range l.turns {
		if t == 0 {
			continue
		}
		l.turns[i] = t - 1
		if t == 1 {
			unlocked = append(unlocked, At(i/l.size, i%l.size))
		}
	}
	return unlocked
}

// Any returns true if any coordinate is currently locked.
func (l LockedTileMap) Any() bool {
	for _, t := range l.turns {
		if t > 0 {
			return true
		}
	}
	return false
}

// Count returns the number of currently locked coordinates.
func (l LockedTileMap) Count() int {
	n := 0
	for _, t := range l.turns {
		if t > 0 {
			n++
		}
	}
	return n
}

// Coords returns all currently locked coordinates in row-major order.
func (l LockedTileMap) Coords() []Coord {
	var coords []Coord
	for i, t := range l.turns {
		if t > 0 {
			coords = append(coords, At(i/l.size, i%l.size))
		}
	}
	return coords
}

// Key returns a canonical byte-string key for the lock state.
// Lock state affects which moves are legal, so it is part of the
// visited-state key in search.
func (l LockedTileMap) Key() string {
	return string(l.turns)
}

// Clone returns a deep copy of the map.
func (l LockedTileMap) Clone() LockedTileMap {
	turns := make([]uint8, len(l.turns))
	copy(turns, l.turns)
	return LockedTileMap{size: l.size, turns: turns}
}
