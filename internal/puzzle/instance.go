package puzzle

import "fmt"

// PuzzleInstance bundles everything that defines one live puzzle: the grid
// shown to the player, the palette size, the modifier overlays, and the
// certified solution emitted by the generator. The grid and lock map are
// mutated in place as clicks are applied; Certified is a read-only artifact
// used to seed the hint engine.
type PuzzleInstance struct {
	Grid      *Grid
	Palette   int
	Power     PowerTileSet
	Locks     LockedTileMap
	Certified []Coord
}

// CellChange records a single cell mutation caused by a click, sized exactly
// to the affected effect pattern so a UI can animate only changed tiles.
type CellChange struct {
	Coord Coord
	Old   uint8
	New   uint8
}

// Session owns a live PuzzleInstance and applies player clicks to it.
// It is the only place grid state transitions happen during play.
type Session struct {
	inst  *PuzzleInstance
	moves int
}

// NewSession creates a session around the given instance.
func NewSession(inst *PuzzleInstance) *Session {
	return &Session{inst: inst}
}

// Instance returns the live puzzle instance.
func (s *Session) Instance() *PuzzleInstance {
	return s.inst
}

// Grid returns the live grid.
func (s *Session) Grid() *Grid {
	return s.inst.Grid
}

// Locks returns the live lock map.
func (s *Session) Locks() LockedTileMap {
	return s.inst.Locks
}

// Moves returns the number of clicks applied so far.
func (s *Session) Moves() int {
	return s.moves
}

// Won returns true if the grid has reached a uniform color.
func (s *Session) Won() bool {
	return s.inst.Grid.IsWinning()
}

// Click applies a click at the given coordinate: every unlocked cell under
// the effect pattern is cyclically incremented, then every positive lock
// counter decays by one. Returns the list of changed cells and the
// coordinates whose locks expired on this click.
// The effect is evaluated against the lock counters as they were before the
// click; a cell locked with counter 1 is still protected from this click and
// unlocks for the next one.
// Panics on an out-of-range coordinate.
func (s *Session) Click(c Coord) (changes []CellChange, unlocked []Coord) {
	g := s.inst.Grid
	if !g.InBounds(c) {
		panic(fmt.Sprintf("puzzle: click %v out of range for size %d", c, g.Size))
	}

	mask := EffectMatrix(c.Row, c.Col, g.Size, s.inst.Power.Has(c))
	next := ApplyEffect(g, mask, s.inst.Locks, s.inst.Palette)

	for _, mc := range mask.Coords() {
		old, now := g.At(mc), next.At(mc)
		if old != now {
			changes = append(changes, CellChange{Coord: mc, Old: old, New: now})
		}
	}

	copy(g.Cells, next.Cells)
	unlocked = s.inst.Locks.Decay()
	s.moves++
	return changes, unlocked
}
