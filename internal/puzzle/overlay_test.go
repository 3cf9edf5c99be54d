package puzzle_test

import (
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

func TestPowerTileSet(t *testing.T) {
	p := puzzle.NewPowerTileSet(3)

	if p.Has(puzzle.At(1, 1)) {
		t.Error("fresh set should be empty")
	}
	p.Add(puzzle.At(1, 1))
	p.Add(puzzle.At(0, 2))

	if !p.Has(puzzle.At(1, 1)) || !p.Has(puzzle.At(0, 2)) {
		t.Error("added tiles must be reported")
	}
	if p.Count() != 2 {
		t.Errorf("expected count 2, got %d", p.Count())
	}

	coords := p.Coords()
	if len(coords) != 2 || !coords[0].Equal(puzzle.At(0, 2)) || !coords[1].Equal(puzzle.At(1, 1)) {
		t.Errorf("expected row-major coords, got %v", coords)
	}

	if p.Has(puzzle.At(-1, 0)) || p.Has(puzzle.At(3, 3)) {
		t.Error("out-of-range coordinates are never power tiles")
	}
}

func TestPowerTileSetAddOutOfRangePanics(t *testing.T) {
	p := puzzle.NewPowerTileSet(3)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range power tile")
		}
	}()
	p.Add(puzzle.At(3, 0))
}

func TestPowerTileSetClone(t *testing.T) {
	p := puzzle.NewPowerTileSet(2)
	p.Add(puzzle.At(0, 0))
	clone := p.Clone()

	p.Add(puzzle.At(1, 1))
	if clone.Has(puzzle.At(1, 1)) {
		t.Error("clone must not see mutations of the original")
	}
	if !clone.Has(puzzle.At(0, 0)) {
		t.Error("clone must keep existing tiles")
	}
}

func TestLockedTileMap(t *testing.T) {
	l := puzzle.NewLockedTileMap(3)

	if l.Any() {
		t.Error("fresh map should have no locks")
	}
	l.Lock(puzzle.At(0, 1), 2)
	l.Lock(puzzle.At(2, 2), 1)

	if !l.Locked(puzzle.At(0, 1)) || l.Turns(puzzle.At(0, 1)) != 2 {
		t.Errorf("(0,1): expected 2 turns, got %d", l.Turns(puzzle.At(0, 1)))
	}
	if l.Count() != 2 {
		t.Errorf("expected 2 locked tiles, got %d", l.Count())
	}
	if l.Locked(puzzle.At(3, 3)) {
		t.Error("out-of-range coordinates are never locked")
	}

	coords := l.Coords()
	if len(coords) != 2 || !coords[0].Equal(puzzle.At(0, 1)) || !coords[1].Equal(puzzle.At(2, 2)) {
		t.Errorf("expected row-major coords, got %v", coords)
	}
}

func TestLockedTileMapDecay(t *testing.T) {
	l := puzzle.NewLockedTileMap(2)
	l.Lock(puzzle.At(0, 0), 2)
	l.Lock(puzzle.At(1, 1), 1)

	unlocked := l.Decay()
	if len(unlocked) != 1 || !unlocked[0].Equal(puzzle.At(1, 1)) {
		t.Errorf("first decay: expected (1,1), got %v", unlocked)
	}
	if l.Turns(puzzle.At(0, 0)) != 1 {
		t.Errorf("first decay: expected (0,0) at 1 turn, got %d", l.Turns(puzzle.At(0, 0)))
	}

	unlocked = l.Decay()
	if len(unlocked) != 1 || !unlocked[0].Equal(puzzle.At(0, 0)) {
		t.Errorf("second decay: expected (0,0), got %v", unlocked)
	}

	// Expired counters stay at zero.
	if got := l.Decay(); len(got) != 0 {
		t.Errorf("third decay: expected nothing, got %v", got)
	}
	if l.Any() {
		t.Error("all locks should have expired")
	}
}

func TestLockedTileMapLockPanics(t *testing.T) {
	testCases := []struct {
		name  string
		coord puzzle.Coord
		turns int
	}{
		{"zero turns", puzzle.At(0, 0), 0},
		{"negative turns", puzzle.At(0, 0), -1},
		{"turns above 255", puzzle.At(0, 0), 256},
		{"out of range", puzzle.At(2, 2), 1},
	}
	for _, tc := range testCases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tc.name)
				}
			}()
			l := puzzle.NewLockedTileMap(2)
			l.Lock(tc.coord, tc.turns)
		}()
	}
}

func TestLockedTileMapKeyAndClone(t *testing.T) {
	a := puzzle.NewLockedTileMap(2)
	a.Lock(puzzle.At(0, 1), 3)
	b := a.Clone()

	if a.Key() != b.Key() {
		t.Error("clone must share the original's key")
	}

	b.Decay()
	if a.Key() == b.Key() {
		t.Error("diverged lock states must have different keys")
	}
	if a.Turns(puzzle.At(0, 1)) != 3 {
		t.Error("decaying the clone must not touch the original")
	}
}
