package puzzle_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

// replayCertified runs the certified solution through a fresh session over
// cloned state and reports whether it reaches a uniform grid.
func replayCertified(inst *puzzle.PuzzleInstance) bool {
	check := &puzzle.PuzzleInstance{
		Grid:    inst.Grid.Clone(),
		Palette: inst.Palette,
		Power:   inst.Power.Clone(),
		Locks:   inst.Locks.Clone(),
	}
	sess := puzzle.NewSession(check)
	for _, mv := range inst.Certified {
		sess.Click(mv)
	}
	return sess.Won()
}

func TestGenerateDefaults(t *testing.T) {
	p := puzzle.DefaultGenParams()
	p.Seed = 42
	inst, err := puzzle.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if inst.Grid.Size != p.Size {
		t.Errorf("expected size %d, got %d", p.Size, inst.Grid.Size)
	}
	if inst.Grid.IsWinning() {
		t.Error("generated grid must not already be uniform")
	}
	if inst.Power.Count() != p.PowerTiles {
		t.Errorf("expected %d power tiles, got %d", p.PowerTiles, inst.Power.Count())
	}
	if inst.Locks.Count() != p.LockedTiles {
		t.Errorf("expected %d locked tiles, got %d", p.LockedTiles, inst.Locks.Count())
	}
	if len(inst.Certified) == 0 {
		t.Fatal("certified solution must not be empty")
	}
	if !replayCertified(inst) {
		t.Error("certified solution does not solve the puzzle")
	}
}

func TestGenerateSolvableByConstruction(t *testing.T) {
	type modifiers struct {
		power, locked int
	}
	mods := []modifiers{{0, 0}, {2, 0}, {0, 2}, {2, 1}}

	for _, size := range []int{3, 4, 5} {
		for _, palette := range []int{2, 3, 4} {
			for _, m := range mods {
				for seed := uint64(1); seed <= 3; seed++ {
					p := puzzle.GenParams{
						Size:          size,
						Palette:       palette,
						ScrambleMoves: size + 2,
						PowerTiles:    m.power,
						LockedTiles:   m.locked,
						MaxLockTurns:  3,
						Seed:          seed,
						MaxAttempts:   25,
					}
					inst, err := puzzle.Generate(p)
					if err != nil {
						t.Fatalf("size=%d palette=%d power=%d locked=%d seed=%d: %v",
							size, palette, m.power, m.locked, seed, err)
					}
					if inst.Grid.IsWinning() {
						t.Errorf("size=%d palette=%d seed=%d: degenerate grid", size, palette, seed)
					}
					if !replayCertified(inst) {
						t.Errorf("size=%d palette=%d power=%d locked=%d seed=%d: certificate does not replay",
							size, palette, m.power, m.locked, seed)
					}
					if max := size * size * (palette - 1); len(inst.Certified) > max {
						t.Errorf("size=%d palette=%d: certificate length %d exceeds %d",
							size, palette, len(inst.Certified), max)
					}
				}
			}
		}
	}
}

// Every lock must have expired by the time the first certified click covers
// its cell, otherwise the replay would lose an increment.
func TestGenerateLocksExpireBeforeCover(t *testing.T) {
	p := puzzle.GenParams{
		Size:          4,
		Palette:       3,
		ScrambleMoves: 6,
		LockedTiles:   3,
		MaxLockTurns:  4,
		Seed:          7,
		MaxAttempts:   25,
	}
	inst, err := puzzle.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	check := &puzzle.PuzzleInstance{
		Grid:    inst.Grid.Clone(),
		Palette: inst.Palette,
		Power:   inst.Power.Clone(),
		Locks:   inst.Locks.Clone(),
	}
	sess := puzzle.NewSession(check)
	for i, mv := range inst.Certified {
		mask := puzzle.EffectMatrix(mv.Row, mv.Col, inst.Grid.Size, inst.Power.Has(mv))
		for _, mc := range mask.Coords() {
			if sess.Locks().Locked(mc) {
				t.Fatalf("certified click %d at %v covers still-locked cell %v", i, mv, mc)
			}
		}
		sess.Click(mv)
	}
	if !sess.Won() {
		t.Error("certificate does not replay")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := puzzle.DefaultGenParams()
	p.Seed = 99

	a, err := puzzle.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := puzzle.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !a.Grid.Equal(b.Grid) {
		t.Error("same seed must produce the same grid")
	}
	if a.Locks.Key() != b.Locks.Key() {
		t.Error("same seed must produce the same lock map")
	}
	if len(a.Certified) != len(b.Certified) {
		t.Fatalf("certificate lengths differ: %d vs %d", len(a.Certified), len(b.Certified))
	}
	for i := range a.Certified {
		if !a.Certified[i].Equal(b.Certified[i]) {
			t.Fatalf("certificates diverge at move %d", i)
		}
	}
}

func TestGenerateSeedsVary(t *testing.T) {
	p := puzzle.GenParams{
		Size:          5,
		Palette:       4,
		ScrambleMoves: 8,
		MaxAttempts:   10,
	}

	keys := make(map[string]bool)
	for seed := uint64(1); seed <= 6; seed++ {
		p.Seed = seed
		inst, err := puzzle.Generate(p)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		keys[inst.Grid.Key()] = true
	}
	if len(keys) < 2 {
		t.Error("different seeds should produce different grids")
	}
}

func TestGenerateZeroModifiers(t *testing.T) {
	p := puzzle.GenParams{
		Size:          3,
		Palette:       2,
		ScrambleMoves: 5,
		Seed:          11,
		MaxAttempts:   10,
	}
	inst, err := puzzle.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if inst.Power.Count() != 0 {
		t.Errorf("expected no power tiles, got %d", inst.Power.Count())
	}
	if inst.Locks.Any() {
		t.Error("expected no locked tiles")
	}
	if !replayCertified(inst) {
		t.Error("certificate does not replay")
	}
}

func TestGenerateConfigErrors(t *testing.T) {
	base := puzzle.DefaultGenParams()

	testCases := []struct {
		name   string
		mutate func(*puzzle.GenParams)
	}{
		{"size too small", func(p *puzzle.GenParams) { p.Size = 1 }},
		{"palette too small", func(p *puzzle.GenParams) { p.Palette = 1 }},
		{"palette too large", func(p *puzzle.GenParams) { p.Palette = 300 }},
		{"no scramble moves", func(p *puzzle.GenParams) { p.ScrambleMoves = 0 }},
		{"too many power tiles", func(p *puzzle.GenParams) { p.PowerTiles = 17 }},
		{"too many locked tiles", func(p *puzzle.GenParams) { p.LockedTiles = 17 }},
		{"bad lock turns", func(p *puzzle.GenParams) { p.LockedTiles = 1; p.MaxLockTurns = 0 }},
	}

	for _, tc := range testCases {
		p := base
		tc.mutate(&p)
		_, err := puzzle.Generate(p)
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		var ge puzzle.GenError
		if !errors.As(err, &ge) {
			t.Errorf("%s: expected a GenError, got %T", tc.name, err)
			continue
		}
		if !ge.IsConfig() {
			t.Errorf("%s: expected a configuration error, got code %s", tc.name, ge.Code)
		}
	}
}
