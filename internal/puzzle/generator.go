package puzzle

// GenParams configures puzzle generation.
type GenParams struct {
	Size          int    // Grid side length
	Palette       int    // Number of colors
	ScrambleMoves int    // Forward scramble clicks from the solved grid
	PowerTiles    int    // Power tile count
	LockedTiles   int    // Locked tile count
	MaxLockTurns  int    // Upper bound for a lock counter
	Seed          uint64 // RNG seed for deterministic variety
	MaxAttempts   int    // Retry limit across fresh seeds
}

// DefaultGenParams returns sensible defaults for puzzle generation.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:          4,
		Palette:       3,
		ScrambleMoves: 8,
		PowerTiles:    1,
		LockedTiles:   1,
		MaxLockTurns:  3,
		Seed:          0,
		MaxAttempts:   10,
	}
}

// validate rejects parameter sets that can never produce a puzzle.
func (p GenParams) validate() error {
	switch {
	case p.Size < 2:
		return badParams("grid size %d, need at least 2", p.Size)
	case p.Palette < 2 || p.Palette > 255:
		return badParams("palette size %d outside [2,255]", p.Palette)
	case p.ScrambleMoves < 1:
		return badParams("scramble moves %d, need at least 1", p.ScrambleMoves)
	case p.PowerTiles < 0 || p.PowerTiles > p.Size*p.Size:
		return badParams("%d power tiles on a %d-cell grid", p.PowerTiles, p.Size*p.Size)
	case p.LockedTiles < 0 || p.LockedTiles > p.Size*p.Size:
		return badParams("%d locked tiles on a %d-cell grid", p.LockedTiles, p.Size*p.Size)
	case p.LockedTiles > 0 && (p.MaxLockTurns < 1 || p.MaxLockTurns > 255):
		return badParams("max lock turns %d outside [1,255]", p.MaxLockTurns)
	}
	return nil
}

// Generate constructs a puzzle instance that is solvable by construction.
//
// The scramble is simulated forward from a uniform grid through the same
// transition function player clicks use, so solvability never needs a solver
// pass. Because click effects commute (each cell's final value is the base
// color plus the number of covering clicks, mod palette), the certified
// solution is derived from per-coordinate click counts: every coordinate
// clicked n times in the scramble is clicked (palette - n mod palette) mod
// palette more times, in row-major order, to cycle every cell back around.
//
// Locked tiles are placed only where the lock expires strictly before the
// first certified click that covers the cell, so the replay sees every
// increment land and the counting argument stays exact. Power tiles are
// attached before the forward simulation and favor later scramble
// coordinates, keeping the early certified moves ordinary.
//
// A configuration error is returned immediately for unsatisfiable
// parameters; per-attempt failures (degenerate scrambles, exhausted lock
// placements) retry with fresh seeds up to MaxAttempts before surfacing.
func Generate(p GenParams) (*PuzzleInstance, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		inst, err := generateOnce(p, p.Seed+uint64(attempt)*0x9E3779B97F4A7C15)
		if err == nil {
			return inst, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func generateOnce(p GenParams, seed uint64) (*PuzzleInstance, error) {
	rng := NewRNG(seed)
	size, palette := p.Size, p.Palette
	base := uint8(rng.Intn(palette))

	scramble := make([]Coord, p.ScrambleMoves)
	for i := range scramble {
		scramble[i] = At(rng.Intn(size), rng.Intn(size))
	}

	power := placePowerTiles(size, p.PowerTiles, scramble, rng)

	// Forward simulation from the solved grid. No locks exist yet; they are
	// attached after construction and constrain only the replay.
	grid := NewUniformGrid(size, base)
	noLocks := NewLockedTileMap(size)
	counts := make([]int, size*size)
	for _, c := range scramble {
		mask := EffectMatrix(c.Row, c.Col, size, power.Has(c))
		grid = ApplyEffect(grid, mask, noLocks, palette)
		counts[c.Row*size+c.Col]++
	}
	if grid.IsWinning() {
		return nil, GenError{Code: CodeDegenerate, Message: "scramble collapsed to a uniform grid"}
	}

	var certified []Coord
	for i, n := range counts {
		undo := (palette - n%palette) % palette
		for range undo {
			certified = append(certified, At(i/size, i%size))
		}
	}

	locks, err := placeLockedTiles(p, power, certified, rng)
	if err != nil {
		return nil, err
	}

	inst := &PuzzleInstance{
		Grid:      grid,
		Palette:   palette,
		Power:     power,
		Locks:     locks,
		Certified: certified,
	}
	if err := verifyCertificate(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// placePowerTiles picks power tile coordinates, preferring the later
// scramble coordinates and falling back to random free cells.
func placePowerTiles(size, want int, scramble []Coord, rng *SimpleRNG) PowerTileSet {
	power := NewPowerTileSet(size)
	for i := len(scramble) - 1; i >= 0 && power.Count() < want; i-- {
		if !power.Has(scramble[i]) {
			power.Add(scramble[i])
		}
	}
	if power.Count() < want {
		free := allCoords(size)
		rng.Shuffle(free)
		for _, c := range free {
			if power.Count() == want {
				break
			}
			if !power.Has(c) {
				power.Add(c)
			}
		}
	}
	return power
}

// placeLockedTiles locks up to the requested number of coordinates with
// counters that expire before the first certified click covering the cell.
// firstCover is 1-based; a cell covered by the very first click cannot be
// locked at all.
func placeLockedTiles(p GenParams, power PowerTileSet, certified []Coord, rng *SimpleRNG) (LockedTileMap, error) {
	size := p.Size
	locks := NewLockedTileMap(size)
	if p.LockedTiles == 0 {
		return locks, nil
	}

	firstCover := make([]int, size*size)
	for i, mv := range certified {
		mask := EffectMatrix(mv.Row, mv.Col, size, power.Has(mv))
		for _, mc := range mask.Coords() {
			idx := mc.Row*size + mc.Col
			if firstCover[idx] == 0 {
				firstCover[idx] = i + 1
			}
		}
	}

	candidates := allCoords(size)
	rng.Shuffle(candidates)
	placed := 0
	for _, c := range candidates {
		if placed == p.LockedTiles {
			break
		}
		limit := p.MaxLockTurns
		if fc := firstCover[c.Row*size+c.Col]; fc > 0 && fc-1 < limit {
			limit = fc - 1
		}
		if limit < 1 {
			continue
		}
		locks.Lock(c, 1+rng.Intn(limit))
		placed++
	}
	if placed < p.LockedTiles {
		return locks, GenError{
			Code:    CodeLockPlacement,
			Message: "no valid positions left for locked tiles",
		}
	}
	return locks, nil
}

// verifyCertificate replays the certified solution through a session copy
// and confirms it reaches a uniform grid. This is a grid-engine replay, not
// a solver pass; the solver is never invoked during generation.
func verifyCertificate(inst *PuzzleInstance) error {
	check := &PuzzleInstance{
		Grid:      inst.Grid.Clone(),
		Palette:   inst.Palette,
		Power:     inst.Power.Clone(),
		Locks:     inst.Locks.Clone(),
		Certified: inst.Certified,
	}
	sess := NewSession(check)
	for _, mv := range inst.Certified {
		sess.Click(mv)
	}
	if !sess.Won() {
		return GenError{Code: CodeCertReplay, Message: "certificate replay did not reach a uniform grid"}
	}
	return nil
}

// allCoords returns every coordinate of a size×size grid in row-major order.
func allCoords(size int) []Coord {
	coords := make([]Coord, 0, size*size)
	for r := range size {
		for c := range size {
			coords = append(coords, At(r, c))
		}
	}
	return coords
}
