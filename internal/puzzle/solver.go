package puzzle

// Default search bounds. Hitting either bound is a normal, documented
// outcome ("no path found within budget"), never an error.
const (
	DefaultMaxStates = 10000 // Max states explored before giving up
	DefaultMaxDepth  = 30    // Max solution length considered
)

// Result is the outcome of a solver run.
// Found=false means no solution was found within the resource budget; it is
// a conservative answer and must never be read as a proof of unsolvability.
type Result struct {
	Moves  []Coord // Shortest move sequence to a uniform grid, if Found
	Found  bool
	States int // States explored before returning
}

// PathSolver finds a move sequence that drives a grid to a uniform color.
// The hint engine and solvability monitor depend on this interface so tests
// can count and stub solver invocations.
type PathSolver interface {
	Solve(g *Grid, locks LockedTileMap) Result
}

// Solver performs bounded breadth-first search over grid states.
// It operates on immutable snapshots of its inputs, keeps no mutable state
// between calls, and is safe to run concurrently against different inputs.
type Solver struct {
	Palette   int
	Power     PowerTileSet
	MaxStates int
	MaxDepth  int
}

// NewSolver creates a solver for the given palette and power tile overlay,
// with the default search bounds.
func NewSolver(palette int, power PowerTileSet) *Solver {
	return &Solver{
		Palette:   palette,
		Power:     power,
		MaxStates: DefaultMaxStates,
		MaxDepth:  DefaultMaxDepth,
	}
}

// searchState is one node of the BFS frontier. The lock snapshot is part of
// the state because lock counters change which cells mutate.
type searchState struct {
	grid  *Grid
	locks LockedTileMap
	path  []Coord
}

// Solve finds a shortest sequence of clicks that drives the grid to a
// uniform color, or reports that none was found within bounds.
//
// Moves are enumerated in row-major order, so among multiple shortest paths
// the one whose first point of difference has the lexicographically smaller
// coordinate is returned. Clicking a locked coordinate is not a legal solver
// move. An already-winning grid returns an empty solution with zero states
// explored.
func (s *Solver) Solve(g *Grid, locks LockedTileMap) Result {
	if g.IsWinning() {
		return Result{Moves: []Coord{}, Found: true, States: 0}
	}

	maxStates := s.MaxStates
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	maxDepth := s.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	start := searchState{grid: g.Clone(), locks: locks.Clone(), path: nil}
	visited := map[string]struct{}{stateKey(start.grid, start.locks): {}}
	queue := []searchState{start}
	explored := 0

	for len(queue) > 0 && explored < maxStates {
		cur := queue[0]
		queue = queue[1:]
		explored++

		if cur.grid.IsWinning() {
			return Result{Moves: cur.path, Found: true, States: explored}
		}
		if len(cur.path) >= maxDepth {
			continue
		}

		for row := range cur.grid.Size {
			for col := range cur.grid.Size {
				c := At(row, col)
				if cur.locks.Locked(c) {
					continue
				}
				mask := EffectMatrix(row, col, cur.grid.Size, s.Power.Has(c))
				nextGrid := ApplyEffect(cur.grid, mask, cur.locks, s.Palette)
				nextLocks := cur.locks.Clone()
				nextLocks.Decay()

				key := stateKey(nextGrid, nextLocks)
				if _, seen := visited[key]; seen {
					continue
				}
				if len(visited) >= maxStates {
					continue
				}
				visited[key] = struct{}{}

				path := make([]Coord, len(cur.path)+1)
				copy(path, cur.path)
				path[len(cur.path)] = c
				queue = append(queue, searchState{grid: nextGrid, locks: nextLocks, path: path})
			}
		}
	}

	return Result{Found: false, States: explored}
}

// stateKey builds the canonical visited-set key from the grid contents and
// the lock counters.
func stateKey(g *Grid, locks LockedTileMap) string {
	return g.Key() + "|" + locks.Key()
}

var _ PathSolver = (*Solver)(nil)
