package puzzle_test

import (
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

// bruteDistance is an unbounded reference BFS over grid states, used to
// check the solver's shortest-path claim on boards small enough to exhaust.
func bruteDistance(g *puzzle.Grid, palette int) int {
	locks := puzzle.NewLockedTileMap(g.Size)
	power := puzzle.NewPowerTileSet(g.Size)
	dist := map[string]int{g.Key(): 0}
	queue := []*puzzle.Grid{g.Clone()}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.IsWinning() {
			return dist[cur.Key()]
		}
		for row := range cur.Size {
			for col := range cur.Size {
				m := puzzle.EffectMatrix(row, col, cur.Size, power.Has(puzzle.At(row, col)))
				next := puzzle.ApplyEffect(cur, m, locks, palette)
				if _, seen := dist[next.Key()]; !seen {
					dist[next.Key()] = dist[cur.Key()] + 1
					queue = append(queue, next)
				}
			}
		}
	}
	return -1
}

func TestSolveAlreadyWinning(t *testing.T) {
	s := puzzle.NewSolver(3, puzzle.NewPowerTileSet(3))
	res := s.Solve(puzzle.NewUniformGrid(3, 1), puzzle.NewLockedTileMap(3))

	if !res.Found {
		t.Fatal("a uniform grid is already solved")
	}
	if len(res.Moves) != 0 {
		t.Errorf("expected empty solution, got %v", res.Moves)
	}
	if res.States != 0 {
		t.Errorf("expected zero states explored, got %d", res.States)
	}
}

func TestSolveSingleMove(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(2))
	g := puzzle.GridFromRows([][]uint8{{1, 1}, {1, 0}})
	res := s.Solve(g, puzzle.NewLockedTileMap(2))

	if !res.Found {
		t.Fatal("expected a solution")
	}
	if len(res.Moves) != 1 || !res.Moves[0].Equal(puzzle.At(0, 0)) {
		t.Errorf("expected [(0,0)], got %v", res.Moves)
	}
	if res.States < 1 {
		t.Errorf("expected at least one state explored, got %d", res.States)
	}
}

// Among equally short solutions the solver must prefer the one that clicks
// the row-major-smaller coordinate first.
func TestSolveTieBreak(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(2))
	g := puzzle.GridFromRows([][]uint8{{0, 1}, {1, 0}})
	res := s.Solve(g, puzzle.NewLockedTileMap(2))

	if !res.Found {
		t.Fatal("expected a solution")
	}
	want := []puzzle.Coord{puzzle.At(0, 0), puzzle.At(1, 1)}
	if len(res.Moves) != len(want) {
		t.Fatalf("expected %v, got %v", want, res.Moves)
	}
	for i, mv := range want {
		if !res.Moves[i].Equal(mv) {
			t.Fatalf("expected %v, got %v", want, res.Moves)
		}
	}
}

func TestSolveShortestAgainstBruteForce(t *testing.T) {
	power := puzzle.NewPowerTileSet(2)
	locks := puzzle.NewLockedTileMap(2)
	s := puzzle.NewSolver(2, power)

	// All 16 two-color 2x2 boards.
	for bits := range 16 {
		g := puzzle.GridFromRows([][]uint8{
			{uint8(bits & 1), uint8(bits >> 1 & 1)},
			{uint8(bits >> 2 & 1), uint8(bits >> 3 & 1)},
		})
		want := bruteDistance(g, 2)
		res := s.Solve(g, locks)
		if want < 0 {
			t.Fatalf("grid %v: reference search found no solution", g.Rows())
		}
		if !res.Found {
			t.Errorf("grid %v: solver found nothing, reference distance %d", g.Rows(), want)
			continue
		}
		if len(res.Moves) != want {
			t.Errorf("grid %v: solver path length %d, reference distance %d", g.Rows(), len(res.Moves), want)
		}
	}
}

func TestSolveSolutionReplays(t *testing.T) {
	power := puzzle.NewPowerTileSet(3)
	power.Add(puzzle.At(1, 1))
	s := puzzle.NewSolver(2, power)

	g := puzzle.GridFromRows([][]uint8{
		{1, 0, 1},
		{0, 0, 0},
		{1, 0, 1},
	})
	res := s.Solve(g, puzzle.NewLockedTileMap(3))
	if !res.Found {
		t.Fatal("expected a solution")
	}

	inst := &puzzle.PuzzleInstance{
		Grid:    g.Clone(),
		Palette: 2,
		Power:   power.Clone(),
		Locks:   puzzle.NewLockedTileMap(3),
	}
	sess := puzzle.NewSession(inst)
	for _, mv := range res.Moves {
		sess.Click(mv)
	}
	if !sess.Won() {
		t.Errorf("replaying %v did not win, grid %v", res.Moves, sess.Grid().Rows())
	}
}

func TestSolveAvoidsLockedMoves(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(2))
	g := puzzle.GridFromRows([][]uint8{{1, 1}, {1, 0}})
	locks := puzzle.NewLockedTileMap(2)
	locks.Lock(puzzle.At(0, 0), 1)

	res := s.Solve(g, locks)
	if !res.Found {
		t.Fatal("expected a solution despite the lock")
	}
	if res.Moves[0].Equal(puzzle.At(0, 0)) {
		t.Error("first move must not click a locked coordinate")
	}

	// The path must replay to a win with the lock in place.
	inst := &puzzle.PuzzleInstance{
		Grid:    g.Clone(),
		Palette: 2,
		Power:   puzzle.NewPowerTileSet(2),
		Locks:   locks.Clone(),
	}
	sess := puzzle.NewSession(inst)
	for _, mv := range res.Moves {
		sess.Click(mv)
	}
	if !sess.Won() {
		t.Errorf("replaying %v did not win, grid %v", res.Moves, sess.Grid().Rows())
	}
}

func TestSolveAllLockedExhausts(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(3))
	g := puzzle.GridFromRows([][]uint8{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	locks := puzzle.NewLockedTileMap(3)
	for row := range 3 {
		for col := range 3 {
			locks.Lock(puzzle.At(row, col), 9)
		}
	}

	res := s.Solve(g, locks)
	if res.Found {
		t.Errorf("no legal moves exist, got path %v", res.Moves)
	}
	if res.States != 1 {
		t.Errorf("expected exactly the start state explored, got %d", res.States)
	}
}

func TestSolveStateBound(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(2))
	s.MaxStates = 1
	res := s.Solve(puzzle.GridFromRows([][]uint8{{0, 1}, {1, 0}}), puzzle.NewLockedTileMap(2))

	if res.Found {
		t.Error("a one-state budget cannot solve a two-move board")
	}
	if res.States != 1 {
		t.Errorf("expected 1 state explored, got %d", res.States)
	}
}

func TestSolveDepthBound(t *testing.T) {
	s := puzzle.NewSolver(2, puzzle.NewPowerTileSet(2))
	s.MaxDepth = 1
	res := s.Solve(puzzle.GridFromRows([][]uint8{{0, 1}, {1, 0}}), puzzle.NewLockedTileMap(2))

	if res.Found {
		t.Errorf("the shortest solution has two moves, got %v within depth 1", res.Moves)
	}
	if res.States < 1 {
		t.Errorf("expected states explored, got %d", res.States)
	}
}
