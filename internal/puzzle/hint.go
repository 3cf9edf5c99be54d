package puzzle

// HintState describes what the hint engine is currently doing.
type HintState int

const (
	// HintOnTrack means the cached path is valid and the next suggestion
	// comes straight from it.
	HintOnTrack HintState = iota
	// HintRecomputing means the player diverged and a solver pass is
	// outstanding; no suggestion is available until it completes.
	HintRecomputing
)

// RecomputeRequest carries the snapshot a solver pass must run against.
// The epoch ties the eventual result back to the move that caused it; a
// result whose epoch no longer matches the engine is silently discarded,
// so a rapid follow-up move always wins over a stale computation.
type RecomputeRequest struct {
	epoch uint64
	Grid  *Grid
	Locks LockedTileMap
}

// HintEngine maintains a single "suggested next move" for a live puzzle.
// While the player follows the cached optimal path the cache is reused and
// the solver is never consulted; on divergence the path is recomputed
// against the post-move grid.
//
// The engine is synchronous and caller-owned: PlayerMoved returns the
// recompute request (if any), and the caller either resolves it in place
// with Resolve or runs the solver elsewhere and reports back via Complete.
type HintEngine struct {
	solver      PathSolver
	path        []Coord
	step        int
	epoch       uint64
	state       HintState
	lastOnTrack bool
	exhausted   bool // Last recompute found nothing within bounds
	solverCalls int
}

// NewHintEngine creates a hint engine seeded with the generator's certified
// solution, so the opening suggestion needs no solver pass.
func NewHintEngine(solver PathSolver, certified []Coord) *HintEngine {
	path := make([]Coord, len(certified))
	copy(path, certified)
	return &HintEngine{
		solver:      solver,
		path:        path,
		lastOnTrack: true,
	}
}

// Suggestion returns the next suggested coordinate. The second return is
// false when no hint is available: the puzzle is already won, a recompute is
// outstanding, or the last solver pass found nothing within bounds. A stale
// cache is never served.
func (h *HintEngine) Suggestion() (Coord, bool) {
	if h.state != HintOnTrack || h.exhausted || h.step >= len(h.path) {
		return Coord{}, false
	}
	return h.path[h.step], true
}

// State returns the current engine state.
func (h *HintEngine) State() HintState {
	return h.state
}

// Recomputing returns true while a recompute request is outstanding.
func (h *HintEngine) Recomputing() bool {
	return h.state == HintRecomputing
}

// LastMoveOnTrack returns true if the player's last move matched the path
// that was cached at the time.
func (h *HintEngine) LastMoveOnTrack() bool {
	return h.lastOnTrack
}

// SolverCalls returns how many solver passes the engine has run via Resolve.
func (h *HintEngine) SolverCalls() int {
	return h.solverCalls
}

// PlayerMoved records a player click and the grid state after it was
// applied. A move matching the cached path advances the step pointer and
// returns nil: the cache is reused. A diverging move invalidates the cache
// and returns a request the caller must resolve; any previously outstanding
// request is superseded.
func (h *HintEngine) PlayerMoved(move Coord, grid *Grid, locks LockedTileMap) *RecomputeRequest {
	h.epoch++

	if grid.IsWinning() {
		h.lastOnTrack = h.state == HintOnTrack && h.step < len(h.path) && move.Equal(h.path[h.step])
		h.path = nil
		h.step = 0
		h.state = HintOnTrack
		h.exhausted = false
		return nil
	}

	if h.state == HintOnTrack && h.step < len(h.path) && move.Equal(h.path[h.step]) {
		h.step++
		h.lastOnTrack = true
		return nil
	}

	h.lastOnTrack = false
	h.state = HintRecomputing
	h.path = nil
	h.step = 0
	return &RecomputeRequest{
		epoch: h.epoch,
		Grid:  grid.Clone(),
		Locks: locks.Clone(),
	}
}

// Complete installs a solver result for the given request. Results for
// superseded requests are discarded silently; that is the expected outcome
// under rapid player input, not an error.
func (h *HintEngine) Complete(req *RecomputeRequest, res Result) {
	if req == nil || req.epoch != h.epoch {
		return
	}
	h.state = HintOnTrack
	h.step = 0
	if res.Found {
		h.path = res.Moves
		h.exhausted = false
	} else {
		h.path = nil
		h.exhausted = true
	}
}

// Resolve runs the engine's solver against the request synchronously and
// installs the result.
func (h *HintEngine) Resolve(req *RecomputeRequest) {
	if req == nil {
		return
	}
	h.solverCalls++
	h.Complete(req, h.solver.Solve(req.Grid, req.Locks))
}
