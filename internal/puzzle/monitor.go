package puzzle

// CheckRequest carries the snapshot a solvability check must run against.
type CheckRequest struct {
	epoch uint64
	Grid  *Grid
	Locks LockedTileMap
}

// SolvabilityMonitor re-checks whether the live grid is still solvable
// within the solver's bounds. Lock counters expire on every click, which
// changes the set of legal moves independently of where the player clicked,
// so the session triggers a check whenever a lock runs out.
//
// The monitor is purely advisory: it never mutates grid state, and a
// negative answer means "no solution found within budget", not a proof of
// unsolvability. Consumers must treat it as a warning.
type SolvabilityMonitor struct {
	solver     PathSolver
	epoch      uint64
	inProgress bool
	known      bool
	solvable   bool
	checks     int
}

// NewSolvabilityMonitor creates a monitor backed by the given solver.
func NewSolvabilityMonitor(solver PathSolver) *SolvabilityMonitor {
	return &SolvabilityMonitor{solver: solver}
}

// Trigger starts a solvability check against a snapshot of the live state.
// A newer trigger supersedes any outstanding one.
func (m *SolvabilityMonitor) Trigger(grid *Grid, locks LockedTileMap) *CheckRequest {
	m.epoch++
	m.inProgress = true
	return &CheckRequest{
		epoch: m.epoch,
		Grid:  grid.Clone(),
		Locks: locks.Clone(),
	}
}

// Complete installs a solver result for the given request. Results for
// superseded requests are discarded silently.
func (m *SolvabilityMonitor) Complete(req *CheckRequest, res Result) {
	if req == nil || req.epoch != m.epoch {
		return
	}
	m.inProgress = false
	m.known = true
	m.solvable = res.Found
}

// Resolve runs the monitor's solver against the request synchronously and
// installs the result.
func (m *SolvabilityMonitor) Resolve(req *CheckRequest) {
	if req == nil {
		return
	}
	m.checks++
	m.Complete(req, m.solver.Solve(req.Grid, req.Locks))
}

// Check is the synchronous convenience path: trigger, resolve, and report.
func (m *SolvabilityMonitor) Check(grid *Grid, locks LockedTileMap) bool {
	m.Resolve(m.Trigger(grid, locks))
	return m.solvable
}

// SolvableWithinBounds reports the last check's answer. The second return
// is false until at least one check has completed.
func (m *SolvabilityMonitor) SolvableWithinBounds() (solvable, known bool) {
	return m.solvable, m.known
}

// InProgress returns true while a check is outstanding.
func (m *SolvabilityMonitor) InProgress() bool {
	return m.inProgress
}

// Checks returns how many solver passes the monitor has run via Resolve.
func (m *SolvabilityMonitor) Checks() int {
	return m.checks
}
