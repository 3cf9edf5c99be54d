package chroma

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Level     int
	Score     int
	Moves     int
	Optimal   int
	HintsUsed int
	CursorRow int
	CursorCol int
	GridKey   string
	LocksKey  string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.justWon:
		state = StateSolved
	}

	snap := Snapshot{
		Tick:      g.tick,
		Variant:   g.variant,
		Level:     g.level,
		Score:     g.score,
		Optimal:   g.optimal,
		HintsUsed: g.hintsUsed,
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		State:     state,
	}
	if g.session != nil {
		snap.Moves = g.session.Moves()
		snap.GridKey = g.session.Grid().Key()
		snap.LocksKey = g.session.Locks().Key()
	}
	return snap
}
