// Package chroma provides the Chroma grid-coloring puzzle game.
package chroma

import (
	"github.com/vovakirdan/tui-chroma/internal/config"
	platformcore "github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/puzzle"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

// solvedBannerTicks is how long the "Solved!" banner stays up after a win.
const solvedBannerTicks = 90

// Game implements the Chroma puzzle for the platform. The campaign variant
// scales board size, palette, and modifiers as levels are cleared; the zen
// variant generates fixed-difficulty boards with no modifiers.
type Game struct {
	variant string
	title   string

	cfg  config.ChromaConfig
	diff *config.DifficultyManager
	rng  *puzzle.SimpleRNG

	session *puzzle.Session
	solver  *puzzle.Solver
	hints   *puzzle.HintEngine
	monitor *puzzle.SolvabilityMonitor

	level     int
	score     int
	optimal   int // Certified solution length for the current puzzle
	hintsUsed int
	showHint  bool

	justWon   bool
	wonAt     uint64
	gameOver  bool
	paused    bool
	tooSmall  bool
	genFailed bool

	cursor  puzzle.Coord
	tick    uint64
	pending *LevelResult

	// Screen dimensions and layout
	screenW     int
	screenH     int
	cellW       int // Width of each tile in terminal chars
	hudHeight   int
	gridOffsetX int
	gridOffsetY int
}

func init() {
	registry.Register("chroma", func() registry.Game {
		return NewCampaign()
	})
	registry.Register("zen", func() registry.Game {
		return NewZen()
	})
}

// Package-level overrides set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
// Valid presets: easy, normal, hard, fixed. Empty means use the config as-is.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// NewCampaign creates the campaign variant with difficulty progression.
func NewCampaign() *Game {
	return &Game{
		variant:   "chroma",
		title:     "Chroma",
		cellW:     2,
		hudHeight: 4,
	}
}

// NewZen creates the zen variant: fixed boards, no modifiers, no scaling.
func NewZen() *Game {
	return &Game{
		variant:   "zen",
		title:     "Chroma Zen",
		cellW:     2,
		hudHeight: 4,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	var loaded config.ChromaConfig
	var err error
	if g.variant == "zen" {
		loaded, err = config.LoadZen(configPath)
	} else {
		loaded, err = config.LoadChroma(configPath)
	}
	if err != nil {
		if g.variant == "zen" {
			loaded = config.DefaultZenConfig()
		} else {
			loaded = config.DefaultChromaConfig()
		}
	}
	if difficultyPreset != "" && g.variant != "zen" {
		config.ApplyChromaPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.diff = config.NewDifficultyManager(loaded.Difficulty)

	g.rng = puzzle.NewRNG(uint64(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.level = 1
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.genFailed = false

	g.newPuzzle()
}

// genParams builds generation parameters for the current level.
func (g *Game) genParams() puzzle.GenParams {
	board := g.cfg.Board
	mods := g.cfg.Modifiers
	maxLockTurns := mods.MaxLockTurns
	if maxLockTurns < 1 {
		maxLockTurns = 1
	}
	return puzzle.GenParams{
		Size:          g.diff.BoardSize(board.Size, g.level),
		Palette:       g.diff.Palette(board.Palette, g.level),
		ScrambleMoves: g.diff.ScrambleMoves(board.ScrambleMoves, g.level),
		PowerTiles:    g.diff.PowerTiles(mods.PowerTiles, g.level),
		LockedTiles:   g.diff.LockedTiles(mods.LockedTiles, g.level),
		MaxLockTurns:  maxLockTurns,
		Seed:          g.rng.Next(),
		MaxAttempts:   25,
	}
}

// newPuzzle generates and installs the puzzle for the current level.
func (g *Game) newPuzzle() {
	params := g.genParams()
	inst, err := puzzle.Generate(params)
	if err != nil {
		// Modifier placement can fail on crowded boards; retry bare.
		params.PowerTiles = 0
		params.LockedTiles = 0
		params.Seed = g.rng.Next()
		inst, err = puzzle.Generate(params)
	}
	if err != nil {
		g.genFailed = true
		g.gameOver = true
		g.session = nil
		return
	}

	g.session = puzzle.NewSession(inst)
	g.solver = &puzzle.Solver{
		Palette:   inst.Palette,
		Power:     inst.Power,
		MaxStates: g.cfg.Solver.MaxStates,
		MaxDepth:  g.cfg.Solver.MaxDepth,
	}
	g.hints = puzzle.NewHintEngine(g.solver, inst.Certified)
	g.monitor = puzzle.NewSolvabilityMonitor(g.solver)

	g.optimal = len(inst.Certified)
	g.hintsUsed = 0
	g.showHint = false
	g.justWon = false

	mid := inst.Grid.Size / 2
	g.cursor = puzzle.At(mid, mid)

	g.calculateLayout()
}

// calculateLayout centers the board and checks the screen fits.
func (g *Game) calculateLayout() {
	if g.session == nil {
		return
	}
	size := g.session.Grid().Size

	// Board plus its border box, one status line, and the HUD.
	neededW := size*g.cellW + 4
	neededH := size + g.hudHeight + 5

	if g.screenW < neededW || g.screenH < neededH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (g.screenW - size*g.cellW) / 2
	g.gridOffsetY = g.hudHeight + (g.screenH-g.hudHeight-size-3)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.justWon && g.tick-g.wonAt > solvedBannerTicks {
		g.justWon = false
	}

	if input.Has(platformcore.ActionRestart) {
		if g.gameOver {
			g.Reset(platformcore.RuntimeConfig{
				Seed:    int64(g.rng.Next()),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
		} else {
			// Throw away the current board, stay on the same level.
			g.newPuzzle()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(platformcore.ActionHint) {
		g.toggleHint()
	}

	if input.Has(platformcore.ActionConfirm) {
		g.click()
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor applies navigation input, clamped to the board.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	size := g.session.Grid().Size
	row, col := g.cursor.Row, g.cursor.Col

	if input.Has(platformcore.ActionUp) {
		row--
	}
	if input.Has(platformcore.ActionDown) {
		row++
	}
	if input.Has(platformcore.ActionLeft) {
		col--
	}
	if input.Has(platformcore.ActionRight) {
		col++
	}

	g.cursor = puzzle.At(
		platformcore.Clamp(row, 0, size-1),
		platformcore.Clamp(col, 0, size-1),
	)
}

// toggleHint shows or hides the suggested move.
func (g *Game) toggleHint() {
	g.showHint = !g.showHint
	if g.showHint {
		if _, ok := g.hints.Suggestion(); ok {
			g.hintsUsed++
		}
	}
}

// click applies a player click at the cursor and runs the bookkeeping that
// hangs off a move: hint cache maintenance and, when a lock expires, a fresh
// solvability check.
func (g *Game) click() {
	_, unlocked := g.session.Click(g.cursor)

	if req := g.hints.PlayerMoved(g.cursor, g.session.Grid(), g.session.Locks()); req != nil {
		g.hints.Resolve(req)
	}

	if g.session.Won() {
		g.completeLevel()
		return
	}

	// A lock expiring changes which moves are legal, so the previous
	// solvability answer may no longer hold.
	if len(unlocked) > 0 {
		g.monitor.Resolve(g.monitor.Trigger(g.session.Grid(), g.session.Locks()))
	}
}

// completeLevel scores the solved puzzle and advances to the next one.
func (g *Game) completeLevel() {
	levelScore := 100 + 10*g.level
	if extra := g.session.Moves() - g.optimal; extra > 0 {
		levelScore -= 5 * extra
	}
	levelScore -= 10 * g.hintsUsed
	if levelScore < 25 {
		levelScore = 25
	}
	g.score += levelScore

	g.pending = &LevelResult{
		Level:      g.level,
		Size:       g.session.Grid().Size,
		Palette:    g.session.Instance().Palette,
		Moves:      g.session.Moves(),
		Optimal:    g.optimal,
		Hints:      g.hintsUsed,
		Score:      levelScore,
		TotalScore: g.score,
	}

	g.level++
	g.newPuzzle()
	g.justWon = true
	g.wonAt = g.tick
}

// LevelResult records a cleared level for persistence.
type LevelResult struct {
	Level      int
	Size       int
	Palette    int
	Moves      int
	Optimal    int
	Hints      int
	Score      int
	TotalScore int
}

// TakeResult returns the result of the most recently cleared level, once.
// Subsequent calls return false until another level is cleared.
func (g *Game) TakeResult() (LevelResult, bool) {
	if g.pending == nil {
		return LevelResult{}, false
	}
	res := *g.pending
	g.pending = nil
	return res, true
}

// HintSuggestion returns the currently suggested move, if one is available.
func (g *Game) HintSuggestion() (puzzle.Coord, bool) {
	if g.hints == nil {
		return puzzle.Coord{}, false
	}
	return g.hints.Suggestion()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	moves := 0
	if g.session != nil {
		moves = g.session.Moves()
	}
	return platformcore.GameState{
		Score:    g.score,
		Level:    g.level,
		Moves:    moves,
		Won:      g.justWon,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
