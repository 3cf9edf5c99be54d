package chroma

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.genFailed {
		g.renderOverlay(dst, "Puzzle generation failed", "Press R to retry")
		return
	}
	if g.session == nil {
		return
	}

	g.renderBoard(dst)
	g.renderStatus(dst)

	switch {
	case g.justWon:
		g.renderOverlay(dst, "Solved!", fmt.Sprintf("Level %d", g.level))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title
	if g.session != nil {
		hud = fmt.Sprintf(" %s | Score: %d | Level: %d | Moves: %d (best %d)",
			g.title, g.score, g.level, g.session.Moves(), g.optimal)
		if g.hintsUsed > 0 {
			hud += fmt.Sprintf(" | Hints: %d", g.hintsUsed)
		}
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}

	controls := " ←↑↓→: Move | Space: Paint | H: Hint | R: Restart | P: Pause"
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 3, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the grid with its border, modifiers, cursor, and hint.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.session.Grid()
	locks := g.session.Locks()
	power := g.session.Instance().Power
	size := grid.Size

	dst.DrawBox(platformcore.NewRect(g.gridOffsetX-1, g.gridOffsetY-1, size*g.cellW+2, size+2))

	hint, hintOK := g.hints.Suggestion()
	showHint := g.showHint && hintOK

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := puzzle.At(row, col)
			x := g.gridOffsetX + col*g.cellW
			y := g.gridOffsetY + row

			color := platformcore.PaletteColor(int(grid.At(c)))
			g.renderTile(dst, x, y, c, color, locks, power)

			if showHint && c.Equal(hint) {
				dst.SetWithColor(x-1, y, '▸', platformcore.ColorBrightWhite)
				dst.SetWithColor(x+g.cellW, y, '◂', platformcore.ColorBrightWhite)
			}
			if c.Equal(g.cursor) {
				dst.SetWithColor(x-1, y, '[', platformcore.ColorBrightYellow)
				dst.SetWithColor(x+g.cellW, y, ']', platformcore.ColorBrightYellow)
			}
		}
	}
}

// renderTile draws one 2-char tile. Power tiles carry a diamond marker,
// locked tiles render hatched with their remaining counter.
func (g *Game) renderTile(dst *platformcore.Screen, x, y int, c puzzle.Coord, color platformcore.Color, locks puzzle.LockedTileMap, power puzzle.PowerTileSet) {
	switch {
	case locks.Locked(c):
		turns := locks.Turns(c)
		counter := '+'
		if turns <= 9 {
			counter = rune('0' + turns)
		}
		dst.SetWithColor(x, y, '▒', color)
		dst.SetWithColor(x+1, y, counter, platformcore.ColorBrightWhite)
	case power.Has(c):
		dst.SetWithColor(x, y, '◆', color)
		dst.SetWithColor(x+1, y, '█', color)
	default:
		dst.SetWithColor(x, y, '█', color)
		dst.SetWithColor(x+1, y, '█', color)
	}
}

// renderStatus draws the line under the board: lock summary, hint text, and
// the solvability warning.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	y := g.gridOffsetY + g.session.Grid().Size + 1

	if solvable, known := g.monitor.SolvableWithinBounds(); known && !solvable {
		dst.DrawTextWithColor(1, y, " No solution found within search bounds", platformcore.ColorBrightRed)
		return
	}

	if g.showHint {
		if hint, ok := g.hints.Suggestion(); ok {
			dst.DrawTextWithColor(1, y, fmt.Sprintf(" Hint: paint (%d,%d)", hint.Row, hint.Col), platformcore.ColorBrightWhite)
		} else if g.hints.Recomputing() {
			dst.DrawTextWithColor(1, y, " Hint: thinking...", platformcore.ColorGray)
		} else {
			dst.DrawTextWithColor(1, y, " Hint: no path found within bounds", platformcore.ColorGray)
		}
		return
	}

	if n := g.session.Locks().Count(); n > 0 {
		dst.DrawTextWithColor(1, y, fmt.Sprintf(" Locked tiles: %d", n), platformcore.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
