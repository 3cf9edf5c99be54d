// chroma is a TUI grid-coloring puzzle for the terminal.
//
// Usage:
//
//	chroma list              - List available game modes
//	chroma play <mode>       - Play a mode
//	chroma menu              - Start menu to pick a mode interactively
//	chroma serve             - Start SSH server for remote play
//	chroma scores <mode>     - Show best runs for a mode
//	chroma generate          - Generate a puzzle file
//	chroma solve <file>      - Solve a puzzle file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible puzzles
//	--db <path>     - Set database path (default: ~/.chroma/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/vovakirdan/tui-chroma/internal/games/chroma"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Chroma - a grid-coloring puzzle in your terminal",
	Long: `Chroma is a terminal puzzle game. Click a tile and it cycles its own
color along with its orthogonal neighbors; make the whole board one color
in as few moves as possible. Power tiles repaint a full 3x3 block, and
locked tiles shrug off clicks until their counter runs out.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View best runs
  generate  - Generate a puzzle file
  solve     - Solve a puzzle file

Examples:
  chroma play chroma
  chroma play zen --difficulty easy
  chroma menu
  chroma serve --ssh :2222
  chroma generate --size 5 --palette 4 --out puzzle.yaml
  chroma solve puzzle.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chroma/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
}
