package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/puzzle"
)

var (
	flagSolveMaxStates int
	flagSolveMaxDepth  int
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve a puzzle file",
	Long: `Load a puzzle file and search for a shortest solution.

The search is breadth-first and bounded: it gives up after exploring
--max-states board states or when solutions would exceed --max-depth moves.

Examples:
  chroma solve puzzle.yaml
  chroma solve puzzle.yaml --max-states 100000 --max-depth 40`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveMaxStates, "max-states", puzzle.DefaultMaxStates, "States explored before giving up")
	solveCmd.Flags().IntVar(&flagSolveMaxDepth, "max-depth", puzzle.DefaultMaxDepth, "Longest solution considered")
}

func runSolve(_ *cobra.Command, args []string) {
	loader := levels.NewLoader(".")
	p, err := loader.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzle: %v\n", err)
		os.Exit(1)
	}

	inst := p.Instance
	fmt.Printf("Puzzle %s: %dx%d, %d colors, %d power, %d locked\n",
		p.ID, inst.Grid.Size, inst.Grid.Size, inst.Palette,
		inst.Power.Count(), inst.Locks.Count())

	solver := &puzzle.Solver{
		Palette:   inst.Palette,
		Power:     inst.Power,
		MaxStates: flagSolveMaxStates,
		MaxDepth:  flagSolveMaxDepth,
	}

	result := solver.Solve(inst.Grid, inst.Locks)
	if !result.Found {
		fmt.Printf("No solution found within bounds (%d states explored)\n", result.States)
		if len(inst.Certified) > 0 {
			fmt.Printf("The file carries a %d-move certified solution; try wider bounds.\n", len(inst.Certified))
		}
		os.Exit(1)
	}

	fmt.Printf("Solved in %d moves (%d states explored):\n", len(result.Moves), result.States)
	for i, mv := range result.Moves {
		fmt.Printf("  %2d. click (%d,%d)\n", i+1, mv.Row, mv.Col)
	}

	if n := len(inst.Certified); n > 0 && n != len(result.Moves) {
		fmt.Printf("Certified solution in the file uses %d moves.\n", n)
	}
}
