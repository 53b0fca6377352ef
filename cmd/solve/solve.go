// Package solve provides the command-line interface for solving a single
// .bff puzzle file.
package solve

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazorproj/lazor-solver/pkg/bff"
	"github.com/lazorproj/lazor-solver/pkg/common"
	"github.com/lazorproj/lazor-solver/pkg/render"
	"github.com/lazorproj/lazor-solver/pkg/solve"
	"github.com/lazorproj/lazor-solver/pkg/ui"
)

var (
	fileFlag  string
	styleFlag string
	pngFlag   string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a .bff puzzle file",
	Long: `solve parses a .bff puzzle, enumerates candidate block placements,
and simulates each until it finds one whose laser paths cover every
target, or exhausts the search and reports the puzzle infeasible.

Examples:
  lazor solve --file puzzle.bff
  lazor solve --file puzzle.bff --style ascii
  lazor solve --file puzzle.bff --png solution.png`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a .bff puzzle file (required)")
	solveCmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	solveCmd.Flags().StringVar(&pngFlag, "png", "", "optional path to also write a PNG rendering of the solution")
	solveCmd.MarkFlagRequired("file")
}

// GetCommand returns the solve command.
func GetCommand() *cobra.Command {
	return solveCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := bff.ParseFile(fileFlag)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileFlag, err)
	}

	spin := ui.NewProgress("solving", fileFlag)
	spin.Start()
	solution, stats, err := solve.SolveWithCallback(p, func(s solve.Stats) {
		if s.PlacementsTried%5000 == 0 {
			spin.Placements(s.PlacementsTried)
		}
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	if solution == nil {
		common.Warning("no solution found (%d placements tried in %v)", stats.PlacementsTried, stats.Elapsed)
		return fmt.Errorf("puzzle is infeasible")
	}

	common.Info("solved in %v, %d placements tried", stats.Elapsed, stats.PlacementsTried)
	render.RenderToWriter(cmd.OutOrStdout(), solution.Lattice, solution.Visited, p.Targets, styleFlag)

	if pngFlag != "" {
		f, err := os.Create(pngFlag)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", pngFlag, err)
		}
		defer f.Close()
		if err := render.RenderToPNG(f, solution.Lattice, solution.Trace, p.Targets); err != nil {
			return fmt.Errorf("failed to render PNG: %w", err)
		}
		common.Info("wrote %s", pngFlag)
	}

	return nil
}
