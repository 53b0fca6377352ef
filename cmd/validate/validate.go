// Package validate provides the command-line interface for checking a
// .bff puzzle file's structure and, optionally, its solvability.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazorproj/lazor-solver/pkg/bff"
	"github.com/lazorproj/lazor-solver/pkg/common"
	"github.com/lazorproj/lazor-solver/pkg/solve"
	"github.com/lazorproj/lazor-solver/pkg/ui"
)

var (
	fileFlag      string
	checkSolvable bool
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val"},
	Short:   "Validate a .bff puzzle file",
	Long: `validate parses a .bff file and reports any structural problems:
malformed grid characters, emitters or targets outside the lattice, or a
block budget that exceeds the number of empty cells.

With --check-solvable it additionally runs the full solver and reports
whether the puzzle has a solution.

Examples:
  lazor validate --file puzzle.bff
  lazor validate --file puzzle.bff --check-solvable`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a .bff puzzle file (required)")
	validateCmd.Flags().BoolVarP(&checkSolvable, "check-solvable", "s", false, "run the solver to check solvability (may be slow)")
	validateCmd.MarkFlagRequired("file")
}

// GetCommand returns the validate command.
func GetCommand() *cobra.Command {
	return validateCmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := bff.ParseFile(fileFlag)
	if err != nil {
		return fmt.Errorf("structural validation failed: %w", err)
	}
	common.Info("%s: parsed OK (%d empty cells, %d emitters, %d targets, budget total %d)",
		fileFlag, len(p.Lattice0.EmptyPositions()), len(p.Emitters), len(p.Targets), p.Budget.Total())

	if !checkSolvable {
		return nil
	}

	spin := ui.NewProgress("checking solvability of", fileFlag)
	spin.Start()
	solution, stats, err := solve.Solve(p)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("solvability check error: %w", err)
	}

	if solution == nil {
		common.Warning("%s: infeasible (%d placements tried in %v)", fileFlag, stats.PlacementsTried, stats.Elapsed)
		return fmt.Errorf("puzzle is infeasible")
	}

	common.Info("%s: solvable (%d placements tried in %v)", fileFlag, stats.PlacementsTried, stats.Elapsed)
	return nil
}
