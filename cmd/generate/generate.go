// Package generate provides the command-line interface for producing a
// new, solvable-by-construction .bff puzzle at a named difficulty tier.
package generate

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazorproj/lazor-solver/pkg/bff"
	"github.com/lazorproj/lazor-solver/pkg/common"
	"github.com/lazorproj/lazor-solver/pkg/genpuzzle"
	"github.com/lazorproj/lazor-solver/pkg/ui"
)

var (
	outFlag        string
	difficultyFlag string
	seedFlag       int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new .bff puzzle at a given difficulty tier",
	Long: `generate plants a random witness placement on a freshly sized
board, simulates it, and harvests its visited points as targets, so the
written puzzle is guaranteed solvable before the witness is discarded.

Examples:
  lazor generate --out puzzle.bff --difficulty Easy
  lazor generate --out puzzle.bff --difficulty Hard --seed 42`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outFlag, "out", "o", "", "path to write the generated .bff file (required)")
	generateCmd.Flags().StringVarP(&difficultyFlag, "difficulty", "d", genpuzzle.Easy, "difficulty tier: Easy, Medium, or Hard")
	generateCmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed (0 selects a time-derived seed)")
	generateCmd.MarkFlagRequired("out")
}

// GetCommand returns the generate command.
func GetCommand() *cobra.Command {
	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spin := ui.NewProgress("generating", fmt.Sprintf("%s puzzle", difficultyFlag))
	spin.Start()
	p, stats, err := genpuzzle.Generate(genpuzzle.Options{Tier: difficultyFlag, Seed: seed})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	f, err := os.Create(outFlag)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outFlag, err)
	}
	defer f.Close()

	if err := bff.Write(f, p); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFlag, err)
	}

	common.Info("wrote %s (%s, seed %d, %d plant attempts, %d empty cells, %d targets, budget total %d)",
		outFlag, difficultyFlag, seed, stats.Attempts, len(p.Lattice0.EmptyPositions()), len(p.Targets), p.Budget.Total())
	return nil
}
