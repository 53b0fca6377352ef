// Package batch provides the command-line interface for concurrently
// solving every .bff puzzle in a directory.
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazorproj/lazor-solver/pkg/batch"
	"github.com/lazorproj/lazor-solver/pkg/common"
	"github.com/lazorproj/lazor-solver/pkg/ui"
)

var (
	dir      string
	statsOut string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve every .bff puzzle in a directory concurrently",
	Long: `batch globs every .bff file in --dir, solves each one on a pool of
workers bounded by the root --workers flag, and reports a summary of
how many were solved, infeasible, or failed to parse.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&dir, "dir", ".", "directory to glob *.bff puzzle files from")
	batchCmd.Flags().StringVar(&statsOut, "stats-out", "", "optional path to write a JSON summary")
}

// GetCommand returns the batch command.
func GetCommand() *cobra.Command {
	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	workers := common.Workers
	common.Info("Solving puzzles in %s with %d workers...", dir, workers)

	spin := ui.NewProgress("solving batch in", dir)
	spin.Start()

	var done int
	summary, err := batch.Run(batch.Config{
		Dir:      dir,
		Workers:  workers,
		StatsOut: statsOut,
		OnResult: func(r batch.Result) {
			done++
			spin.Files(done)
			switch {
			case r.Error != "":
				spin.Warn("  %s: %s", r.File, r.Error)
			case !r.Solved:
				spin.Log("  %s: infeasible (%d placements tried)", r.File, r.PlacementsTried)
			default:
				spin.Log("  %s: solved (%d placements tried, %dms)", r.File, r.PlacementsTried, r.ElapsedMS)
			}
		},
	})
	spin.Stop()
	if err != nil {
		return err
	}

	common.Info("\n=== Batch Summary ===")
	common.Info("Total time: %v", summary.TotalTime)
	common.Info("Solved: %d / %d", summary.SuccessCount, len(summary.Results))
	common.Info("Failed/infeasible: %d", summary.FailureCount)

	if summary.FailureCount > 0 {
		return fmt.Errorf("%d puzzles failed to parse", countParseFailures(summary))
	}
	return nil
}

func countParseFailures(summary *batch.Summary) int {
	n := 0
	for _, r := range summary.Results {
		if r.Error != "" {
			n++
		}
	}
	return n
}
