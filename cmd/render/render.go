// Package render provides the command-line interface for solving a puzzle
// and writing only its rendering, for pipeline composition with other
// tools (solve without the textual stats report).
package render

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
	outFlag   string
	styleFlag string
	asciiFlag bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Solve a .bff puzzle and render the solution to a PNG or terminal",
	Long: `render parses and solves a .bff puzzle, then writes the result: a
PNG to --out if given, or the terminal grid otherwise. Unlike solve, it
does not print placement statistics; it exists for pipeline composition,
where a caller only wants the rendered artifact.

Examples:
  lazor render --file puzzle.bff --out solution.png
  lazor render --file puzzle.bff --ascii`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a .bff puzzle file (required)")
	renderCmd.Flags().StringVarP(&outFlag, "out", "o", "", "path to write a PNG rendering (omit to render to the terminal)")
	renderCmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "terminal render style: ascii or unicode")
	renderCmd.Flags().BoolVar(&asciiFlag, "ascii", false, "shorthand for --style ascii")
	renderCmd.MarkFlagRequired("file")
}

// GetCommand returns the render command.
func GetCommand() *cobra.Command {
	return renderCmd
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := bff.ParseFile(fileFlag)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileFlag, err)
	}

	spin := ui.NewProgress("solving", fileFlag)
	spin.Start()
	solution, stats, err := solve.Solve(p)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	if solution == nil {
		common.Warning("%s: infeasible (%d placements tried in %v)", fileFlag, stats.PlacementsTried, stats.Elapsed)
		return fmt.Errorf("puzzle is infeasible")
	}

	if outFlag != "" {
		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outFlag, err)
		}
		defer f.Close()
		if err := render.RenderToPNG(f, solution.Lattice, solution.Trace, p.Targets); err != nil {
			return fmt.Errorf("failed to render PNG: %w", err)
		}
		common.Info("wrote %s", outFlag)
		return nil
	}

	style := styleFlag
	if asciiFlag {
		style = "ascii"
	}
	render.RenderToWriter(cmd.OutOrStdout(), solution.Lattice, solution.Visited, p.Targets, style)
	return nil
}
