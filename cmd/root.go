// Package cmd wires the lazor-solver subcommands onto a Cobra root command.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	batchcmd "github.com/lazorproj/lazor-solver/cmd/batch"
	generatecmd "github.com/lazorproj/lazor-solver/cmd/generate"
	rendercmd "github.com/lazorproj/lazor-solver/cmd/render"
	solvecmd "github.com/lazorproj/lazor-solver/cmd/solve"
	validatecmd "github.com/lazorproj/lazor-solver/cmd/validate"
	"github.com/lazorproj/lazor-solver/pkg/common"
)

var (
	verbose    bool
	workers    string
	workingDir string

	// WorkersCount is the resolved --workers value, available to subcommands.
	WorkersCount int
)

var rootCmd = &cobra.Command{
	Use:   "lazor",
	Short: "Lazor puzzle solver, generator, and batch runner",
	Long: `lazor reads .bff puzzle descriptions, solves them by enumerating
block placements and simulating laser paths, renders the result to a
terminal or PNG, and can generate new puzzles of a given difficulty.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Workers = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for puzzle file paths (default: current directory)")

	rootCmd.AddCommand(solvecmd.GetCommand())
	rootCmd.AddCommand(validatecmd.GetCommand())
	rootCmd.AddCommand(rendercmd.GetCommand())
	rootCmd.AddCommand(batchcmd.GetCommand())
	rootCmd.AddCommand(generatecmd.GetCommand())
}

// parseWorkers parses the workers flag value.
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or an integer string.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
