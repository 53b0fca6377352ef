// Package batch concurrently solves every .bff puzzle in a directory,
// bounded by a worker count, and collects a summary. Each worker owns
// its puzzle's lattice clones outright, so no state is shared across
// goroutines beyond the results channel.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lazorproj/lazor-solver/pkg/bff"
	"github.com/lazorproj/lazor-solver/pkg/common"
	"github.com/lazorproj/lazor-solver/pkg/solve"
)

// Config controls a batch run.
type Config struct {
	Dir      string // directory to glob *.bff from
	Workers  int    // concurrency bound; at least 1
	StatsOut string // optional path to write a JSON summary

	// OnResult, if set, is invoked from Run's own goroutine as each
	// puzzle finishes, in completion order. Used for live progress.
	OnResult func(Result)
}

// Result reports one puzzle's outcome.
type Result struct {
	File            string `json:"file"`
	Solved          bool   `json:"solved"`
	PlacementsTried int    `json:"placements_tried"`
	ElapsedMS       int64  `json:"elapsed_ms"`
	Error           string `json:"error,omitempty"`
}

// Summary aggregates every Result in a run.
type Summary struct {
	Results      []Result      `json:"results"`
	TotalTime    time.Duration `json:"-"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
}

// Run solves every *.bff file under cfg.Dir concurrently, bounded by
// cfg.Workers, and returns the aggregated summary. A puzzle that parses
// and solves but is infeasible counts as Solved == false, not an error;
// Error is populated only for parse failures. An internal invariant
// violation in one file's simulation still panics the whole run: it is a
// programming defect, not a per-file outcome to recover and keep
// batching past.
func Run(cfg Config) (*Summary, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	files, err := filepath.Glob(filepath.Join(cfg.Dir, "*.bff"))
	if err != nil {
		return nil, fmt.Errorf("batch: glob failed: %w", err)
	}

	start := time.Now()
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	resultsCh := make(chan Result, len(files))

	for _, f := range files {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultsCh <- solveOne(f)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	summary := &Summary{}
	for r := range resultsCh {
		summary.Results = append(summary.Results, r)
		if r.Error == "" && r.Solved {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
		}
		if cfg.OnResult != nil {
			cfg.OnResult(r)
		}
	}
	summary.TotalTime = time.Since(start)

	if cfg.StatsOut != "" {
		if err := writeStats(cfg.StatsOut, summary); err != nil {
			common.Warning("failed to write batch stats: %v", err)
		}
	}

	return summary, nil
}

func solveOne(path string) Result {
	start := time.Now()
	result := Result{File: path}

	p, err := bff.ParseFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	solution, stats, err := solve.Solve(p)
	result.PlacementsTried = stats.PlacementsTried
	result.ElapsedMS = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Solved = solution != nil
	return result
}

func writeStats(path string, summary *Summary) error {
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
