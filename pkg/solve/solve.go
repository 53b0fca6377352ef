// Package solve implements the combinatorial search: enumerate candidate
// placements, apply each to a scratch lattice, simulate, and stop at the
// first placement whose laser paths cover every target.
package solve

import (
	"time"

	"github.com/lazorproj/lazor-solver/pkg/enumerate"
	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/model"
	"github.com/lazorproj/lazor-solver/pkg/puzzle"
	"github.com/lazorproj/lazor-solver/pkg/simulate"
)

// Solution is the winning lattice plus the trace that proves it.
type Solution struct {
	Lattice *lattice.Lattice
	Visited map[model.Point]struct{}
	Trace   [][]model.Point
	Placed  enumerate.Placement
}

// Stats instruments a Solve call.
type Stats struct {
	PlacementsTried int
	Elapsed         time.Duration
}

// Solve iterates placements from the enumerator over p's budget and empty
// positions, returning the first placement whose simulated laser paths
// cover every target. A nil Solution with a nil error means the search was
// exhausted, an ordinary outcome rather than a failure.
func Solve(p *puzzle.Puzzle) (*Solution, Stats, error) {
	return SolveWithCallback(p, nil)
}

// SolveWithCallback behaves like Solve but invokes onAttempt after each
// placement is tried (whether or not it succeeded), for progress reporting.
func SolveWithCallback(p *puzzle.Puzzle, onAttempt func(Stats)) (*Solution, Stats, error) {
	start := time.Now()
	var stats Stats

	positions := p.Lattice0.EmptyPositions()
	enumerator := enumerate.New(positions, p.Budget)

	scratch := p.Lattice0.Clone()

	for placement := range enumerator.All() {
		scratch.ResetFrom(p.Lattice0)
		applyPlacement(scratch, placement)

		emitters := p.CloneEmitters()
		result := simulate.Run(scratch, emitters)

		stats.PlacementsTried++
		if onAttempt != nil {
			onAttempt(stats)
		}

		if simulate.CoversTargets(result.Visited, p.Targets) {
			stats.Elapsed = time.Since(start)
			return &Solution{
				Lattice: scratch.Clone(),
				Visited: result.Visited,
				Trace:   result.Trace,
				Placed:  placement,
			}, stats, nil
		}
	}

	stats.Elapsed = time.Since(start)
	return nil, stats, nil
}

func applyPlacement(lat *lattice.Lattice, placement enumerate.Placement) {
	for _, entry := range placement {
		lat.Set(entry.Pos.X, entry.Pos.Y, model.Block{Kind: entry.Kind})
	}
}
