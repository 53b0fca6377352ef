// Package puzzle ties the lattice and model packages together into the
// immutable Puzzle record handed from a parser to the solver.
package puzzle

import (
	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/model"
)

// Puzzle is the immutable, parser-produced input to the solver. Lattice0
// is never mutated after construction; the solver works on clones.
type Puzzle struct {
	Lattice0 *lattice.Lattice
	Emitters []model.Laser
	Targets  map[model.Point]struct{}
	Budget   model.Budget
}

// CloneEmitters returns a fresh copy of the puzzle's emitters, since the
// simulator mutates laser state in place.
func (p *Puzzle) CloneEmitters() []model.Laser {
	out := make([]model.Laser, len(p.Emitters))
	copy(out, p.Emitters)
	return out
}
