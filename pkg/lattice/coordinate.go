package lattice

import "github.com/lazorproj/lazor-solver/pkg/model"

// XNeighbor returns the lattice point immediately ahead of the laser along
// its X velocity component.
func XNeighbor(l model.Laser) model.Point {
	return model.Point{X: l.X + l.VX, Y: l.Y}
}

// YNeighbor returns the lattice point immediately ahead of the laser along
// its Y velocity component.
func YNeighbor(l model.Laser) model.Point {
	return model.Point{X: l.X, Y: l.Y + l.VY}
}

// isBlockSlot reports whether a lattice point can hold a placed block.
// Per the padding scheme in buildLattice, a point is a slot exactly when
// both coordinates are odd; every other point is a fixed None cell.
func isBlockSlot(p model.Point) bool {
	return p.X%2 != 0 && p.Y%2 != 0
}

// AssertParity panics if both the X-neighbour and Y-neighbour of a laser
// are simultaneously block slots. The padded lattice construction
// guarantees this never happens: a live laser always sits at a point
// with exactly one odd coordinate, so exactly one of its two neighbours
// can be a block slot (the other always has both coordinates even, never
// a slot). A violation here indicates a malformed lattice, not a puzzle
// a .bff file can express.
func AssertParity(xn, yn model.Point) {
	if isBlockSlot(xn) && isBlockSlot(yn) {
		panic("lattice: parity invariant violated: both X and Y neighbours address block slots")
	}
}
