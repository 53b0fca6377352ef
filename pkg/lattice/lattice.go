// Package lattice implements the half-integer grid model: a padded
// rectangular matrix of blocks, and the two-neighbour stepping rule
// lasers use to interact with it.
package lattice

import (
	"fmt"

	"github.com/lazorproj/lazor-solver/pkg/model"
)

// Lattice is a rectangular matrix of blocks, indexed (cx, cy) with
// 0 <= cx < W and 0 <= cy < H. A cell is a placeable block slot exactly
// when both cx and cy are odd; every other cell is interstitial (None,
// fixed) padding introduced by the .bff parser's doubling scheme.
type Lattice struct {
	W, H  int
	cells []model.Block
}

// New builds an empty lattice of the given dimensions, with every cell
// initialised to a fixed None block. W and H are expected to both be odd,
// per the parser's padding scheme, but New does not enforce this: callers
// that violate it get an unconventional lattice, not a panic.
func New(w, h int) *Lattice {
	l := &Lattice{W: w, H: h, cells: make([]model.Block, w*h)}
	for i := range l.cells {
		l.cells[i] = model.Block{Kind: model.None, Fixed: true}
	}
	return l
}

func (l *Lattice) index(x, y int) int {
	return y*l.W + x
}

// InBounds reports whether (x, y) addresses a cell of this lattice.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.W && y >= 0 && y < l.H
}

// Get returns the block at (x, y). Panics if out of bounds; callers are
// expected to check InBounds first.
func (l *Lattice) Get(x, y int) model.Block {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("lattice: Get(%d,%d) out of bounds (%dx%d)", x, y, l.W, l.H))
	}
	return l.cells[l.index(x, y)]
}

// Set writes a block at (x, y). The target cell must currently be an
// unfixed Empty slot; writing over a fixed or None cell is a programming
// defect and panics rather than silently succeeding.
func (l *Lattice) Set(x, y int, b model.Block) {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("lattice: Set(%d,%d) out of bounds (%dx%d)", x, y, l.W, l.H))
	}
	cur := l.cells[l.index(x, y)]
	if !cur.IsEmpty() {
		panic(fmt.Sprintf("lattice: Set(%d,%d) target is not an empty slot (kind=%v fixed=%v)", x, y, cur.Kind, cur.Fixed))
	}
	l.cells[l.index(x, y)] = b
}

// SetRaw writes a block unconditionally, bypassing the empty-slot check.
// Used by the parser and the puzzle generator while they build a lattice.
func (l *Lattice) SetRaw(x, y int, b model.Block) {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("lattice: SetRaw(%d,%d) out of bounds (%dx%d)", x, y, l.W, l.H))
	}
	l.cells[l.index(x, y)] = b
}

// EmptyPositions returns every unfixed Empty cell, in row-major order.
func (l *Lattice) EmptyPositions() []model.Point {
	out := make([]model.Point, 0)
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			if l.cells[l.index(x, y)].IsEmpty() {
				out = append(out, model.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	out := &Lattice{W: l.W, H: l.H, cells: make([]model.Block, len(l.cells))}
	copy(out.cells, l.cells)
	return out
}

// ResetFrom overwrites this lattice's contents with a snapshot from other.
// Both lattices must share the same dimensions. Preferred over repeated
// Clone()s in the solver's hot loop.
func (l *Lattice) ResetFrom(other *Lattice) {
	if l.W != other.W || l.H != other.H {
		panic(fmt.Sprintf("lattice: ResetFrom dimension mismatch %dx%d vs %dx%d", l.W, l.H, other.W, other.H))
	}
	copy(l.cells, other.cells)
}
