// Package model holds the data types shared by the lattice, simulator,
// enumerator, and solver: blocks, budgets, lasers, and points. The
// immutable puzzle record lives in pkg/puzzle.
package model

// BlockKind is the closed set of block variants a lattice cell can hold.
type BlockKind int

const (
	// Empty denotes a cell available for placement.
	Empty BlockKind = iota
	// None denotes a forbidden/interstitial cell; never overwritten.
	None
	// Reflect flips the velocity component facing the laser.
	Reflect
	// Opaque absorbs any laser that steps toward it.
	Opaque
	// Refract passes the original laser through and spawns a reflected split.
	Refract
	// LaserTrace is produced only by the simulator, for rendering.
	LaserTrace
)

// String renders the kind using the single-letter vocabulary of the .bff format.
func (k BlockKind) String() string {
	switch k {
	case Empty:
		return "o"
	case None:
		return "x"
	case Reflect:
		return "A"
	case Opaque:
		return "B"
	case Refract:
		return "C"
	case LaserTrace:
		return "*"
	default:
		return "?"
	}
}

// Block is a single lattice cell: its kind, and whether the enumerator may
// overwrite it. Fixed reflect/opaque/refract blocks come from the puzzle
// definition; movable ones are introduced by a placement.
type Block struct {
	Kind  BlockKind
	Fixed bool
}

// IsEmpty reports whether the block is an unfixed Empty slot, i.e. a
// candidate for placement.
func (b Block) IsEmpty() bool {
	return b.Kind == Empty && !b.Fixed
}

// Interacts reports whether the block can redirect or stop a laser.
func (b Block) Interacts() bool {
	switch b.Kind {
	case Reflect, Opaque, Refract:
		return true
	default:
		return false
	}
}
