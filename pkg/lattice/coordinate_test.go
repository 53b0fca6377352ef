package lattice

import (
	"testing"

	"github.com/lazorproj/lazor-solver/pkg/model"
)

func TestXYNeighbor(t *testing.T) {
	l := model.Laser{X: 3, Y: 5, VX: 1, VY: -1}
	xn := XNeighbor(l)
	yn := YNeighbor(l)
	if xn != (model.Point{X: 4, Y: 5}) {
		t.Errorf("XNeighbor() = %+v, want (4,5)", xn)
	}
	if yn != (model.Point{X: 3, Y: 4}) {
		t.Errorf("YNeighbor() = %+v, want (3,4)", yn)
	}
}

func TestAssertParityPassesOnExactlyOneSlot(t *testing.T) {
	// A live laser always sits with exactly one odd coordinate, so exactly
	// one of its two neighbours can be a block slot (both-odd). This should
	// never panic for any reachable laser state.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("AssertParity panicked unexpectedly: %v", r)
		}
	}()
	// Laser at an odd-X, even-Y point: XNeighbor is even/even (never a
	// slot), YNeighbor is odd/odd (a slot) -- exactly one slot.
	AssertParity(model.Point{X: 2, Y: 4}, model.Point{X: 1, Y: 5})
}

func TestAssertParityPanicsOnBothSlots(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AssertParity should panic when both neighbours are block slots")
		}
	}()
	AssertParity(model.Point{X: 1, Y: 1}, model.Point{X: 3, Y: 3})
}
