package lattice

import (
	"testing"

	"github.com/lazorproj/lazor-solver/pkg/model"
)

// buildLatticeForTest mimics the parser's padding scheme (pkg/bff.buildLattice)
// for a cols x rows grid of all-Empty cells, without importing pkg/bff (which
// would create an import cycle back into this package).
func buildLatticeForTest(cols, rows int) *Lattice {
	w, h := 2*cols+1, 2*rows+1
	l := New(w, h)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.SetRaw(2*c+1, 2*r+1, model.Block{Kind: model.Empty})
		}
	}
	return l
}

func TestNewIsAllNone(t *testing.T) {
	l := New(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b := l.Get(x, y)
			if b.Kind != model.None || !b.Fixed {
				t.Fatalf("New() cell (%d,%d) = %+v, want fixed None", x, y, b)
			}
		}
	}
}

func TestInterstitialVsSlotParity(t *testing.T) {
	l := buildLatticeForTest(2, 2)
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			slot := x%2 != 0 && y%2 != 0
			kind := l.Get(x, y).Kind
			if slot && kind != model.Empty {
				t.Errorf("(%d,%d) should be a block slot, got %v", x, y, kind)
			}
			if !slot && kind != model.None {
				t.Errorf("(%d,%d) should be interstitial None, got %v", x, y, kind)
			}
		}
	}
}

func TestSetRejectsFixedAndNone(t *testing.T) {
	l := buildLatticeForTest(1, 1)

	defer func() {
		if recover() == nil {
			t.Error("Set on a None cell should panic")
		}
	}()
	l.Set(0, 0, model.Block{Kind: model.Reflect})
}

func TestSetRejectsAlreadyFixed(t *testing.T) {
	l := buildLatticeForTest(1, 1)
	l.SetRaw(1, 1, model.Block{Kind: model.Opaque, Fixed: true})

	defer func() {
		if recover() == nil {
			t.Error("Set on an already-fixed cell should panic")
		}
	}()
	l.Set(1, 1, model.Block{Kind: model.Reflect})
}

func TestSetOnEmptySucceeds(t *testing.T) {
	l := buildLatticeForTest(1, 1)
	l.Set(1, 1, model.Block{Kind: model.Reflect})
	if got := l.Get(1, 1).Kind; got != model.Reflect {
		t.Errorf("Get(1,1) = %v, want Reflect", got)
	}
}

func TestEmptyPositionsRowMajor(t *testing.T) {
	l := buildLatticeForTest(2, 2)
	want := []model.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}}
	got := l.EmptyPositions()
	if len(got) != len(want) {
		t.Fatalf("EmptyPositions() returned %d points, want %d", len(got), len(want))
	}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("EmptyPositions()[%d] = %+v, want %+v", i, got[i], p)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := buildLatticeForTest(1, 1)
	clone := l.Clone()
	clone.Set(1, 1, model.Block{Kind: model.Opaque})

	if l.Get(1, 1).Kind != model.Empty {
		t.Error("mutating a clone should not affect the original")
	}
	if clone.Get(1, 1).Kind != model.Opaque {
		t.Error("clone did not retain its own mutation")
	}
}

func TestResetFromRestoresSnapshot(t *testing.T) {
	original := buildLatticeForTest(1, 1)
	scratch := original.Clone()
	scratch.Set(1, 1, model.Block{Kind: model.Refract})

	scratch.ResetFrom(original)
	if got := scratch.Get(1, 1).Kind; got != model.Empty {
		t.Errorf("after ResetFrom, Get(1,1) = %v, want Empty", got)
	}
}

func TestResetFromDimensionMismatchPanics(t *testing.T) {
	a := New(3, 3)
	b := New(5, 5)

	defer func() {
		if recover() == nil {
			t.Error("ResetFrom across mismatched dimensions should panic")
		}
	}()
	a.ResetFrom(b)
}

func TestInBounds(t *testing.T) {
	l := New(3, 3)
	if !l.InBounds(0, 0) || !l.InBounds(2, 2) {
		t.Error("corners should be in bounds")
	}
	if l.InBounds(-1, 0) || l.InBounds(0, 3) || l.InBounds(3, 0) {
		t.Error("out-of-range coordinates should not be in bounds")
	}
}
