package model

import "testing"

func TestLaserStep(t *testing.T) {
	l := Laser{X: 1, Y: 1, VX: 1, VY: -1}
	l.Step()
	if l.X != 2 || l.Y != 0 {
		t.Errorf("Step() = (%d,%d), want (2,0)", l.X, l.Y)
	}
}

func TestLaserReflectAndAbsorb(t *testing.T) {
	l := Laser{X: 1, Y: 1, VX: 1, VY: 1}
	l.ReflectX()
	if l.VX != -1 || l.VY != 1 {
		t.Errorf("ReflectX() = (%d,%d), want (-1,1)", l.VX, l.VY)
	}
	l.ReflectY()
	if l.VX != -1 || l.VY != -1 {
		t.Errorf("ReflectY() = (%d,%d), want (-1,-1)", l.VX, l.VY)
	}

	l.Absorb()
	if !l.Absorbed() {
		t.Error("expected Absorbed() after Absorb()")
	}
}

func TestLaserRefractedSplits(t *testing.T) {
	l := Laser{X: 3, Y: 5, VX: 1, VY: -1}

	rx := l.RefractedX()
	if rx.X != 3 || rx.Y != 5 || rx.VX != -1 || rx.VY != -1 {
		t.Errorf("RefractedX() = %+v, want position unchanged and VX negated", rx)
	}

	ry := l.RefractedY()
	if ry.X != 3 || ry.Y != 5 || ry.VX != 1 || ry.VY != 1 {
		t.Errorf("RefractedY() = %+v, want position unchanged and VY negated", ry)
	}

	// The original laser is untouched by either split.
	if l.VX != 1 || l.VY != -1 {
		t.Errorf("original laser mutated: %+v", l)
	}
}
