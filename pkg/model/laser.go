package model

// Laser is a beam positioned at a lattice point, travelling in a unit
// direction. vx and vy are each -1 or +1 for a live laser; an absorbed
// laser has vx == vy == 0.
type Laser struct {
	X, Y   int
	VX, VY int
}

// Position returns the laser's current lattice point.
func (l Laser) Position() Point {
	return Point{X: l.X, Y: l.Y}
}

// Absorbed reports whether the laser has been stopped by an opaque block.
func (l Laser) Absorbed() bool {
	return l.VX == 0 && l.VY == 0
}

// Step advances the laser by its current velocity.
func (l *Laser) Step() {
	l.X += l.VX
	l.Y += l.VY
}

// ReflectX negates the laser's X velocity component.
func (l *Laser) ReflectX() {
	l.VX = -l.VX
}

// ReflectY negates the laser's Y velocity component.
func (l *Laser) ReflectY() {
	l.VY = -l.VY
}

// Absorb stops the laser in place.
func (l *Laser) Absorb() {
	l.VX, l.VY = 0, 0
}

// RefractedX returns a new laser at the same position with its X velocity
// component reversed: the split produced when an X-neighbour is a refractor.
func (l Laser) RefractedX() Laser {
	return Laser{X: l.X, Y: l.Y, VX: -l.VX, VY: l.VY}
}

// RefractedY returns a new laser at the same position with its Y velocity
// component reversed: the split produced when a Y-neighbour is a refractor.
func (l Laser) RefractedY() Laser {
	return Laser{X: l.X, Y: l.Y, VX: l.VX, VY: -l.VY}
}
