// Package simulate implements the laser propagation algorithm: reflection,
// absorption, and refraction with split generation, bounded by a hard step
// cap and a spawn cap to guard against non-terminating configurations.
package simulate

import (
	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/model"
)

// MaxSteps bounds the number of steps traced per laser before it is
// abandoned. Hitting it is not an error; it merely ends that laser.
const MaxSteps = 500

// MaxSpawns bounds the total number of refraction-spawned lasers processed
// across a single simulation run, to prevent exponential blow-up from a
// laser repeatedly crossing the same refractor.
const MaxSpawns = 4096

// Stats instruments a single Run: how much of the safety budget it used.
type Stats struct {
	LasersProcessed int
	StepsTaken      int
	SpawnsProduced  int
	SpawnCapHit     bool
}

// Result is the output contract: the set of every in-bounds point any
// laser passed through, and the ordered per-laser trace (including split
// lasers), used by the renderer.
type Result struct {
	Visited map[model.Point]struct{}
	Trace   [][]model.Point
	Stats   Stats
}

// Run traces every emitter (and every refraction split it produces) through
// lat. At each step the laser inspects the two cells ahead of it along X
// and Y; the first matching rule applies: reflect beats absorb beats
// refract beats pass-through.
func Run(lat *lattice.Lattice, emitters []model.Laser) Result {
	res := Result{
		Visited: make(map[model.Point]struct{}),
		Trace:   make([][]model.Point, 0, len(emitters)),
	}

	queue := make([]model.Laser, len(emitters))
	copy(queue, emitters)

	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]

		res.Stats.LasersProcessed++

		path := []model.Point{l.Position()}
		res.Visited[l.Position()] = struct{}{}
		seenStates := make(map[[4]int]struct{})

		for step := 0; step < MaxSteps; step++ {
			res.Stats.StepsTaken++

			state := [4]int{l.X, l.Y, l.VX, l.VY}
			if _, seen := seenStates[state]; seen {
				break
			}
			seenStates[state] = struct{}{}

			xn := lattice.XNeighbor(l)
			yn := lattice.YNeighbor(l)
			if !lat.InBounds(xn.X, xn.Y) || !lat.InBounds(yn.X, yn.Y) {
				break
			}

			lattice.AssertParity(xn, yn)
			bx := lat.Get(xn.X, xn.Y)
			by := lat.Get(yn.X, yn.Y)

			switch {
			case bx.Kind == model.Reflect:
				l.ReflectX()
				l.Step()
				path = append(path, l.Position())
			case by.Kind == model.Reflect:
				l.ReflectY()
				l.Step()
				path = append(path, l.Position())
			case bx.Kind == model.Opaque || by.Kind == model.Opaque:
				l.Absorb()
			case bx.Kind == model.Refract:
				spawn := l.RefractedX()
				l.Step()
				path = append(path, l.Position())
				if res.Stats.SpawnsProduced < MaxSpawns {
					queue = append(queue, spawn)
					res.Stats.SpawnsProduced++
				} else {
					res.Stats.SpawnCapHit = true
				}
			case by.Kind == model.Refract:
				spawn := l.RefractedY()
				l.Step()
				path = append(path, l.Position())
				if res.Stats.SpawnsProduced < MaxSpawns {
					queue = append(queue, spawn)
					res.Stats.SpawnsProduced++
				} else {
					res.Stats.SpawnCapHit = true
				}
			default:
				l.Step()
				path = append(path, l.Position())
			}

			// A step taken right after a reflection can leave the board;
			// only in-bounds points are recorded as visited.
			if lat.InBounds(l.X, l.Y) {
				res.Visited[l.Position()] = struct{}{}
			}

			if l.Absorbed() {
				break
			}
		}

		res.Trace = append(res.Trace, path)
	}

	return res
}

// CoversTargets reports whether every point in targets appears in visited.
func CoversTargets(visited map[model.Point]struct{}, targets map[model.Point]struct{}) bool {
	for t := range targets {
		if _, ok := visited[t]; !ok {
			return false
		}
	}
	return true
}
