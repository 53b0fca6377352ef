// Package genpuzzle generates random, solvable-by-construction .bff
// puzzles at a named difficulty tier. A tier picks a grid size, block
// budget, and target count range; the generator plants a witness
// placement, simulates it, and harvests targets from the witness's own
// visited set so the puzzle is always solvable, then discards the
// witness (but not its fixed obstacles) before writing the puzzle out.
package genpuzzle

import (
	"container/heap"
	"fmt"
	"math/rand"
	"sort"

	"github.com/lazorproj/lazor-solver/pkg/lattice"
	"github.com/lazorproj/lazor-solver/pkg/model"
	"github.com/lazorproj/lazor-solver/pkg/puzzle"
	"github.com/lazorproj/lazor-solver/pkg/simulate"
)

// Tier names accepted by Generate.
const (
	Easy   = "Easy"
	Medium = "Medium"
	Hard   = "Hard"
)

// TierSpec defines the generation constraints for one difficulty tier.
type TierSpec struct {
	GridSizeRange  [2]int  // inclusive range of logical grid side length (square boards)
	BudgetRange    [2]int  // inclusive range of total movable-block count
	TargetRange    [2]int  // inclusive range of target count
	FixedFraction  float64 // fraction of the board's empty cells planted as fixed obstacles
	MinCoveragePct float64 // difficulty balancing: keep planting while the best visited set covers less of the board than this
}

// DifficultyTiers maps tier names to their generation constraints.
var DifficultyTiers = map[string]TierSpec{
	Easy: {
		GridSizeRange:  [2]int{3, 5},
		BudgetRange:    [2]int{1, 2},
		TargetRange:    [2]int{1, 2},
		FixedFraction:  0.0,
		MinCoveragePct: 0.0,
	},
	Medium: {
		GridSizeRange:  [2]int{5, 8},
		BudgetRange:    [2]int{2, 4},
		TargetRange:    [2]int{2, 4},
		FixedFraction:  0.1,
		MinCoveragePct: 0.15,
	},
	Hard: {
		GridSizeRange:  [2]int{8, 12},
		BudgetRange:    [2]int{4, 7},
		TargetRange:    [2]int{3, 6},
		FixedFraction:  0.2,
		MinCoveragePct: 0.30,
	},
}

// Options configures a single generation run.
type Options struct {
	Tier string
	Seed int64
}

// Stats instruments a Generate call: how many candidate plants were
// tried, up to and including the first that satisfied the tier's
// coverage bar (or maxAttempts, if none did), mirroring
// pkg/solve.Stats's "how much budget did the search use" convention.
type Stats struct {
	Attempts int
}

// candidate is one plant attempt queued for difficulty balancing: a
// fully-built lattice (obstacles and movable witness blocks both set,
// so the witness simulation sees the finished board) plus the emitter
// and simulation result for that plant, and the positions/kinds of the
// movable blocks so they can later be stripped back to Empty for the
// puzzle the solver actually receives. Scored by how little of the
// board the witness's beams cover (lower cost is a harder puzzle), so
// heap.Pop yields the most promising (hardest) candidate first.
type candidate struct {
	lat       *lattice.Lattice
	witness   []model.Laser
	result    simulate.Result
	movable   []model.Point
	movableOf map[model.Point]model.BlockKind
	cost      float64
	index     int
}

type candidateQueue []*candidate

func (q candidateQueue) Len() int           { return len(q) }
func (q candidateQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q candidateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *candidateQueue) Push(x interface{}) {
	n := len(*q)
	item := x.(*candidate)
	item.index = n
	*q = append(*q, item)
}
func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[0 : n-1]
	return item
}

// maxAttempts bounds the difficulty-balancing retry loop, which runs for
// every tier until its MinCoveragePct is cleared; exceeding it returns the best candidate seen rather than looping forever.
const maxAttempts = 64

// Generate produces a new puzzle at the requested tier, deterministic
// given the same seed. math/rand with an explicit seed is intentional:
// determinism is a feature here, not a security boundary.
func Generate(opts Options) (*puzzle.Puzzle, Stats, error) {
	spec, ok := DifficultyTiers[opts.Tier]
	if !ok {
		return nil, Stats{}, fmt.Errorf("genpuzzle: unknown tier %q", opts.Tier)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	side := intInRange(rng, spec.GridSizeRange)
	budgetTotal := intInRange(rng, spec.BudgetRange)
	targetCount := intInRange(rng, spec.TargetRange)

	stats := Stats{}
	var best *candidate

	pq := &candidateQueue{}
	heap.Init(pq)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		stats.Attempts++
		c := plantOne(rng, side, budgetTotal, spec.FixedFraction)
		heap.Push(pq, c)

		top := (*pq)[0]
		if best == nil || top.cost < best.cost {
			best = top
		}
		if 1.0-best.cost >= spec.MinCoveragePct {
			break
		}
	}
	if best == nil {
		return nil, stats, fmt.Errorf("genpuzzle: failed to produce any candidate for tier %q", opts.Tier)
	}

	targets := harvestTargets(rng, best.result, targetCount)
	if len(targets) == 0 {
		return nil, stats, fmt.Errorf("genpuzzle: witness placement for tier %q visited no points to harvest targets from", opts.Tier)
	}

	budget := make(model.Budget)
	for _, p := range best.movable {
		budget[best.movableOf[p]]++
	}

	return &puzzle.Puzzle{
		Lattice0: stripMovable(best),
		Emitters: best.witness,
		Targets:  targets,
		Budget:   budget,
	}, stats, nil
}

func intInRange(rng *rand.Rand, r [2]int) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}

// plantOne builds a side x side lattice, plants fixedFraction of its
// empty cells as fixed obstacles, plants budgetTotal movable blocks as a
// witness placement, and simulates a single emitter fired from a random
// board edge through it, scoring the plant by how little of the board
// the witness's beams leave uncovered (so the difficulty-balancing
// min-heap prefers witnesses whose beams cover more of the board).
func plantOne(rng *rand.Rand, side, budgetTotal int, fixedFraction float64) *candidate {
	w, h := 2*side+1, 2*side+1
	lat := lattice.New(w, h)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			lat.SetRaw(2*c+1, 2*r+1, model.Block{Kind: model.Empty})
		}
	}

	positions := lat.EmptyPositions()
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	nFixed := int(float64(len(positions)) * fixedFraction)
	if nFixed > len(positions) {
		nFixed = len(positions)
	}
	obstacleKinds := []model.BlockKind{model.Reflect, model.Opaque, model.Refract}
	for i := 0; i < nFixed; i++ {
		p := positions[i]
		lat.SetRaw(p.X, p.Y, model.Block{Kind: obstacleKinds[rng.Intn(len(obstacleKinds))], Fixed: true})
	}

	remaining := positions[nFixed:]
	movableKinds := []model.BlockKind{model.Reflect, model.Opaque, model.Refract}
	nMovable := budgetTotal
	if nMovable > len(remaining) {
		nMovable = len(remaining)
	}
	movable := make([]model.Point, 0, nMovable)
	movableOf := make(map[model.Point]model.BlockKind, nMovable)
	for i := 0; i < nMovable; i++ {
		p := remaining[i]
		kind := movableKinds[rng.Intn(len(movableKinds))]
		lat.SetRaw(p.X, p.Y, model.Block{Kind: kind, Fixed: true})
		movable = append(movable, p)
		movableOf[p] = kind
	}

	emitter := randomEdgeEmitter(rng, w, h)
	witness := []model.Laser{emitter}
	result := simulate.Run(lat, witness)

	return &candidate{
		lat:       lat,
		witness:   witness,
		result:    result,
		movable:   movable,
		movableOf: movableOf,
		cost:      1.0 - coverageOf(result, w, h),
	}
}

// randomEdgeEmitter picks a laser origin on the lattice border, aimed
// inward, so it has a chance of crossing the board rather than exiting
// immediately.
func randomEdgeEmitter(rng *rand.Rand, w, h int) model.Laser {
	switch rng.Intn(4) {
	case 0: // left edge, aim right
		return model.Laser{X: 0, Y: 1 + 2*rng.Intn((h-1)/2), VX: 1, VY: pickAxis(rng)}
	case 1: // right edge, aim left
		return model.Laser{X: w - 1, Y: 1 + 2*rng.Intn((h-1)/2), VX: -1, VY: pickAxis(rng)}
	case 2: // top edge, aim down
		return model.Laser{X: 1 + 2*rng.Intn((w-1)/2), Y: 0, VX: pickAxis(rng), VY: 1}
	default: // bottom edge, aim up
		return model.Laser{X: 1 + 2*rng.Intn((w-1)/2), Y: h - 1, VX: pickAxis(rng), VY: -1}
	}
}

func pickAxis(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func coverageOf(result simulate.Result, w, h int) float64 {
	if w*h == 0 {
		return 0
	}
	return float64(len(result.Visited)) / float64(w*h)
}

// harvestTargets samples up to n points from the witness's visited set,
// guaranteeing the generated puzzle is solvable by the (discarded)
// witness placement.
func harvestTargets(rng *rand.Rand, result simulate.Result, n int) map[model.Point]struct{} {
	pts := make([]model.Point, 0, len(result.Visited))
	for p := range result.Visited {
		pts = append(pts, p)
	}
	// Map iteration order is random; sort first so the seeded shuffle
	// below picks the same targets for the same seed.
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	out := make(map[model.Point]struct{})
	for i := 0; i < n && i < len(pts); i++ {
		out[pts[i]] = struct{}{}
	}
	return out
}

// stripMovable returns a clone of c's lattice with every witness-only
// movable block reset to an unfixed Empty slot, so the puzzle handed to
// the solver exposes those cells as placement candidates again; the
// fixed obstacles planted alongside them are left untouched.
func stripMovable(c *candidate) *lattice.Lattice {
	out := c.lat.Clone()
	for _, p := range c.movable {
		out.SetRaw(p.X, p.Y, model.Block{Kind: model.Empty})
	}
	return out
}
