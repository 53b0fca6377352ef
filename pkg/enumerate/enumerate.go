// Package enumerate produces the sequence of candidate block placements
// consistent with a budget and a set of available positions: combinations
// when the budget names a single kind, permutations (mapped onto a fixed
// kind multiset) otherwise.
package enumerate

import (
	"iter"

	"github.com/lazorproj/lazor-solver/pkg/model"
)

// Entry assigns one kind to one lattice position.
type Entry struct {
	Pos  model.Point
	Kind model.BlockKind
}

// Placement is an ordered list of distinct-position entries, one per unit
// of budget.
type Placement []Entry

// Enumerator produces placements consistent with a budget over a fixed
// set of candidate positions.
type Enumerator struct {
	positions []model.Point
	budget    model.Budget
}

// New builds an Enumerator over the given empty positions (row-major order
// expected, as produced by Lattice.EmptyPositions) and budget.
func New(positions []model.Point, budget model.Budget) Enumerator {
	return Enumerator{positions: positions, budget: budget}
}

// kindsInOrder returns the flattened kind multiset in the fixed order
// Reflect, Opaque, Refract, which is the order permutation slots are
// assigned kinds.
func kindsInOrder(b model.Budget) []model.BlockKind {
	order := []model.BlockKind{model.Reflect, model.Opaque, model.Refract}
	out := make([]model.BlockKind, 0, b.Total())
	for _, k := range order {
		for i := 0; i < b[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}

// singleKind returns the one nonzero kind and true if the budget names
// exactly one kind with a positive count.
func singleKind(b model.Budget) (model.BlockKind, bool) {
	var found model.BlockKind
	count := 0
	for k, n := range b {
		if n > 0 {
			count++
			found = k
		}
	}
	return found, count == 1
}

// All returns every placement consistent with the enumerator's budget, in
// deterministic order: lexicographic over position tuples for the
// combination regime, standard permutation order for the mixed regime.
func (e Enumerator) All() iter.Seq[Placement] {
	k := e.budget.Total()
	if k == 0 {
		return func(yield func(Placement) bool) {
			yield(Placement{})
		}
	}
	if kind, ok := singleKind(e.budget); ok {
		return e.combinations(kind, k)
	}
	return e.permutations(k)
}

// combinations yields every C(n, k) unordered subset of positions, each
// mapped entirely to kind.
func (e Enumerator) combinations(kind model.BlockKind, k int) iter.Seq[Placement] {
	n := len(e.positions)
	return func(yield func(Placement) bool) {
		if k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			placement := make(Placement, k)
			for i, pi := range idx {
				placement[i] = Entry{Pos: e.positions[pi], Kind: kind}
			}
			if !yield(placement) {
				return
			}
			if !advance(idx, n) {
				return
			}
		}
	}
}

// advance moves idx to the lexicographically next k-combination of
// [0, n). Returns false once combinations are exhausted.
func advance(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}

// permutations yields every P(n, k) ordered selection of positions, mapping
// position i in the permutation to the i-th entry of the fixed kind
// multiset.
func (e Enumerator) permutations(k int) iter.Seq[Placement] {
	n := len(e.positions)
	kinds := kindsInOrder(e.budget)
	return func(yield func(Placement) bool) {
		if k > n {
			return
		}
		// Iterative lexicographic walk: cursor[depth] is the next candidate
		// index to try at that depth, perm[depth] the index committed there.
		// Advancing pops back to the shallowest depth with remaining
		// candidates instead of recursing, the same explicit-index-array
		// style as the combination walk above.
		used := make([]bool, n)
		perm := make([]int, k)
		cursor := make([]int, k)
		depth := 0
		cursor[0] = 0
		for depth >= 0 {
			if depth == k {
				placement := make(Placement, k)
				for i, pi := range perm {
					placement[i] = Entry{Pos: e.positions[pi], Kind: kinds[i]}
				}
				if !yield(placement) {
					return
				}
				depth--
				if depth >= 0 {
					used[perm[depth]] = false
					cursor[depth] = perm[depth] + 1
				}
				continue
			}

			advanced := false
			for i := cursor[depth]; i < n; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				perm[depth] = i
				cursor[depth] = i + 1
				depth++
				if depth < k {
					cursor[depth] = 0
				}
				advanced = true
				break
			}
			if !advanced {
				depth--
				if depth >= 0 {
					used[perm[depth]] = false
					cursor[depth] = perm[depth] + 1
				}
			}
		}
	}
}
