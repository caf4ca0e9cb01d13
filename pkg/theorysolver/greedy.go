package theorysolver

import (
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

// GreedyFinder proposes fixing sets with the greedy set-cover
// approximation. Proposals are recomputed from scratch over every
// accumulated core on each call and are not guaranteed to be minimum.
type GreedyFinder[C comparable] struct {
	all   []C
	known sets.Set[C]
	cores [][]C
}

var _ FixingSetFinder[int] = &GreedyFinder[int]{}

func NewGreedyFinder[C comparable]() *GreedyFinder[C] {
	return &GreedyFinder[C]{}
}

func (f *GreedyFinder[C]) Setup(all []C) {
	f.all = copyCore(all)
	f.known = sets.New(all...)
	f.cores = nil
}

func (f *GreedyFinder[C]) AddCore(core []C) error {
	for _, c := range core {
		if !f.known.Has(c) {
			return UnknownConstraint{Constraint: c}
		}
	}
	f.cores = append(f.cores, copyCore(core))
	return nil
}

func (f *GreedyFinder[C]) CurrentFixingSet(WeakeningListener) ([]C, Action, error) {
	uncovered := make([]sets.Set[C], len(f.cores))
	for i, core := range f.cores {
		uncovered[i] = sets.New(core...)
	}

	var out []C
	for len(uncovered) > 0 {
		// Pick the constraint appearing in the greatest number of
		// uncovered cores; the first one in input order wins ties.
		counts := make(map[C]int)
		for _, core := range uncovered {
			for c := range core {
				counts[c]++
			}
		}
		var best C
		bestCount := 0
		for _, c := range f.all {
			if n := counts[c]; n > bestCount {
				best, bestCount = c, n
			}
		}
		if bestCount == 0 {
			return nil, Continue, errors.Wrap(ErrHardUnsat, "greedy finder cannot cover an empty core")
		}

		out = append(out, best)
		remaining := uncovered[:0]
		for _, core := range uncovered {
			if !core.Has(best) {
				remaining = append(remaining, core)
			}
		}
		uncovered = remaining
	}
	return out, Continue, nil
}

func (f *GreedyFinder[C]) Optimal() bool {
	return false
}
