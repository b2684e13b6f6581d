// Package selection implements the selector contract: choosing parent and
// survivor subsets of a population under a ranking.
package selection

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
)

// Selector chooses count individuals from pop under ranker's ordering.
type Selector interface {
	fmt.Stringer
	Select(r *prng.Gateway, pop genome.Population, count int, ranker ranking.Ranker) (genome.Population, error)
}

// Invoke wraps a Selector the way the engine does: it validates that pop is
// non-empty and count is non-negative, calls Select, and asserts the
// post-size equals count.
func Invoke(sel Selector, r *prng.Gateway, pop genome.Population, count int, ranker ranking.Ranker) (genome.Population, error) {
	if len(pop) == 0 {
		return nil, errs.NewSelectionError(sel.String()+": empty population", errs.ErrEmptyPopulation)
	}
	if count < 0 {
		return nil, errs.NewSelectionError(sel.String()+": negative count", errs.ErrNegativeCount)
	}
	if count == 0 {
		return genome.Population{}, nil
	}
	out, err := sel.Select(r, pop, count, ranker)
	if err != nil {
		return nil, err
	}
	if len(out) != count {
		return nil, errs.NewSelectionError(
			fmt.Sprintf("%s returned %d individuals, want %d", sel, len(out), count),
			nil,
		)
	}
	return out, nil
}
