package crossover

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// OrderedCrossover recombines two permutation chromosomes without
// duplicating or dropping values: a window is copied verbatim from one
// parent, and the remaining positions are filled, in order and skipping
// values already placed, from the other parent.
type OrderedCrossover struct {
	Rate              float64
	ExclusiveSampling bool
}

// NewOrderedCrossover validates rate and constructs an OrderedCrossover.
func NewOrderedCrossover(rate float64, exclusive bool) (OrderedCrossover, error) {
	if rate < 0 || rate > 1 {
		return OrderedCrossover{}, errs.NewConfigError("OrderedCrossover rate", errs.ErrRateOutOfRange)
	}
	return OrderedCrossover{Rate: rate, ExclusiveSampling: exclusive}, nil
}

// String implements fmt.Stringer.
func (c OrderedCrossover) String() string {
	return fmt.Sprintf("OrderedCrossover(%.2f)", c.Rate)
}

// NumParents implements Crossover.
func (c OrderedCrossover) NumParents() int { return 2 }

// NumOffspring implements Crossover.
func (c OrderedCrossover) NumOffspring() int { return 2 }

// ChromosomeRate implements Crossover.
func (c OrderedCrossover) ChromosomeRate() float64 { return c.Rate }

// Exclusive implements Crossover.
func (c OrderedCrossover) Exclusive() bool { return c.ExclusiveSampling }

// CrossChromosomes implements Crossover.
func (c OrderedCrossover) CrossChromosomes(r *prng.Gateway, parents []genome.Chromosome) ([]genome.Chromosome, error) {
	size := parents[0].Size()
	if size < 2 {
		return []genome.Chromosome{parents[0], parents[1]}, nil
	}

	l := int(r.NextIntInRange(0, int64(size-1)))
	rr := int(r.NextIntInRange(0, int64(size-1)))
	if l > rr {
		l, rr = rr, l
	}
	rr++ // window is [l, rr)

	a := orderedFill(parents[0].Genes, parents[1].Genes, l, rr, size)
	b := orderedFill(parents[1].Genes, parents[0].Genes, l, rr, size)
	return []genome.Chromosome{genome.NewChromosome(a...), genome.NewChromosome(b...)}, nil
}

// orderedFill copies window[l:rr] from windowSource, then fills the
// remaining positions starting at rr (wrapping) from fillSource, in order,
// skipping any value already present in the window.
func orderedFill(windowSource, fillSource []genome.Gene, l, rr, size int) []genome.Gene {
	result := make([]genome.Gene, size)
	present := make(map[any]bool, rr-l)
	for i := l; i < rr; i++ {
		result[i] = windowSource[i]
		present[windowSource[i].RawValue()] = true
	}

	pos := rr % size
	src := rr % size
	remaining := size - (rr - l)
	for remaining > 0 {
		cand := fillSource[src]
		src = (src + 1) % size
		if present[cand.RawValue()] {
			continue
		}
		for result[pos] != nil {
			pos = (pos + 1) % size
		}
		result[pos] = cand
		present[cand.RawValue()] = true
		pos = (pos + 1) % size
		remaining--
	}
	return result
}
