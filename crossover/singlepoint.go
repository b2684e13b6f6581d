package crossover

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// SinglePointCrossover draws one cut index and swaps the tails of two
// parent chromosomes: offspring A is parent1's head with parent2's tail,
// offspring B the reverse.
type SinglePointCrossover struct {
	Rate              float64
	ExclusiveSampling bool
}

// NewSinglePointCrossover validates rate and constructs a SinglePointCrossover.
func NewSinglePointCrossover(rate float64, exclusive bool) (SinglePointCrossover, error) {
	if rate < 0 || rate > 1 {
		return SinglePointCrossover{}, errs.NewConfigError("SinglePointCrossover rate", errs.ErrRateOutOfRange)
	}
	return SinglePointCrossover{Rate: rate, ExclusiveSampling: exclusive}, nil
}

// String implements fmt.Stringer.
func (c SinglePointCrossover) String() string {
	return fmt.Sprintf("SinglePointCrossover(%.2f)", c.Rate)
}

// NumParents implements Crossover.
func (c SinglePointCrossover) NumParents() int { return 2 }

// NumOffspring implements Crossover.
func (c SinglePointCrossover) NumOffspring() int { return 2 }

// ChromosomeRate implements Crossover.
func (c SinglePointCrossover) ChromosomeRate() float64 { return c.Rate }

// Exclusive implements Crossover.
func (c SinglePointCrossover) Exclusive() bool { return c.ExclusiveSampling }

// CrossChromosomes implements Crossover.
func (c SinglePointCrossover) CrossChromosomes(r *prng.Gateway, parents []genome.Chromosome) ([]genome.Chromosome, error) {
	size := parents[0].Size()
	if size < 2 {
		return []genome.Chromosome{parents[0], parents[1]}, nil
	}
	cut := int(r.NextIntInRange(1, int64(size-1)))

	a := make([]genome.Gene, size)
	b := make([]genome.Gene, size)
	copy(a[:cut], parents[0].Genes[:cut])
	copy(a[cut:], parents[1].Genes[cut:])
	copy(b[:cut], parents[1].Genes[:cut])
	copy(b[cut:], parents[0].Genes[cut:])

	return []genome.Chromosome{genome.NewChromosome(a...), genome.NewChromosome(b...)}, nil
}
