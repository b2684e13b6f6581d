package crossover

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// UniformCrossover swaps genes independently at each index, with
// probability GeneRate, between two parent chromosomes.
type UniformCrossover struct {
	Rate              float64
	GeneRate          float64
	ExclusiveSampling bool
}

// NewUniformCrossover validates both rates and constructs a UniformCrossover.
func NewUniformCrossover(rate, geneRate float64, exclusive bool) (UniformCrossover, error) {
	if rate < 0 || rate > 1 {
		return UniformCrossover{}, errs.NewConfigError("UniformCrossover chromosome rate", errs.ErrRateOutOfRange)
	}
	if geneRate < 0 || geneRate > 1 {
		return UniformCrossover{}, errs.NewConfigError("UniformCrossover gene rate", errs.ErrRateOutOfRange)
	}
	return UniformCrossover{Rate: rate, GeneRate: geneRate, ExclusiveSampling: exclusive}, nil
}

// String implements fmt.Stringer.
func (c UniformCrossover) String() string {
	return fmt.Sprintf("UniformCrossover(%.2f, %.2f)", c.Rate, c.GeneRate)
}

// NumParents implements Crossover.
func (c UniformCrossover) NumParents() int { return 2 }

// NumOffspring implements Crossover.
func (c UniformCrossover) NumOffspring() int { return 2 }

// ChromosomeRate implements Crossover.
func (c UniformCrossover) ChromosomeRate() float64 { return c.Rate }

// Exclusive implements Crossover.
func (c UniformCrossover) Exclusive() bool { return c.ExclusiveSampling }

// CrossChromosomes implements Crossover.
func (c UniformCrossover) CrossChromosomes(r *prng.Gateway, parents []genome.Chromosome) ([]genome.Chromosome, error) {
	size := parents[0].Size()
	a := make([]genome.Gene, size)
	b := make([]genome.Gene, size)
	copy(a, parents[0].Genes)
	copy(b, parents[1].Genes)

	swap := r.Indices(c.GeneRate, size)
	for _, i := range swap {
		a[i], b[i] = b[i], a[i]
	}
	return []genome.Chromosome{genome.NewChromosome(a...), genome.NewChromosome(b...)}, nil
}
