package mutation

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// SwapMutator samples a rate-SwapRate fraction of positions and swaps each
// one with a uniformly drawn partner position in the same chromosome.
type SwapMutator struct {
	IndRate   float64
	ChromRate float64
	SwapRate  float64
}

// String implements fmt.Stringer.
func (m SwapMutator) String() string {
	return fmt.Sprintf("SwapMutator(%.2f, %.2f, %.2f)", m.IndRate, m.ChromRate, m.SwapRate)
}

// IndividualRate implements Mutator.
func (m SwapMutator) IndividualRate() float64 { return m.IndRate }

// ChromosomeRate implements Mutator.
func (m SwapMutator) ChromosomeRate() float64 { return m.ChromRate }

// MutateChromosome implements Mutator.
func (m SwapMutator) MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error) {
	genes := make([]genome.Gene, c.Size())
	copy(genes, c.Genes)
	for _, i := range r.Indices(m.SwapRate, c.Size()) {
		j := int(r.NextIntInRange(0, int64(c.Size()-1)))
		genes[i], genes[j] = genes[j], genes[i]
	}
	return genome.NewChromosome(genes...), nil
}
