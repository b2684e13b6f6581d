package mutation

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// RandomMutator replaces a rate-GeneRate fraction of a chromosome's genes
// with a fresh draw from each gene's own generator.
type RandomMutator struct {
	IndRate   float64
	ChromRate float64
	GeneRate  float64
}

// String implements fmt.Stringer.
func (m RandomMutator) String() string {
	return fmt.Sprintf("RandomMutator(%.2f, %.2f, %.2f)", m.IndRate, m.ChromRate, m.GeneRate)
}

// IndividualRate implements Mutator.
func (m RandomMutator) IndividualRate() float64 { return m.IndRate }

// ChromosomeRate implements Mutator.
func (m RandomMutator) ChromosomeRate() float64 { return m.ChromRate }

// MutateChromosome implements Mutator.
func (m RandomMutator) MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error) {
	genes := make([]genome.Gene, c.Size())
	copy(genes, c.Genes)
	for _, idx := range r.Indices(m.GeneRate, c.Size()) {
		genes[idx] = genes[idx].Mutate(r)
	}
	return genome.NewChromosome(genes...), nil
}
