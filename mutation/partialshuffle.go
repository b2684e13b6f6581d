package mutation

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// PartialShuffleMutator selects the same boundary window as
// InversionMutator, but shuffles it uniformly instead of reversing it.
type PartialShuffleMutator struct {
	IndRate             float64
	ChromRate           float64
	BoundaryProbability float64
}

// String implements fmt.Stringer.
func (m PartialShuffleMutator) String() string {
	return fmt.Sprintf("PartialShuffleMutator(%.2f, %.2f, %.2f)", m.IndRate, m.ChromRate, m.BoundaryProbability)
}

// IndividualRate implements Mutator.
func (m PartialShuffleMutator) IndividualRate() float64 { return m.IndRate }

// ChromosomeRate implements Mutator.
func (m PartialShuffleMutator) ChromosomeRate() float64 { return m.ChromRate }

// MutateChromosome implements Mutator.
func (m PartialShuffleMutator) MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error) {
	start, end := boundaryWindow(r, c.Size(), m.BoundaryProbability)

	genes := make([]genome.Gene, c.Size())
	copy(genes, c.Genes)
	for i := end; i > start; i-- {
		j := int(r.NextIntInRange(int64(start), int64(i)))
		genes[i], genes[j] = genes[j], genes[i]
	}
	return genome.NewChromosome(genes...), nil
}
