package mutation

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// InversionMutator reverses a contiguous window of genes. The window's
// start is the first position whose draw is below BoundaryProbability
// (defaulting to index 0 if none qualifies); its end is the first position
// at or after start whose draw exceeds BoundaryProbability (defaulting to
// the last index if none qualifies).
type InversionMutator struct {
	IndRate             float64
	ChromRate           float64
	BoundaryProbability float64
}

// String implements fmt.Stringer.
func (m InversionMutator) String() string {
	return fmt.Sprintf("InversionMutator(%.2f, %.2f, %.2f)", m.IndRate, m.ChromRate, m.BoundaryProbability)
}

// IndividualRate implements Mutator.
func (m InversionMutator) IndividualRate() float64 { return m.IndRate }

// ChromosomeRate implements Mutator.
func (m InversionMutator) ChromosomeRate() float64 { return m.ChromRate }

// MutateChromosome implements Mutator.
func (m InversionMutator) MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error) {
	start, end := boundaryWindow(r, c.Size(), m.BoundaryProbability)

	genes := make([]genome.Gene, c.Size())
	copy(genes, c.Genes)
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		genes[i], genes[j] = genes[j], genes[i]
	}
	return genome.NewChromosome(genes...), nil
}

// boundaryWindow implements the shared start/end selection used by
// InversionMutator and PartialShuffleMutator.
func boundaryWindow(r *prng.Gateway, size int, boundaryProbability float64) (start, end int) {
	start = 0
	for i := 0; i < size; i++ {
		if r.Float64() < boundaryProbability {
			start = i
			break
		}
	}

	end = size - 1
	for i := start; i < size; i++ {
		if r.Float64() > boundaryProbability {
			end = i
			break
		}
	}
	return start, end
}
