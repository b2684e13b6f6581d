package mutation

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// BitFlipMutator is RandomMutator specialized to boolean genes: instead of
// an independent fresh draw, a selected gene is deterministically negated.
type BitFlipMutator struct {
	IndRate   float64
	ChromRate float64
	GeneRate  float64
}

// String implements fmt.Stringer.
func (m BitFlipMutator) String() string {
	return fmt.Sprintf("BitFlipMutator(%.2f, %.2f, %.2f)", m.IndRate, m.ChromRate, m.GeneRate)
}

// IndividualRate implements Mutator.
func (m BitFlipMutator) IndividualRate() float64 { return m.IndRate }

// ChromosomeRate implements Mutator.
func (m BitFlipMutator) ChromosomeRate() float64 { return m.ChromRate }

// MutateChromosome implements Mutator.
func (m BitFlipMutator) MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error) {
	genes := make([]genome.Gene, c.Size())
	copy(genes, c.Genes)
	for _, idx := range r.Indices(m.GeneRate, c.Size()) {
		b, ok := genes[idx].(genome.BoolGene)
		if !ok {
			return genome.Chromosome{}, errs.NewOperatorError("BitFlipMutator requires boolean genes", errs.ErrInvalidGene)
		}
		genes[idx] = genome.BoolGene{Val: !b.Val, TrueRate: b.TrueRate}
	}
	return genome.NewChromosome(genes...), nil
}
