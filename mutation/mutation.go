// Package mutation implements the perturbation half of the alterer
// pipeline: operators that replace a chromosome with a perturbed variant,
// gated by per-individual and per-chromosome probabilities.
package mutation

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// Mutator perturbs a single chromosome. The engine-level Apply gates calls
// to MutateChromosome by IndividualRate and ChromosomeRate, and marks an
// individual unevaluated only if mutation actually changed it.
type Mutator interface {
	fmt.Stringer

	// IndividualRate is the probability that a given individual is
	// considered for mutation at all.
	IndividualRate() float64

	// ChromosomeRate is the probability, per chromosome, that
	// MutateChromosome replaces it.
	ChromosomeRate() float64

	// MutateChromosome returns a perturbed variant of c.
	MutateChromosome(r *prng.Gateway, c genome.Chromosome) (genome.Chromosome, error)
}

// Apply runs m over every individual in pop: with probability
// IndividualRate() an individual is considered; each of its chromosomes is
// then replaced with probability ChromosomeRate(). The individual is marked
// unevaluated only if at least one chromosome actually changed; otherwise
// it (and its fitness) passes through untouched.
func Apply(r *prng.Gateway, m Mutator, pop genome.Population) (genome.Population, error) {
	out := make(genome.Population, len(pop))
	for i, ind := range pop {
		if r.Float64() >= m.IndividualRate() {
			out[i] = ind
			continue
		}

		size := ind.Genotype.Size()
		chromosomes := make([]genome.Chromosome, size)
		changed := false
		for ci := 0; ci < size; ci++ {
			c := ind.Genotype.Chromosome(ci)
			if r.Float64() < m.ChromosomeRate() {
				mutated, err := m.MutateChromosome(r, c)
				if err != nil {
					return nil, err
				}
				chromosomes[ci] = mutated
				if !mutated.Equal(c) {
					changed = true
				}
			} else {
				chromosomes[ci] = c
			}
		}

		if !changed {
			out[i] = ind
			continue
		}
		out[i] = ind.WithGenotype(genome.NewGenotype(chromosomes...))
	}
	return out, nil
}
