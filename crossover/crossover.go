// Package crossover implements the recombination half of the alterer
// pipeline: operators that take a group of parent genotypes and produce one
// or more offspring genotypes by recombining their chromosomes.
package crossover

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// Crossover recombines NumParents() parent chromosomes at a single
// chromosome index into NumOffspring() offspring chromosomes. It declares
// its own arity and sampling policy; Apply is the engine-level driver that
// repeatedly invokes it to fill an offspring population.
type Crossover interface {
	fmt.Stringer

	// NumParents is the number of parent genotypes a single application
	// consumes.
	NumParents() int

	// NumOffspring is the number of offspring genotypes a single
	// application produces.
	NumOffspring() int

	// ChromosomeRate is the probability, per chromosome index, that
	// CrossChromosomes runs at all; otherwise the first parent's
	// chromosome at that index is copied unchanged into every offspring.
	ChromosomeRate() float64

	// Exclusive reports whether parent groups are sampled without
	// replacement (true) or with replacement (false).
	Exclusive() bool

	// CrossChromosomes recombines len(parents) == NumParents() same-index
	// chromosomes (already verified to share a common length) into
	// NumOffspring() new chromosomes.
	CrossChromosomes(r *prng.Gateway, parents []genome.Chromosome) ([]genome.Chromosome, error)
}

// Apply repeatedly samples a parent group from parents and invokes c to
// produce offspring, until total offspring genotypes have been produced. If
// total is not a multiple of c.NumOffspring(), the final group's surplus
// offspring are discarded.
func Apply(r *prng.Gateway, c Crossover, parents genome.Population, total int) (genome.Population, error) {
	if total <= 0 {
		return genome.Population{}, nil
	}
	out := make(genome.Population, 0, total)
	for len(out) < total {
		group := sampleParentGroup(r, len(parents), c.NumParents(), c.Exclusive())
		genotypes := make([]genome.Genotype, len(group))
		for i, idx := range group {
			genotypes[i] = parents[idx].Genotype
		}
		offspring, err := crossGenotypes(r, c, genotypes)
		if err != nil {
			return nil, err
		}
		for _, g := range offspring {
			out = append(out, genome.New(g))
			if len(out) == total {
				break
			}
		}
	}
	return out, nil
}

func sampleParentGroup(r *prng.Gateway, poolSize, numParents int, exclusive bool) []int {
	if exclusive {
		return r.Deal(poolSize, numParents)
	}
	out := make([]int, numParents)
	for i := range out {
		out[i] = int(r.NextIntInRange(0, int64(poolSize-1)))
	}
	return out
}

func crossGenotypes(r *prng.Gateway, c Crossover, parents []genome.Genotype) ([]genome.Genotype, error) {
	if len(parents) != c.NumParents() {
		return nil, errs.NewOperatorError(
			fmt.Sprintf("%s: got %d parents, want %d", c, len(parents), c.NumParents()),
			errs.ErrWrongParentCount,
		)
	}

	numChromosomes := parents[0].Size()
	offspringChromosomes := make([][]genome.Chromosome, c.NumOffspring())
	for i := range offspringChromosomes {
		offspringChromosomes[i] = make([]genome.Chromosome, numChromosomes)
	}

	for ci := 0; ci < numChromosomes; ci++ {
		chroms := make([]genome.Chromosome, len(parents))
		size := parents[0].Chromosome(ci).Size()
		for pi, p := range parents {
			chroms[pi] = p.Chromosome(ci)
			if chroms[pi].Size() != size {
				return nil, errs.NewOperatorError(
					fmt.Sprintf("%s: chromosome %d has unequal length across parents", c, ci),
					errs.ErrLengthMismatch,
				)
			}
		}

		if r.Float64() < c.ChromosomeRate() {
			crossed, err := c.CrossChromosomes(r, chroms)
			if err != nil {
				return nil, err
			}
			if len(crossed) != c.NumOffspring() {
				return nil, errs.NewOperatorError(
					fmt.Sprintf("%s: CrossChromosomes returned %d chromosomes, want %d", c, len(crossed), c.NumOffspring()),
					nil,
				)
			}
			for oi, ch := range crossed {
				offspringChromosomes[oi][ci] = ch
			}
		} else {
			for oi := range offspringChromosomes {
				offspringChromosomes[oi][ci] = chroms[0]
			}
		}
	}

	out := make([]genome.Genotype, c.NumOffspring())
	for oi, chs := range offspringChromosomes {
		out[oi] = genome.NewGenotype(chs...)
	}
	return out, nil
}
