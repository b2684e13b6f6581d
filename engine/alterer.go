package engine

import (
	"fmt"

	"github.com/inlined/evolve/crossover"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/mutation"
	"github.com/inlined/evolve/prng"
)

// Alterer transforms a population within the alteration phase, returning a
// new population and leaving its input untouched.
// Crossovers and mutators are both alterers; the engine applies them in
// configured order, each consuming the previous one's output.
type Alterer interface {
	fmt.Stringer
	Alter(r *prng.Gateway, pop genome.Population) (genome.Population, error)
}

// WithCrossover adapts a crossover.Crossover into an Alterer: it requests
// exactly len(pop) offspring, preserving population size through the
// alteration phase.
func WithCrossover(c crossover.Crossover) Alterer {
	return crossoverAlterer{c}
}

type crossoverAlterer struct {
	crossover.Crossover
}

func (a crossoverAlterer) Alter(r *prng.Gateway, pop genome.Population) (genome.Population, error) {
	return crossover.Apply(r, a.Crossover, pop, len(pop))
}

// WithMutator adapts a mutation.Mutator into an Alterer.
func WithMutator(m mutation.Mutator) Alterer {
	return mutatorAlterer{m}
}

type mutatorAlterer struct {
	mutation.Mutator
}

func (a mutatorAlterer) Alter(r *prng.Gateway, pop genome.Population) (genome.Population, error) {
	return mutation.Apply(r, a.Mutator, pop)
}
