package selection

import (
	"fmt"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
)

// TournamentSelector repeats count times: draw Size individuals uniformly
// with replacement from the population, and pick the best under ranker.
type TournamentSelector struct {
	Size int
}

func (s TournamentSelector) size() int {
	if s.Size <= 0 {
		return 3
	}
	return s.Size
}

// String implements fmt.Stringer.
func (s TournamentSelector) String() string {
	return fmt.Sprintf("TournamentSelector(%d)", s.size())
}

// Select implements Selector.
func (s TournamentSelector) Select(r *prng.Gateway, pop genome.Population, count int, ranker ranking.Ranker) (genome.Population, error) {
	fitnesses := pop.Fitnesses()
	out := make(genome.Population, count)
	k := s.size()
	for i := 0; i < count; i++ {
		best := int(r.NextIntInRange(0, int64(len(pop)-1)))
		for j := 1; j < k; j++ {
			candidate := int(r.NextIntInRange(0, int64(len(pop)-1)))
			if ranker.Less(fitnesses[candidate], fitnesses[best]) {
				best = candidate
			}
		}
		out[i] = pop[best]
	}
	return out, nil
}
