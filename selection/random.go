package selection

import (
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
)

// RandomSelector draws count individuals uniformly with replacement,
// ignoring fitness entirely.
type RandomSelector struct{}

// String implements fmt.Stringer.
func (s RandomSelector) String() string {
	return "RandomSelector"
}

// Select implements Selector.
func (s RandomSelector) Select(r *prng.Gateway, pop genome.Population, count int, _ ranking.Ranker) (genome.Population, error) {
	out := make(genome.Population, count)
	for i := 0; i < count; i++ {
		idx := r.NextIntInRange(0, int64(len(pop)-1))
		out[i] = pop[idx]
	}
	return out, nil
}
