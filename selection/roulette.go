package selection

import (
	"math"
	"sort"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
)

// RouletteWheelSelector implements fitness-proportional ("roulette")
// selection. Fitnesses are adjusted through the ranker's Transform and
// shifted to be non-negative; if the total is 0, NaN, or infinite the
// selector falls back to a uniform distribution, which also makes it
// equivalent to uniform-with-replacement when all fitnesses are equal.
type RouletteWheelSelector struct {
	Sorted bool
}

// String implements fmt.Stringer.
func (s RouletteWheelSelector) String() string {
	if s.Sorted {
		return "RouletteWheelSelector(sorted)"
	}
	return "RouletteWheelSelector"
}

// Select implements Selector.
func (s RouletteWheelSelector) Select(r *prng.Gateway, pop genome.Population, count int, ranker ranking.Ranker) (genome.Population, error) {
	working := pop
	if s.Sorted {
		working = pop.Clone()
		sort.SliceStable(working, func(i, j int) bool {
			return ranker.Less(working[i].Fitness.Value(), working[j].Fitness.Value())
		})
	}

	transformed := make([]float64, len(working))
	min := math.Inf(1)
	for i, ind := range working {
		t := ranker.Transform(ind.Fitness.Value())
		transformed[i] = t
		if t < min {
			min = t
		}
	}

	adjusted := make([]float64, len(working))
	total := 0.0
	for i, t := range transformed {
		adjusted[i] = t - min
		total += adjusted[i]
	}

	cumulative := make([]float64, len(working))
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		for i := range cumulative {
			cumulative[i] = float64(i+1) / float64(len(working))
		}
	} else {
		acc := 0.0
		for i, a := range adjusted {
			acc += a / total
			cumulative[i] = acc
		}
		cumulative[len(cumulative)-1] = 1 // guard against floating-point drift
	}

	out := make(genome.Population, count)
	for i := 0; i < count; i++ {
		sample := r.Float64()
		idx := sort.Search(len(cumulative), func(j int) bool { return cumulative[j] >= sample })
		if idx == len(cumulative) {
			idx = len(cumulative) - 1
		}
		out[i] = working[idx]
	}
	return out, nil
}
