// Package prng wraps the process-scoped pseudorandom source consulted by
// every stochastic component in evolve: factories, selectors, crossovers,
// and mutators. Seeding it is the only reproducibility primitive the
// engine offers; everything else is deterministic given a fixed sequence
// of draws.
package prng

import (
	"math"
	"time"

	"github.com/inlined/rand"
)

// Gateway is the single mutable slot every stochastic component consults.
// It is not goroutine-safe by design: the engine is single-threaded
// cooperative (see the concurrency & resource model), so a lock would only
// add overhead no caller needs.
type Gateway struct {
	rand.Rand
}

// New constructs a Gateway. If seed is nil, the gateway seeds itself from
// the wall clock, matching inlined/genetics's own rng.Seed(time.Now().Unix())
// convention for unseeded runs.
func New(seed *uint64) *Gateway {
	r := rand.New()
	if seed != nil {
		r.Seed(int64(*seed))
	} else {
		r.Seed(time.Now().UnixNano())
	}
	return &Gateway{Rand: r}
}

// NextIntInRange draws an integer in [start, endInclusive].
func (g *Gateway) NextIntInRange(start, endInclusive int64) int64 {
	span := endInclusive - start + 1
	if span <= 0 {
		return start
	}
	return start + g.Int63n(span)
}

// NextDoubleInRange draws a float64 in [start, endInclusive).
func (g *Gateway) NextDoubleInRange(start, endInclusive float64) float64 {
	return start + g.Float64()*(endInclusive-start)
}

// NextCharInRange draws a rune in [start, endInclusive] for which filter
// returns true, resampling on rejection. A nil filter accepts everything.
func (g *Gateway) NextCharInRange(start, endInclusive rune, filter func(rune) bool) rune {
	for {
		c := rune(g.NextIntInRange(int64(start), int64(endInclusive)))
		if filter == nil || filter(c) {
			return c
		}
	}
}

// Indices returns a subset of {0, ..., n-1}, in ascending order, where each
// index is included independently with probability p. This is the sampler
// every "mutate approximately a rate-p fraction of positions" mutator is
// built on.
func (g *Gateway) Indices(p float64, n int) []int {
	if p <= 0 || n <= 0 {
		return nil
	}
	if p >= 1 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, int(math.Ceil(p*float64(n))))
	for i := 0; i < n; i++ {
		if g.Float64() < p {
			out = append(out, i)
		}
	}
	return out
}

// Deal samples k distinct indices from [0, n) without replacement, in the
// order drawn. It re-exports inlined/rand's own Deal helper, which every
// sampling-without-replacement operation in selection and crossover already
// builds on.
func (g *Gateway) Deal(n, k int) []int {
	return rand.Deal(g.Rand, n, k)
}
