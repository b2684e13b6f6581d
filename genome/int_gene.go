package genome

import (
	"math"
	"strconv"

	"github.com/inlined/evolve/prng"
)

// Default int range when a factory broadcasts the zero range: large enough
// to be useless as an accidental constraint, small enough to keep sums in
// float64-representable territory.
const (
	DefaultIntRangeStart int64 = math.MinInt32
	DefaultIntRangeEnd   int64 = math.MaxInt32
)

// IntGene is a gene whose value is a signed integer drawn from a closed
// range with an optional filter.
type IntGene struct {
	Val        int64
	Start, End int64 // inclusive
	Filter     func(int64) bool
}

// NewIntGene constructs an IntGene. A zero Start/End pair (Start==End==0)
// defaults to [DefaultIntRangeStart, DefaultIntRangeEnd].
func NewIntGene(val, start, end int64, filter func(int64) bool) IntGene {
	if start == 0 && end == 0 {
		start, end = DefaultIntRangeStart, DefaultIntRangeEnd
	}
	return IntGene{Val: val, Start: start, End: end, Filter: filter}
}

// Kind implements Gene.
func (g IntGene) Kind() Kind { return KindInt }

// RawValue implements Gene.
func (g IntGene) RawValue() any { return g.Val }

// Verify implements Gene.
func (g IntGene) Verify() bool {
	if g.Val < g.Start || g.Val > g.End {
		return false
	}
	return g.Filter == nil || g.Filter(g.Val)
}

// Mutate implements Gene: duplicateWithValue(generator()).
func (g IntGene) Mutate(r *prng.Gateway) Gene {
	for {
		v := r.NextIntInRange(g.Start, g.End)
		if g.Filter == nil || g.Filter(v) {
			return IntGene{Val: v, Start: g.Start, End: g.End, Filter: g.Filter}
		}
	}
}

// Equal implements Gene.
func (g IntGene) Equal(other Gene) bool {
	o, ok := other.(IntGene)
	return ok && o.Val == g.Val
}

// String implements fmt.Stringer.
func (g IntGene) String() string { return strconv.FormatInt(g.Val, 10) }
