package genome

import (
	"math"
	"strconv"

	"github.com/inlined/evolve/prng"
)

// Default double range when a factory broadcasts the zero range.
const (
	DefaultDoubleRangeStart float64 = -math.MaxFloat64 / 2
	DefaultDoubleRangeEnd   float64 = math.MaxFloat64 / 2
)

// DoubleGene is a gene whose value is a float64 drawn from a closed range
// with an optional filter.
type DoubleGene struct {
	Val        float64
	Start, End float64 // inclusive
	Filter     func(float64) bool
}

// NewDoubleGene constructs a DoubleGene. A zero Start/End pair defaults to
// [DefaultDoubleRangeStart, DefaultDoubleRangeEnd].
func NewDoubleGene(val, start, end float64, filter func(float64) bool) DoubleGene {
	if start == 0 && end == 0 {
		start, end = DefaultDoubleRangeStart, DefaultDoubleRangeEnd
	}
	return DoubleGene{Val: val, Start: start, End: end, Filter: filter}
}

// Kind implements Gene.
func (g DoubleGene) Kind() Kind { return KindDouble }

// RawValue implements Gene.
func (g DoubleGene) RawValue() any { return g.Val }

// Verify implements Gene.
func (g DoubleGene) Verify() bool {
	if g.Val < g.Start || g.Val > g.End {
		return false
	}
	return g.Filter == nil || g.Filter(g.Val)
}

// Mutate implements Gene: duplicateWithValue(generator()).
func (g DoubleGene) Mutate(r *prng.Gateway) Gene {
	for {
		v := r.NextDoubleInRange(g.Start, g.End)
		if g.Filter == nil || g.Filter(v) {
			return DoubleGene{Val: v, Start: g.Start, End: g.End, Filter: g.Filter}
		}
	}
}

// Equal implements Gene.
func (g DoubleGene) Equal(other Gene) bool {
	o, ok := other.(DoubleGene)
	return ok && o.Val == g.Val
}

// String implements fmt.Stringer.
func (g DoubleGene) String() string { return strconv.FormatFloat(g.Val, 'g', -1, 64) }
