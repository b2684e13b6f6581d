package genome

import (
	"strconv"

	"github.com/inlined/evolve/prng"
)

// BoolGene is a gene whose value is a single bit. Its generator flips a
// weighted coin: TrueRate is the probability of generating true (default
// 0.5 when zero).
type BoolGene struct {
	Val      bool
	TrueRate float64
}

// NewBoolGene constructs a BoolGene with the given value and true-rate.
func NewBoolGene(val bool, trueRate float64) BoolGene {
	return BoolGene{Val: val, TrueRate: trueRate}
}

func (g BoolGene) rate() float64 {
	if g.TrueRate <= 0 {
		return 0.5
	}
	return g.TrueRate
}

// Kind implements Gene.
func (g BoolGene) Kind() Kind { return KindBool }

// RawValue implements Gene.
func (g BoolGene) RawValue() any { return g.Val }

// Verify implements Gene. A boolean has no range/filter to violate.
func (g BoolGene) Verify() bool { return true }

// Mutate implements Gene: duplicateWithValue(generator()).
func (g BoolGene) Mutate(r *prng.Gateway) Gene {
	return BoolGene{Val: r.Float64() < g.rate(), TrueRate: g.TrueRate}
}

// Equal implements Gene.
func (g BoolGene) Equal(other Gene) bool {
	o, ok := other.(BoolGene)
	return ok && o.Val == g.Val
}

// String implements fmt.Stringer.
func (g BoolGene) String() string { return strconv.FormatBool(g.Val) }
