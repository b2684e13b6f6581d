package genome

import (
	"github.com/inlined/evolve/prng"
)

// DefaultCharRangeStart and DefaultCharRangeEnd bound the default closed
// character range: printable ASCII.
const (
	DefaultCharRangeStart rune = 32
	DefaultCharRangeEnd   rune = 126
)

// CharGene is a gene whose value is a single rune drawn from a closed range
// with an optional filter.
type CharGene struct {
	Val        rune
	Start, End rune // inclusive
	Filter     func(rune) bool
}

// NewCharGene constructs a CharGene. A zero Start/End pair defaults to the
// printable ASCII range.
func NewCharGene(val, start, end rune, filter func(rune) bool) CharGene {
	if start == 0 && end == 0 {
		start, end = DefaultCharRangeStart, DefaultCharRangeEnd
	}
	return CharGene{Val: val, Start: start, End: end, Filter: filter}
}

// Kind implements Gene.
func (g CharGene) Kind() Kind { return KindChar }

// RawValue implements Gene.
func (g CharGene) RawValue() any { return g.Val }

// Verify implements Gene.
func (g CharGene) Verify() bool {
	if g.Val < g.Start || g.Val > g.End {
		return false
	}
	return g.Filter == nil || g.Filter(g.Val)
}

// Mutate implements Gene: duplicateWithValue(generator()).
func (g CharGene) Mutate(r *prng.Gateway) Gene {
	return CharGene{
		Val:    r.NextCharInRange(g.Start, g.End, g.Filter),
		Start:  g.Start,
		End:    g.End,
		Filter: g.Filter,
	}
}

// Equal implements Gene.
func (g CharGene) Equal(other Gene) bool {
	o, ok := other.(CharGene)
	return ok && o.Val == g.Val
}

// String implements fmt.Stringer.
func (g CharGene) String() string { return string(g.Val) }
