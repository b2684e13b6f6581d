// Package genome implements the genetic data model: genes, chromosomes,
// genotypes, individuals, and populations, plus the factories that build
// initial genetic material under range/filter constraints.
//
// Genes are immutable: Mutate never changes a gene in place, it returns a
// new one. The set of gene kinds is closed (boolean, char, integer,
// double), so Gene is a small tagged-variant interface rather than an open
// plugin point.
package genome

import (
	"fmt"

	"github.com/inlined/evolve/prng"
)

// Kind identifies which concrete gene kind a Gene is.
type Kind int

const (
	// KindBool identifies BoolGene.
	KindBool Kind = iota
	// KindChar identifies CharGene.
	KindChar
	// KindInt identifies IntGene.
	KindInt
	// KindDouble identifies DoubleGene.
	KindDouble
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Gene is the atomic unit of a Chromosome: a typed value plus its intrinsic
// generator, mutator, and verify predicate. Genes are value types; any
// change produces a new Gene.
type Gene interface {
	fmt.Stringer

	// Kind reports which concrete gene kind this is.
	Kind() Kind

	// RawValue returns the gene's value boxed as bool, rune, int64, or
	// float64, matching Kind().
	RawValue() any

	// Verify reports whether the gene's current value satisfies its
	// intrinsic range/filter constraints.
	Verify() bool

	// Mutate returns a fresh gene of the same kind and constraints: its
	// generator run once. It does not modify the receiver.
	Mutate(r *prng.Gateway) Gene

	// Equal reports whether other is a gene of the same kind carrying the
	// same value. Equal ignores the gene's range/filter/generator
	// parameters: identity is defined by kind and value, matching the
	// spec's "genotype equality" contract for Individual.
	Equal(other Gene) bool
}
