package genome

import (
	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/prng"
)

// ChromosomeFactory is a deterministic-given-PRNG constructor for one
// chromosome of genetic material.
type ChromosomeFactory interface {
	// Make samples one fresh chromosome. It fails with a ConfigError (never
	// partially constructing a chromosome) if the factory's own
	// size/range/filter configuration is invalid.
	Make(r *prng.Gateway) (Chromosome, error)
	// Size reports how many genes Make produces.
	Size() int
}

// resolveList applies the "ranges/filters list length must be 0, 1, or
// size" rule shared by every chromosome factory: 0 broadcasts zero, 1
// broadcasts that one element, and size takes the list as given
// (per-index). Any other length, or any invalid element, fails with a
// ConfigError.
func resolveList[T any](list []T, size int, zero T, valid func(T) bool) ([]T, error) {
	switch len(list) {
	case 0:
		out := make([]T, size)
		for i := range out {
			out[i] = zero
		}
		return out, nil
	case 1:
		if !valid(list[0]) {
			return nil, errs.NewConfigError("invalid range", errs.ErrEmptyRange)
		}
		out := make([]T, size)
		for i := range out {
			out[i] = list[0]
		}
		return out, nil
	default:
		if len(list) != size {
			return nil, errs.NewConfigError("ranges/filters length must be 0, 1, or size", errs.ErrBadConstraintLen)
		}
		for _, v := range list {
			if !valid(v) {
				return nil, errs.NewConfigError("invalid range", errs.ErrEmptyRange)
			}
		}
		return list, nil
	}
}

func alwaysValid[T any](T) bool { return true }

// IntRange is a closed range [Start, End] for IntGene.
type IntRange struct{ Start, End int64 }

func (r IntRange) valid() bool { return r.Start < r.End }

// IntChromosomeFactory builds chromosomes of IntGene.
type IntChromosomeFactory struct {
	SizeN   int
	Ranges  []IntRange
	Filters []func(int64) bool
}

// Size implements ChromosomeFactory.
func (f IntChromosomeFactory) Size() int { return f.SizeN }

// Make implements ChromosomeFactory.
func (f IntChromosomeFactory) Make(r *prng.Gateway) (Chromosome, error) {
	if f.SizeN <= 0 {
		return Chromosome{}, errs.NewConfigError("chromosome size must be > 0", errs.ErrNegativeCount)
	}
	ranges, err := resolveList(f.Ranges, f.SizeN, IntRange{DefaultIntRangeStart, DefaultIntRangeEnd}, IntRange.valid)
	if err != nil {
		return Chromosome{}, err
	}
	filters, err := resolveList(f.Filters, f.SizeN, (func(int64) bool)(nil), alwaysValid[func(int64) bool])
	if err != nil {
		return Chromosome{}, err
	}
	genes := make([]Gene, f.SizeN)
	for i := 0; i < f.SizeN; i++ {
		template := IntGene{Start: ranges[i].Start, End: ranges[i].End, Filter: filters[i]}
		genes[i] = template.Mutate(r)
	}
	return Chromosome{Genes: genes}, nil
}

// DoubleRange is a closed range [Start, End] for DoubleGene.
type DoubleRange struct{ Start, End float64 }

func (r DoubleRange) valid() bool { return r.Start < r.End }

// DoubleChromosomeFactory builds chromosomes of DoubleGene.
type DoubleChromosomeFactory struct {
	SizeN   int
	Ranges  []DoubleRange
	Filters []func(float64) bool
}

// Size implements ChromosomeFactory.
func (f DoubleChromosomeFactory) Size() int { return f.SizeN }

// Make implements ChromosomeFactory.
func (f DoubleChromosomeFactory) Make(r *prng.Gateway) (Chromosome, error) {
	if f.SizeN <= 0 {
		return Chromosome{}, errs.NewConfigError("chromosome size must be > 0", errs.ErrNegativeCount)
	}
	ranges, err := resolveList(f.Ranges, f.SizeN, DoubleRange{DefaultDoubleRangeStart, DefaultDoubleRangeEnd}, DoubleRange.valid)
	if err != nil {
		return Chromosome{}, err
	}
	filters, err := resolveList(f.Filters, f.SizeN, (func(float64) bool)(nil), alwaysValid[func(float64) bool])
	if err != nil {
		return Chromosome{}, err
	}
	genes := make([]Gene, f.SizeN)
	for i := 0; i < f.SizeN; i++ {
		template := DoubleGene{Start: ranges[i].Start, End: ranges[i].End, Filter: filters[i]}
		genes[i] = template.Mutate(r)
	}
	return Chromosome{Genes: genes}, nil
}

// CharRange is a closed range [Start, End] for CharGene.
type CharRange struct{ Start, End rune }

func (r CharRange) valid() bool { return r.Start < r.End }

// CharChromosomeFactory builds chromosomes of CharGene.
type CharChromosomeFactory struct {
	SizeN   int
	Ranges  []CharRange
	Filters []func(rune) bool
}

// Size implements ChromosomeFactory.
func (f CharChromosomeFactory) Size() int { return f.SizeN }

// Make implements ChromosomeFactory.
func (f CharChromosomeFactory) Make(r *prng.Gateway) (Chromosome, error) {
	if f.SizeN <= 0 {
		return Chromosome{}, errs.NewConfigError("chromosome size must be > 0", errs.ErrNegativeCount)
	}
	ranges, err := resolveList(f.Ranges, f.SizeN, CharRange{DefaultCharRangeStart, DefaultCharRangeEnd}, CharRange.valid)
	if err != nil {
		return Chromosome{}, err
	}
	filters, err := resolveList(f.Filters, f.SizeN, (func(rune) bool)(nil), alwaysValid[func(rune) bool])
	if err != nil {
		return Chromosome{}, err
	}
	genes := make([]Gene, f.SizeN)
	for i := 0; i < f.SizeN; i++ {
		template := CharGene{Start: ranges[i].Start, End: ranges[i].End, Filter: filters[i]}
		genes[i] = template.Mutate(r)
	}
	return Chromosome{Genes: genes}, nil
}

// BoolChromosomeFactory builds chromosomes of BoolGene.
type BoolChromosomeFactory struct {
	SizeN    int
	TrueRate float64
}

// Size implements ChromosomeFactory.
func (f BoolChromosomeFactory) Size() int { return f.SizeN }

// Make implements ChromosomeFactory.
func (f BoolChromosomeFactory) Make(r *prng.Gateway) (Chromosome, error) {
	if f.SizeN <= 0 {
		return Chromosome{}, errs.NewConfigError("chromosome size must be > 0", errs.ErrNegativeCount)
	}
	genes := make([]Gene, f.SizeN)
	template := BoolGene{TrueRate: f.TrueRate}
	for i := 0; i < f.SizeN; i++ {
		genes[i] = template.Mutate(r)
	}
	return Chromosome{Genes: genes}, nil
}

// PermChromosomeFactory builds a chromosome whose genes are an IntGene
// permutation of [0, SizeN), for permutation-encoded problems (e.g. TSP).
type PermChromosomeFactory struct {
	SizeN int
}

// Size implements ChromosomeFactory.
func (f PermChromosomeFactory) Size() int { return f.SizeN }

// Make implements ChromosomeFactory.
func (f PermChromosomeFactory) Make(r *prng.Gateway) (Chromosome, error) {
	if f.SizeN <= 0 {
		return Chromosome{}, errs.NewConfigError("chromosome size must be > 0", errs.ErrNegativeCount)
	}
	perm := r.Perm(f.SizeN)
	genes := make([]Gene, f.SizeN)
	for i, v := range perm {
		genes[i] = IntGene{Val: int64(v), Start: 0, End: int64(f.SizeN - 1)}
	}
	return Chromosome{Genes: genes}, nil
}

// GenotypeFactory assembles one Genotype from an ordered list of
// chromosome factories, one chromosome per factory.
type GenotypeFactory struct {
	Factories []ChromosomeFactory
}

// Make implements the Genotype-level factory: it invokes each chromosome
// factory in order and fails fast with the first ConfigError.
func (f GenotypeFactory) Make(r *prng.Gateway) (Genotype, error) {
	if len(f.Factories) == 0 {
		return Genotype{}, errs.NewConfigError("genotype factory has no chromosome factories", errs.ErrNegativeCount)
	}
	chromosomes := make([]Chromosome, len(f.Factories))
	for i, cf := range f.Factories {
		c, err := cf.Make(r)
		if err != nil {
			return Genotype{}, err
		}
		chromosomes[i] = c
	}
	return Genotype{Chromosomes: chromosomes}, nil
}
