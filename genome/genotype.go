package genome

import "strings"

// Genotype is a finite, ordered sequence of chromosomes: the full genetic
// description of one candidate. Chromosomes within a genotype need not be
// homogeneous in length — templates differ by chromosome index.
type Genotype struct {
	Chromosomes []Chromosome
}

// NewGenotype wraps chromosomes into a Genotype, preserving their order.
func NewGenotype(chromosomes ...Chromosome) Genotype {
	return Genotype{Chromosomes: chromosomes}
}

// Size returns the number of chromosomes in the genotype.
func (g Genotype) Size() int { return len(g.Chromosomes) }

// Chromosome returns the chromosome at index i.
func (g Genotype) Chromosome(i int) Chromosome { return g.Chromosomes[i] }

// Verify reports whether every chromosome in the genotype verifies.
func (g Genotype) Verify() bool {
	for _, c := range g.Chromosomes {
		if !c.Verify() {
			return false
		}
	}
	return true
}

// Equal reports whether other has the same chromosome count and
// pairwise-equal chromosomes.
func (g Genotype) Equal(other Genotype) bool {
	if len(g.Chromosomes) != len(other.Chromosomes) {
		return false
	}
	for i, c := range g.Chromosomes {
		if !c.Equal(other.Chromosomes[i]) {
			return false
		}
	}
	return true
}

// SameShape reports whether other has the same chromosome count and each
// chromosome has the same length, regardless of gene values.
func (g Genotype) SameShape(other Genotype) bool {
	if len(g.Chromosomes) != len(other.Chromosomes) {
		return false
	}
	for i, c := range g.Chromosomes {
		if c.Size() != other.Chromosomes[i].Size() {
			return false
		}
	}
	return true
}

// String renders the genotype as its chromosomes joined by " | ".
func (g Genotype) String() string {
	var b strings.Builder
	for i, c := range g.Chromosomes {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}
