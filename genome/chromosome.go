package genome

import "strings"

// Chromosome is a finite, ordered sequence of genes of a uniform kind.
type Chromosome struct {
	Genes []Gene
}

// NewChromosome wraps genes into a Chromosome, preserving their order.
func NewChromosome(genes ...Gene) Chromosome {
	return Chromosome{Genes: genes}
}

// Size returns the number of genes in the chromosome.
func (c Chromosome) Size() int { return len(c.Genes) }

// Gene returns the gene at index i.
func (c Chromosome) Gene(i int) Gene { return c.Genes[i] }

// Kind reports the kind of gene this chromosome holds, or -1 if empty.
func (c Chromosome) Kind() Kind {
	if len(c.Genes) == 0 {
		return -1
	}
	return c.Genes[0].Kind()
}

// Verify reports whether every gene in the chromosome verifies.
func (c Chromosome) Verify() bool {
	for _, g := range c.Genes {
		if !g.Verify() {
			return false
		}
	}
	return true
}

// Equal reports whether other has the same length and pairwise-equal genes.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c.Genes) != len(other.Genes) {
		return false
	}
	for i, g := range c.Genes {
		if !g.Equal(other.Genes[i]) {
			return false
		}
	}
	return true
}

// WithGenes returns a copy of the chromosome with its gene slice replaced.
// The original chromosome's slice is left untouched.
func (c Chromosome) WithGenes(genes []Gene) Chromosome {
	return Chromosome{Genes: genes}
}

// Clone returns a chromosome whose gene slice is an independent copy, so
// that mutating the copy's slice (e.g. swapping elements in place) never
// aliases the receiver's storage.
func (c Chromosome) Clone() Chromosome {
	genes := make([]Gene, len(c.Genes))
	copy(genes, c.Genes)
	return Chromosome{Genes: genes}
}

// String renders the chromosome as its genes joined by spaces.
func (c Chromosome) String() string {
	var b strings.Builder
	for i, g := range c.Genes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g.String())
	}
	return b.String()
}
