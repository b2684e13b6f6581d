package crossover

import (
	"fmt"
	"math"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

// Combiner reduces one gene from each of several parents, at a common
// index, into a single offspring gene.
type Combiner func(genes []genome.Gene) (genome.Gene, error)

// CombineCrossover produces one offspring from NumParentsN parents: at each
// gene index, with probability GeneRate it calls Combine on the parents'
// genes at that index, otherwise it inherits parent 0's gene unchanged.
type CombineCrossover struct {
	Combine           Combiner
	Name              string
	Rate              float64
	GeneRate          float64
	NumParentsN       int
	ExclusiveSampling bool
}

// NewCombineCrossover validates rates and parent count and constructs a CombineCrossover.
func NewCombineCrossover(name string, combine Combiner, rate, geneRate float64, numParents int, exclusive bool) (CombineCrossover, error) {
	if rate < 0 || rate > 1 {
		return CombineCrossover{}, errs.NewConfigError(name+" chromosome rate", errs.ErrRateOutOfRange)
	}
	if geneRate < 0 || geneRate > 1 {
		return CombineCrossover{}, errs.NewConfigError(name+" gene rate", errs.ErrRateOutOfRange)
	}
	if numParents < 2 {
		return CombineCrossover{}, errs.NewConfigError(name+" numParents must be at least 2", errs.ErrWrongParentCount)
	}
	return CombineCrossover{
		Combine: combine, Name: name, Rate: rate, GeneRate: geneRate,
		NumParentsN: numParents, ExclusiveSampling: exclusive,
	}, nil
}

// AverageCombiner combines double genes by numeric average.
func AverageCombiner(genes []genome.Gene) (genome.Gene, error) {
	sum := 0.0
	for _, g := range genes {
		v, ok := g.RawValue().(float64)
		if !ok {
			return nil, errs.NewOperatorError("AverageCombiner requires double genes", errs.ErrInvalidGene)
		}
		sum += v
	}
	first := genes[0].(genome.DoubleGene)
	return genome.DoubleGene{Val: sum / float64(len(genes)), Start: first.Start, End: first.End, Filter: first.Filter}, nil
}

// MeanCombiner combines integer genes by rounding their numeric average.
func MeanCombiner(genes []genome.Gene) (genome.Gene, error) {
	sum := int64(0)
	for _, g := range genes {
		v, ok := g.RawValue().(int64)
		if !ok {
			return nil, errs.NewOperatorError("MeanCombiner requires int genes", errs.ErrInvalidGene)
		}
		sum += v
	}
	first := genes[0].(genome.IntGene)
	avg := int64(math.Round(float64(sum) / float64(len(genes))))
	return genome.IntGene{Val: avg, Start: first.Start, End: first.End, Filter: first.Filter}, nil
}

// NewAverageCrossover constructs a CombineCrossover using AverageCombiner.
func NewAverageCrossover(rate, geneRate float64, numParents int, exclusive bool) (CombineCrossover, error) {
	return NewCombineCrossover("AverageCrossover", AverageCombiner, rate, geneRate, numParents, exclusive)
}

// NewMeanCrossover constructs a CombineCrossover using MeanCombiner.
func NewMeanCrossover(rate, geneRate float64, numParents int, exclusive bool) (CombineCrossover, error) {
	return NewCombineCrossover("MeanCrossover", MeanCombiner, rate, geneRate, numParents, exclusive)
}

// String implements fmt.Stringer.
func (c CombineCrossover) String() string {
	return fmt.Sprintf("%s(%.2f, %.2f, parents=%d)", c.Name, c.Rate, c.GeneRate, c.NumParentsN)
}

// NumParents implements Crossover.
func (c CombineCrossover) NumParents() int { return c.NumParentsN }

// NumOffspring implements Crossover.
func (c CombineCrossover) NumOffspring() int { return 1 }

// ChromosomeRate implements Crossover.
func (c CombineCrossover) ChromosomeRate() float64 { return c.Rate }

// Exclusive implements Crossover.
func (c CombineCrossover) Exclusive() bool { return c.ExclusiveSampling }

// CrossChromosomes implements Crossover.
func (c CombineCrossover) CrossChromosomes(r *prng.Gateway, parents []genome.Chromosome) ([]genome.Chromosome, error) {
	size := parents[0].Size()
	genes := make([]genome.Gene, size)
	for i := 0; i < size; i++ {
		if r.Float64() < c.GeneRate {
			atIndex := make([]genome.Gene, len(parents))
			for pi, p := range parents {
				atIndex[pi] = p.Genes[i]
			}
			g, err := c.Combine(atIndex)
			if err != nil {
				return nil, err
			}
			genes[i] = g
		} else {
			genes[i] = parents[0].Genes[i]
		}
	}
	return []genome.Chromosome{genome.NewChromosome(genes...)}, nil
}
