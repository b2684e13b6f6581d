package crossover_test

import (
	"errors"
	"testing"

	"github.com/inlined/xkcd"

	"github.com/inlined/evolve/crossover"
	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

func intGenotype(vs ...int64) genome.Genotype {
	genes := make([]genome.Gene, len(vs))
	for i, v := range vs {
		genes[i] = genome.NewIntGene(v, 0, 100, nil)
	}
	return genome.NewGenotype(genome.NewChromosome(genes...))
}

func rawInts(c genome.Chromosome) []int64 {
	out := make([]int64, c.Size())
	for i, g := range c.Genes {
		out[i] = g.RawValue().(int64)
	}
	return out
}

func TestSinglePointCrossoverSwapsTails(t *testing.T) {
	parents := []genome.Chromosome{
		genome.NewChromosome(genome.NewIntGene(1, 0, 10, nil), genome.NewIntGene(2, 0, 10, nil), genome.NewIntGene(3, 0, 10, nil), genome.NewIntGene(4, 0, 10, nil)),
		genome.NewChromosome(genome.NewIntGene(5, 0, 10, nil), genome.NewIntGene(6, 0, 10, nil), genome.NewIntGene(7, 0, 10, nil), genome.NewIntGene(8, 0, 10, nil)),
	}
	// NextIntInRange(1, 3) over xkcd.Rand(1) draws a span of 3 starting at 1: cut = 1 + 1 = 2.
	r := &prng.Gateway{Rand: xkcd.Rand(1)}
	c, _ := crossover.NewSinglePointCrossover(1, false)
	out, err := c.CrossChromosomes(r, parents)
	if err != nil {
		t.Fatalf("CrossChromosomes() returned error: %v", err)
	}
	if got := rawInts(out[0]); got[0] != 1 || got[1] != 2 || got[2] != 7 || got[3] != 8 {
		t.Fatalf("offspring A = %v; want [1 2 7 8]", got)
	}
	if got := rawInts(out[1]); got[0] != 5 || got[1] != 6 || got[2] != 3 || got[3] != 4 {
		t.Fatalf("offspring B = %v; want [5 6 3 4]", got)
	}
}

func TestUniformCrossoverSwapsSelectedIndices(t *testing.T) {
	parents := []genome.Chromosome{
		genome.NewChromosome(genome.NewIntGene(1, 0, 10, nil), genome.NewIntGene(2, 0, 10, nil), genome.NewIntGene(3, 0, 10, nil)),
		genome.NewChromosome(genome.NewIntGene(9, 0, 10, nil), genome.NewIntGene(8, 0, 10, nil), genome.NewIntGene(7, 0, 10, nil)),
	}
	// Indices(0.5, 3) draws Float64 three times; swap index 0 and 2, keep 1.
	r := &prng.Gateway{Rand: xkcd.Rand(0.1, 0.9, 0.1)}
	c, _ := crossover.NewUniformCrossover(1, 0.5, false)
	out, err := c.CrossChromosomes(r, parents)
	if err != nil {
		t.Fatalf("CrossChromosomes() returned error: %v", err)
	}
	if got := rawInts(out[0]); got[0] != 9 || got[1] != 2 || got[2] != 7 {
		t.Fatalf("offspring A = %v; want [9 2 7]", got)
	}
	if got := rawInts(out[1]); got[0] != 1 || got[1] != 8 || got[2] != 3 {
		t.Fatalf("offspring B = %v; want [1 8 3]", got)
	}
}

func TestAverageCrossoverCombinesDoubleGenes(t *testing.T) {
	parents := []genome.Chromosome{
		genome.NewChromosome(genome.NewDoubleGene(2, -100, 100, nil)),
		genome.NewChromosome(genome.NewDoubleGene(4, -100, 100, nil)),
	}
	r := &prng.Gateway{Rand: xkcd.Rand(0.0)} // always below geneRate: always combine
	c, _ := crossover.NewAverageCrossover(1, 1, 2, false)
	out, err := c.CrossChromosomes(r, parents)
	if err != nil {
		t.Fatalf("CrossChromosomes() returned error: %v", err)
	}
	if out[0].Gene(0).RawValue().(float64) != 3 {
		t.Fatalf("combined value = %v; want 3", out[0].Gene(0).RawValue())
	}
}

func TestMeanCrossoverRoundsIntegerAverage(t *testing.T) {
	parents := []genome.Chromosome{
		genome.NewChromosome(genome.NewIntGene(1, 0, 10, nil)),
		genome.NewChromosome(genome.NewIntGene(2, 0, 10, nil)),
	}
	r := &prng.Gateway{Rand: xkcd.Rand(0.0)}
	c, _ := crossover.NewMeanCrossover(1, 1, 2, false)
	out, err := c.CrossChromosomes(r, parents)
	if err != nil {
		t.Fatalf("CrossChromosomes() returned error: %v", err)
	}
	if out[0].Gene(0).RawValue().(int64) != 2 { // round(1.5) == 2
		t.Fatalf("combined value = %v; want 2", out[0].Gene(0).RawValue())
	}
}

func TestOrderedCrossoverPreservesPermutation(t *testing.T) {
	parents := []genome.Chromosome{
		genome.NewChromosome(genome.NewIntGene(0, 0, 10, nil), genome.NewIntGene(1, 0, 10, nil), genome.NewIntGene(2, 0, 10, nil), genome.NewIntGene(3, 0, 10, nil)),
		genome.NewChromosome(genome.NewIntGene(3, 0, 10, nil), genome.NewIntGene(2, 0, 10, nil), genome.NewIntGene(1, 0, 10, nil), genome.NewIntGene(0, 0, 10, nil)),
	}
	r := &prng.Gateway{Rand: xkcd.Rand(1, 2)} // window [1, 3)
	c, _ := crossover.NewOrderedCrossover(1, false)
	out, err := c.CrossChromosomes(r, parents)
	if err != nil {
		t.Fatalf("CrossChromosomes() returned error: %v", err)
	}
	for _, offspring := range out {
		seen := map[int64]bool{}
		for _, g := range offspring.Genes {
			v := g.RawValue().(int64)
			if seen[v] {
				t.Fatalf("offspring %v repeats value %d", rawInts(offspring), v)
			}
			seen[v] = true
		}
		if len(seen) != 4 {
			t.Fatalf("offspring %v does not contain all 4 values", rawInts(offspring))
		}
	}
}

func TestCrossoverValidatesChromosomeLengthMismatch(t *testing.T) {
	r := prng.New(nil)
	// Exclusive sampling puts both individuals in the one parent group.
	c, _ := crossover.NewSinglePointCrossover(1, true)
	pop := genome.Population{
		genome.New(intGenotype(1, 2)),
		genome.New(intGenotype(1, 2, 3)),
	}
	_, err := crossover.Apply(r, c, pop, 2)
	if err == nil {
		t.Fatalf("Apply() = nil error; want OperatorError on length mismatch")
	}
	var opErr *errs.OperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("err = %v; want *errs.OperatorError", err)
	}
}

func TestApplyFillsExactlyRequestedTotal(t *testing.T) {
	r := prng.New(nil)
	c, _ := crossover.NewSinglePointCrossover(1, false)
	pop := genome.Population{
		genome.New(intGenotype(1, 2, 3, 4)),
		genome.New(intGenotype(5, 6, 7, 8)),
	}
	out, err := crossover.Apply(r, c, pop, 3)
	if err != nil {
		t.Fatalf("Apply() returned error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("Apply() returned %d individuals; want 3", len(out))
	}
}
