package genome_test

import (
	"errors"
	"testing"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
)

func TestIntChromosomeFactoryDefaultRangeBroadcast(t *testing.T) {
	r := prng.New(nil)
	f := genome.IntChromosomeFactory{SizeN: 20, Ranges: []genome.IntRange{{Start: 0, End: 10}}}
	c, err := f.Make(r)
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	if c.Size() != 20 {
		t.Fatalf("Size() = %d; want 20", c.Size())
	}
	if !c.Verify() {
		t.Fatalf("Verify() = false; every gene should be in [0, 10]")
	}
}

func TestIntChromosomeFactoryPerIndexRanges(t *testing.T) {
	r := prng.New(nil)
	f := genome.IntChromosomeFactory{
		SizeN:  2,
		Ranges: []genome.IntRange{{Start: 0, End: 1}, {Start: 100, End: 101}},
	}
	c, err := f.Make(r)
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	if c.Gene(0).RawValue().(int64) > 1 {
		t.Fatalf("index 0 escaped its per-index range")
	}
	if c.Gene(1).RawValue().(int64) < 100 {
		t.Fatalf("index 1 escaped its per-index range")
	}
}

func TestIntChromosomeFactoryRejectsBadRangeListLength(t *testing.T) {
	r := prng.New(nil)
	f := genome.IntChromosomeFactory{
		SizeN:  5,
		Ranges: []genome.IntRange{{Start: 0, End: 1}, {Start: 0, End: 1}}, // neither 0, 1, nor 5
	}
	_, err := f.Make(r)
	if err == nil {
		t.Fatalf("Make() = nil error; want ConfigError for a bad ranges list length")
	}
	var cfg *errs.ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("err = %v; want *errs.ConfigError", err)
	}
}

func TestIntChromosomeFactoryRejectsEmptyRange(t *testing.T) {
	r := prng.New(nil)
	f := genome.IntChromosomeFactory{SizeN: 3, Ranges: []genome.IntRange{{Start: 5, End: 5}}}
	_, err := f.Make(r)
	if err == nil {
		t.Fatalf("Make() = nil error; want ConfigError for start == endInclusive")
	}
}

func TestIntChromosomeFactoryRejectsNonPositiveSize(t *testing.T) {
	r := prng.New(nil)
	f := genome.IntChromosomeFactory{SizeN: 0}
	_, err := f.Make(r)
	if err == nil {
		t.Fatalf("Make() = nil error; want ConfigError for size <= 0")
	}
}

func TestBoolChromosomeFactoryProducesRequestedSize(t *testing.T) {
	r := prng.New(nil)
	f := genome.BoolChromosomeFactory{SizeN: 50, TrueRate: 0.15}
	c, err := f.Make(r)
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	if c.Size() != 50 {
		t.Fatalf("Size() = %d; want 50", c.Size())
	}
}

func TestPermChromosomeFactoryProducesAPermutation(t *testing.T) {
	r := prng.New(nil)
	f := genome.PermChromosomeFactory{SizeN: 10}
	c, err := f.Make(r)
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	seen := make([]bool, 10)
	for i := 0; i < c.Size(); i++ {
		v := c.Gene(i).RawValue().(int64)
		if v < 0 || v >= 10 || seen[v] {
			t.Fatalf("PermChromosomeFactory produced a non-permutation at index %d: %d", i, v)
		}
		seen[v] = true
	}
}

func TestGenotypeFactoryAssemblesInOrder(t *testing.T) {
	r := prng.New(nil)
	gf := genome.GenotypeFactory{Factories: []genome.ChromosomeFactory{
		genome.BoolChromosomeFactory{SizeN: 3},
		genome.IntChromosomeFactory{SizeN: 2, Ranges: []genome.IntRange{{Start: 0, End: 5}}},
	}}
	g, err := gf.Make(r)
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", g.Size())
	}
	if g.Chromosome(0).Kind() != genome.KindBool {
		t.Fatalf("Chromosome(0).Kind() = %v; want KindBool", g.Chromosome(0).Kind())
	}
	if g.Chromosome(1).Kind() != genome.KindInt {
		t.Fatalf("Chromosome(1).Kind() = %v; want KindInt", g.Chromosome(1).Kind())
	}
}

func TestGenotypeFactoryRejectsNoFactories(t *testing.T) {
	r := prng.New(nil)
	_, err := genome.GenotypeFactory{}.Make(r)
	if err == nil {
		t.Fatalf("Make() = nil error; want ConfigError for an empty factory list")
	}
}
