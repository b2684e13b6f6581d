package genome_test

import (
	"testing"

	"github.com/inlined/evolve/genome"
)

func TestNewIndividualIsUnevaluated(t *testing.T) {
	ind := genome.New(genome.NewGenotype(genome.NewChromosome(ints(1, 2)...)))
	if ind.IsEvaluated() {
		t.Fatalf("IsEvaluated() = true for a freshly constructed individual")
	}
	if ind.Verify() {
		t.Fatalf("Verify() = true for an unevaluated individual; want false")
	}
}

func TestIndividualVerifyRequiresEvaluation(t *testing.T) {
	ind := genome.New(genome.NewGenotype(genome.NewChromosome(ints(1, 2)...)))
	evaluated := ind.WithFitness(genome.EvaluatedFitness(42))
	if !evaluated.Verify() {
		t.Fatalf("Verify() = false for an evaluated individual with a valid genotype")
	}
}

func TestIndividualEqualityIgnoresFitness(t *testing.T) {
	genotype := genome.NewGenotype(genome.NewChromosome(ints(1, 2)...))
	a := genome.New(genotype).WithFitness(genome.EvaluatedFitness(1))
	b := genome.New(genotype).WithFitness(genome.EvaluatedFitness(999))
	if !a.Equal(b) {
		t.Fatalf("Equal() = false; fitness must not be part of identity")
	}
}

func TestWithGenotypeResetsFitness(t *testing.T) {
	genotype := genome.NewGenotype(genome.NewChromosome(ints(1, 2)...))
	ind := genome.New(genotype).WithFitness(genome.EvaluatedFitness(5))
	changed := ind.WithGenotype(genome.NewGenotype(genome.NewChromosome(ints(9, 9)...)))
	if changed.IsEvaluated() {
		t.Fatalf("WithGenotype() kept a stale fitness; want unevaluated")
	}
}

func TestFitnessStringDistinguishesUnevaluated(t *testing.T) {
	if genome.UnevaluatedFitness.String() != "unevaluated" {
		t.Fatalf("String() = %q; want %q", genome.UnevaluatedFitness.String(), "unevaluated")
	}
	if genome.EvaluatedFitness(3.5).String() == "unevaluated" {
		t.Fatalf("String() for an evaluated fitness must not read as unevaluated")
	}
}
