package selection_test

import (
	"testing"

	"github.com/inlined/xkcd"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
	"github.com/inlined/evolve/selection"
)

func individualsWithFitness(vs ...float64) genome.Population {
	pop := make(genome.Population, len(vs))
	for i, v := range vs {
		pop[i] = genome.New(genome.Genotype{}).WithFitness(genome.EvaluatedFitness(v))
	}
	return pop
}

func TestTournamentSelectorDefaultsToThree(t *testing.T) {
	s := selection.TournamentSelector{}
	if s.String() != "TournamentSelector(3)" {
		t.Fatalf("String() = %q; want TournamentSelector(3)", s.String())
	}
}

func TestTournamentSelectorPicksBestOfCandidates(t *testing.T) {
	pop := individualsWithFitness(1, 2, 3)
	g := &prng.Gateway{Rand: xkcd.Rand(0, 2)}
	s := selection.TournamentSelector{Size: 2}
	out, err := s.Select(g, pop, 1, ranking.FitnessMaxRanker{})
	if err != nil {
		t.Fatalf("Select() returned error: %v", err)
	}
	if out[0].Fitness.Value() != 3 {
		t.Fatalf("Select() picked fitness %v; want 3", out[0].Fitness.Value())
	}
}

func TestTournamentSelectorHonorsMinDirection(t *testing.T) {
	pop := individualsWithFitness(1, 2, 3)
	g := &prng.Gateway{Rand: xkcd.Rand(0, 2)}
	s := selection.TournamentSelector{Size: 2}
	out, err := s.Select(g, pop, 1, ranking.FitnessMinRanker{})
	if err != nil {
		t.Fatalf("Select() returned error: %v", err)
	}
	if out[0].Fitness.Value() != 1 {
		t.Fatalf("Select() picked fitness %v; want 1", out[0].Fitness.Value())
	}
}

func TestInvokeRejectsEmptyPopulation(t *testing.T) {
	g := &prng.Gateway{Rand: xkcd.Rand()}
	_, err := selection.Invoke(selection.TournamentSelector{}, g, genome.Population{}, 1, ranking.FitnessMaxRanker{})
	if err == nil {
		t.Fatalf("Invoke() = nil error; want error on empty population")
	}
}

func TestInvokeRejectsNegativeCount(t *testing.T) {
	pop := individualsWithFitness(1)
	g := &prng.Gateway{Rand: xkcd.Rand()}
	_, err := selection.Invoke(selection.TournamentSelector{}, g, pop, -1, ranking.FitnessMaxRanker{})
	if err == nil {
		t.Fatalf("Invoke() = nil error; want error on negative count")
	}
}

func TestInvokeShortCircuitsZeroCount(t *testing.T) {
	pop := individualsWithFitness(1)
	g := &prng.Gateway{Rand: xkcd.Rand()}
	out, err := selection.Invoke(selection.TournamentSelector{}, g, pop, 0, ranking.FitnessMaxRanker{})
	if err != nil {
		t.Fatalf("Invoke() returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Invoke() = %v; want empty population", out)
	}
}
