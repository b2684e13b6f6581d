// Command factorize runs Scenario S2: find 15 integer genes, each drawn
// from {1} union the primes up to 19, whose product is exactly 420.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inlined/evolve/crossover"
	"github.com/inlined/evolve/engine"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/limit"
	"github.com/inlined/evolve/mutation"
	"github.com/inlined/evolve/ranking"
	"github.com/inlined/evolve/selection"
)

const target = 420.0

var factors = []int64{1, 2, 3, 5, 7, 11, 13, 17, 19}

func isFactor(v int64) bool {
	for _, f := range factors {
		if v == f {
			return true
		}
	}
	return false
}

func distanceFromTarget(g genome.Genotype) (float64, error) {
	product := 1.0
	for _, gene := range g.Chromosomes[0].Genes {
		product *= float64(gene.RawValue().(int64))
	}
	return math.Abs(target - product), nil
}

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	factory := genome.GenotypeFactory{
		Factories: []genome.ChromosomeFactory{
			genome.IntChromosomeFactory{
				SizeN:   15,
				Ranges:  []genome.IntRange{{Start: 1, End: 19}},
				Filters: []func(int64) bool{isFactor},
			},
		},
	}

	singlePoint, err := crossover.NewSinglePointCrossover(0.3, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}

	e, err := engine.NewBuilder().
		Fitness(distanceFromTarget).
		GenotypeFactory(factory).
		PopulationSize(5000).
		ParentSelector(selection.TournamentSelector{Size: 3}).
		SurvivorSelector(selection.TournamentSelector{Size: 3}).
		Alterers(
			engine.WithMutator(mutation.RandomMutator{IndRate: 0.2, ChromRate: 1, GeneRate: 0.1}),
			engine.WithMutator(mutation.SwapMutator{IndRate: 0.2, ChromRate: 1, SwapRate: 0.1}),
			engine.WithCrossover(singlePoint),
		).
		Ranker(ranking.FitnessMinRanker{}).
		Limits(limit.TargetFitness{Target: 0.0}, &limit.SteadyGenerations{K: 500}).
		Logger(log).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}

	state, err := e.Evolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, "evolve failed:", err)
		os.Exit(1)
	}

	best := state.BestIndex()
	fmt.Printf("generations: %d\nbest fitness: %v\nbest genotype: %v\n",
		state.Generation, state.Population[best].Fitness.Value(), state.Population[best].Genotype)
}
