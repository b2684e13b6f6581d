// Command onemax runs Scenario S1: evolve a 50-bit boolean chromosome to
// maximize the count of true genes.
package main

import (
	"fmt"
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

func countTrue(g genome.Genotype) (float64, error) {
	total := 0.0
	for _, gene := range g.Chromosomes[0].Genes {
		if gene.RawValue().(bool) {
			total++
		}
	}
	return total, nil
}

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	factory := genome.GenotypeFactory{
		Factories: []genome.ChromosomeFactory{
			genome.BoolChromosomeFactory{SizeN: 50, TrueRate: 0.15},
		},
	}

	uniform, err := crossover.NewUniformCrossover(0.6, 0.5, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}

	e, err := engine.NewBuilder().
		Fitness(countTrue).
		GenotypeFactory(factory).
		PopulationSize(100).
		ParentSelector(selection.RouletteWheelSelector{}).
		SurvivorSelector(selection.TournamentSelector{Size: 3}).
		Alterers(
			engine.WithMutator(mutation.BitFlipMutator{IndRate: 0.5, ChromRate: 1, GeneRate: 0.02}),
			engine.WithCrossover(uniform),
		).
		Ranker(ranking.FitnessMaxRanker{}).
		Limits(limit.MaxGenerations{N: 500}, limit.TargetFitness{Target: 50.0}).
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
	fmt.Printf("generations: %d\nbest fitness: %v\n", state.Generation, state.Population[best].Fitness.Value())
}
