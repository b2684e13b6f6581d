// Command tsp runs Scenario S3: find a short round-trip route over 20
// fixed cities, encoded as a permutation chromosome.
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

type point struct{ x, y float64 }

var cities = []point{
	{0, 0}, {4, 9}, {12, 3}, {7, 14}, {19, 1}, {15, 17}, {3, 6}, {8, 2},
	{11, 19}, {17, 8}, {2, 15}, {6, 11}, {14, 4}, {9, 0}, {1, 18},
	{13, 12}, {5, 5}, {18, 14}, {10, 7}, {16, 16},
}

func routeLength(g genome.Genotype) (float64, error) {
	genes := g.Chromosomes[0].Genes
	total := 0.0
	for i := range genes {
		from := cities[genes[i].RawValue().(int64)]
		to := cities[genes[(i+1)%len(genes)].RawValue().(int64)]
		dx, dy := from.x-to.x, from.y-to.y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total, nil
}

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	factory := genome.GenotypeFactory{
		Factories: []genome.ChromosomeFactory{
			genome.PermChromosomeFactory{SizeN: len(cities)},
		},
	}

	ordered, err := crossover.NewOrderedCrossover(0.3, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}

	e, err := engine.NewBuilder().
		Fitness(routeLength).
		GenotypeFactory(factory).
		PopulationSize(1000).
		ParentSelector(selection.TournamentSelector{Size: 3}).
		SurvivorSelector(selection.TournamentSelector{Size: 3}).
		Alterers(
			engine.WithMutator(mutation.InversionMutator{IndRate: 0.3, ChromRate: 1, BoundaryProbability: 0.2}),
			engine.WithCrossover(ordered),
		).
		Ranker(ranking.FitnessMinRanker{}).
		Limits(&limit.SteadyGenerations{K: 500}, limit.MaxGenerations{N: 200}).
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
	fmt.Printf("generations: %d\nbest route length: %v\n", state.Generation, state.Population[best].Fitness.Value())
}
