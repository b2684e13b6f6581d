package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inlined/evolve/engine"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/limit"
	"github.com/inlined/evolve/mutation"
	"github.com/inlined/evolve/selection"
)

func buildOnesEngine(t *testing.T, seed uint64, generations uint64) *engine.Engine {
	t.Helper()
	e, err := engine.NewBuilder().
		Fitness(onesFitness).
		GenotypeFactory(boolFactory(8)).
		PopulationSize(20).
		SurvivalRate(0.4).
		ParentSelector(selection.TournamentSelector{Size: 2}).
		SurvivorSelector(selection.RandomSelector{}).
		Alterers(engine.WithMutator(mutation.RandomMutator{IndRate: 0.2, ChromRate: 1, GeneRate: 0.1})).
		Limits(limit.MaxGenerations{N: generations}).
		Seed(seed).
		Build()
	require.NoError(t, err)
	return e
}

func TestEvolveHoldsPopulationSizeInvariant(t *testing.T) {
	e := buildOnesEngine(t, 1, 5)
	state, err := e.Evolve()
	require.NoError(t, err)
	require.Len(t, state.Population, 20)
}

func TestEvolveEvaluatesEveryIndividual(t *testing.T) {
	e := buildOnesEngine(t, 2, 5)
	state, err := e.Evolve()
	require.NoError(t, err)
	for _, ind := range state.Population {
		require.True(t, ind.IsEvaluated())
	}
}

func TestEvolveStopsAtConfiguredGeneration(t *testing.T) {
	e := buildOnesEngine(t, 3, 7)
	state, err := e.Evolve()
	require.NoError(t, err)
	require.Equal(t, uint64(7), state.Generation)
}

func TestEvolveIsDeterministicGivenSeed(t *testing.T) {
	a := buildOnesEngine(t, 42, 5)
	b := buildOnesEngine(t, 42, 5)

	stateA, err := a.Evolve()
	require.NoError(t, err)
	stateB, err := b.Evolve()
	require.NoError(t, err)

	require.Equal(t, stateA.Generation, stateB.Generation)
	require.Len(t, stateB.Population, len(stateA.Population))
	for i := range stateA.Population {
		require.Equal(t, stateA.Population[i].Fitness.Value(), stateB.Population[i].Fitness.Value())
		require.Equal(t, stateA.Population[i].Genotype, stateB.Population[i].Genotype)
	}
}

func TestEvolveNotifiesListeners(t *testing.T) {
	counting := &countingGenerationListener{}
	e, err := engine.NewBuilder().
		Fitness(onesFitness).
		GenotypeFactory(boolFactory(8)).
		PopulationSize(10).
		ParentSelector(selection.RandomSelector{}).
		SurvivorSelector(selection.RandomSelector{}).
		Alterers(engine.WithMutator(mutation.RandomMutator{IndRate: 0.2, ChromRate: 1, GeneRate: 0.1})).
		Limits(limit.MaxGenerations{N: 3}).
		Listeners(counting).
		Seed(9).
		Build()
	require.NoError(t, err)

	_, err = e.Evolve()
	require.NoError(t, err)
	require.Equal(t, 3, counting.started)
}

type countingGenerationListener struct {
	started int
}

func (c *countingGenerationListener) OnEvolutionStarted(genome.EvolutionState) error  { return nil }
func (c *countingGenerationListener) OnEvolutionEnded(genome.EvolutionState) error    { return nil }
func (c *countingGenerationListener) OnInitializationStarted(genome.EvolutionState) error {
	return nil
}
func (c *countingGenerationListener) OnInitializationEnded(genome.EvolutionState) error { return nil }
func (c *countingGenerationListener) OnGenerationStarted(genome.EvolutionState) error {
	c.started++
	return nil
}
func (c *countingGenerationListener) OnGenerationEnded(genome.EvolutionState) error       { return nil }
func (c *countingGenerationListener) OnEvaluationStarted(genome.EvolutionState) error     { return nil }
func (c *countingGenerationListener) OnEvaluationEnded(genome.EvolutionState) error       { return nil }
func (c *countingGenerationListener) OnParentSelectionStarted(genome.EvolutionState) error {
	return nil
}
func (c *countingGenerationListener) OnParentSelectionEnded(genome.EvolutionState) error { return nil }
func (c *countingGenerationListener) OnSurvivorSelectionStarted(genome.EvolutionState) error {
	return nil
}
func (c *countingGenerationListener) OnSurvivorSelectionEnded(genome.EvolutionState) error {
	return nil
}
func (c *countingGenerationListener) OnAlterationStarted(genome.EvolutionState) error { return nil }
func (c *countingGenerationListener) OnAlterationEnded(genome.EvolutionState) error   { return nil }
