package genome

import "github.com/inlined/evolve/ranking"

// EvolutionState is the engine's unit of progress: a generation counter,
// the ranker in force, and the population at that generation. The engine
// exclusively owns each state's Population; limits and listeners only ever
// read it.
type EvolutionState struct {
	Generation uint64
	Ranker     ranking.Ranker
	Population Population
}

// EmptyState returns the generation-0 state with an empty population,
// ranked by ranker.
func EmptyState(ranker ranking.Ranker) EvolutionState {
	return EvolutionState{Generation: 0, Ranker: ranker, Population: Population{}}
}

// WithPopulation returns a copy of the state carrying a new population at
// the same generation.
func (s EvolutionState) WithPopulation(pop Population) EvolutionState {
	return EvolutionState{Generation: s.Generation, Ranker: s.Ranker, Population: pop}
}

// NextGeneration returns a copy of the state with the generation counter
// incremented by exactly 1, per the engine's monotone-generation invariant.
func (s EvolutionState) NextGeneration() EvolutionState {
	return EvolutionState{Generation: s.Generation + 1, Ranker: s.Ranker, Population: s.Population}
}

// BestIndex returns the index of the best individual in the state's
// population under its ranker, or -1 if the population is empty.
func (s EvolutionState) BestIndex() int {
	return s.Population.Best(s.Ranker.Less)
}
