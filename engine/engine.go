// Package engine implements the builder, the generational state machine,
// and Evolve(): the control flow that threads an EvolutionState through
// initialization, evaluation, selection, alteration, and re-evaluation
// until a configured Limit fires.
package engine

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inlined/evolve/evaluate"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/limit"
	"github.com/inlined/evolve/listener"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
	"github.com/inlined/evolve/selection"
)

// Engine owns the generation counter, threads EvolutionState through each
// phase, and fires listener hooks around every one. Construct one through
// Builder.
type Engine struct {
	evaluator        evaluate.Evaluator
	factory          genome.GenotypeFactory
	populationSize   int
	survivalRate     float64
	parentSelector   selection.Selector
	survivorSelector selection.Selector
	alterers         []Alterer
	limits           []limit.Limit
	ranker           ranking.Ranker
	listeners        listener.Multi
	rng              *prng.Gateway
	log              *logrus.Logger
}

// Evolve runs the engine to completion: Idle -> Running -> Terminated. It
// fires onEvolutionStarted once, then repeatedly iterates a generation and
// fires onGenerationStarted/Ended around it, stopping as soon as any
// configured Limit returns true, then fires onEvolutionEnded.
func (e *Engine) Evolve() (genome.EvolutionState, error) {
	state := genome.EmptyState(e.ranker)

	if err := e.listeners.OnEvolutionStarted(state); err != nil {
		return state, err
	}

	for {
		if err := e.listeners.OnGenerationStarted(state); err != nil {
			return state, err
		}

		next, err := e.iterateGeneration(state)
		if err != nil {
			return state, err
		}
		state = next

		if err := e.listeners.OnGenerationEnded(state); err != nil {
			return state, err
		}

		best := -1
		bestFitness := 0.0
		if idx := state.BestIndex(); idx != -1 {
			best = idx
			bestFitness = state.Population[idx].Fitness.Value()
		}
		e.log.WithFields(logrus.Fields{
			"generation":      state.Generation,
			"population_size": len(state.Population),
			"best_fitness":    bestFitness,
			"has_best":        best != -1,
		}).Info("generation boundary")

		if limit.Any(e.limits, state) {
			e.log.Warn("limit reached, terminating evolution")
			break
		}
	}

	if err := e.listeners.OnEvolutionEnded(state); err != nil {
		return state, err
	}
	return state, nil
}

// iterateGeneration runs the ten-step control flow of a single generation:
// initialize-if-empty, evaluate, select parents and survivors, alter,
// merge, re-evaluate, and increment the generation counter by exactly 1.
func (e *Engine) iterateGeneration(state genome.EvolutionState) (genome.EvolutionState, error) {
	s := state

	if len(s.Population) == 0 {
		e.log.Debug("initializing population")
		if err := e.listeners.OnInitializationStarted(s); err != nil {
			return s, err
		}
		pop := make(genome.Population, e.populationSize)
		for i := range pop {
			g, err := e.factory.Make(e.rng)
			if err != nil {
				return s, err
			}
			pop[i] = genome.New(g)
		}
		s = s.WithPopulation(pop)
		if err := e.listeners.OnInitializationEnded(s); err != nil {
			return s, err
		}
	}

	e.log.Debug("evaluating population")
	if err := e.listeners.OnEvaluationStarted(s); err != nil {
		return s, err
	}
	evaluated, err := e.evaluator.Evaluate(s.Population, false)
	if err != nil {
		return s, err
	}
	s = s.WithPopulation(evaluated)
	if err := e.listeners.OnEvaluationEnded(s); err != nil {
		return s, err
	}

	numSurvivors := int(math.Round(float64(e.populationSize) * e.survivalRate))
	numParents := e.populationSize - numSurvivors

	e.log.Debug("selecting parents")
	if err := e.listeners.OnParentSelectionStarted(s); err != nil {
		return s, err
	}
	parents, err := selection.Invoke(e.parentSelector, e.rng, s.Population, numParents, e.ranker)
	if err != nil {
		return s, err
	}
	if err := e.listeners.OnParentSelectionEnded(s); err != nil {
		return s, err
	}

	e.log.Debug("selecting survivors")
	if err := e.listeners.OnSurvivorSelectionStarted(s); err != nil {
		return s, err
	}
	survivors, err := selection.Invoke(e.survivorSelector, e.rng, s.Population, numSurvivors, e.ranker)
	if err != nil {
		return s, err
	}
	if err := e.listeners.OnSurvivorSelectionEnded(s); err != nil {
		return s, err
	}

	e.log.Debug("altering parents")
	if err := e.listeners.OnAlterationStarted(s); err != nil {
		return s, err
	}
	offspring := parents
	for _, a := range e.alterers {
		offspring, err = a.Alter(e.rng, offspring)
		if err != nil {
			return s, err
		}
	}
	if err := e.listeners.OnAlterationEnded(s); err != nil {
		return s, err
	}

	merged := make(genome.Population, 0, e.populationSize)
	merged = append(merged, survivors...)
	merged = append(merged, offspring...)

	e.log.Debug("re-evaluating merged population")
	if err := e.listeners.OnEvaluationStarted(s); err != nil {
		return s, err
	}
	final, err := e.evaluator.Evaluate(merged, false)
	if err != nil {
		return s, err
	}
	s = s.WithPopulation(final)
	if err := e.listeners.OnEvaluationEnded(s); err != nil {
		return s, err
	}

	return s.NextGeneration(), nil
}
