// Package evaluate applies the user-supplied fitness function to the dirty
// (unevaluated) individuals of a population, or to all of them when forced.
package evaluate

import (
	"fmt"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/genome"
)

// FitnessFunc is the opaque, user-supplied, pure function from genotype to
// a real fitness value. It may return an error; a panic inside it is also
// recovered and reported the same way, so evolve never crashes the caller's
// process on a bad fitness function.
type FitnessFunc func(genome.Genotype) (float64, error)

// Evaluator applies a FitnessFunc to a population.
type Evaluator struct {
	Fitness FitnessFunc
}

// New constructs an Evaluator.
func New(fn FitnessFunc) Evaluator {
	return Evaluator{Fitness: fn}
}

// Evaluate selects the subset of pop to (re-)score: all individuals if
// force, otherwise only the unevaluated ones. When force is false and no
// individual is dirty, Evaluate is a no-op that returns pop unchanged,
// satisfying the "evaluation is idempotent" law.
func (e Evaluator) Evaluate(pop genome.Population, force bool) (genome.Population, error) {
	if force {
		out := make(genome.Population, len(pop))
		for i, ind := range pop {
			f, err := e.evalOne(ind)
			if err != nil {
				return nil, err
			}
			out[i] = ind.WithFitness(genome.EvaluatedFitness(f))
		}
		return out, nil
	}

	dirty := 0
	for _, ind := range pop {
		if !ind.IsEvaluated() {
			dirty++
		}
	}
	if dirty == 0 {
		return pop, nil
	}

	out := make(genome.Population, 0, len(pop))
	for _, ind := range pop {
		if ind.IsEvaluated() {
			out = append(out, ind)
		}
	}
	for _, ind := range pop {
		if ind.IsEvaluated() {
			continue
		}
		f, err := e.evalOne(ind)
		if err != nil {
			return nil, err
		}
		out = append(out, ind.WithFitness(genome.EvaluatedFitness(f)))
	}
	return out, nil
}

func (e Evaluator) evalOne(ind genome.Individual) (fitness float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.NewEvaluationError("fitness function panicked", fmt.Errorf("%v", r))
		}
	}()

	v, ferr := e.Fitness(ind.Genotype)
	if ferr != nil {
		return 0, errs.NewEvaluationError("fitness function returned an error", ferr)
	}
	return v, nil
}
