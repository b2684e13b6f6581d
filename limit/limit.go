// Package limit implements termination predicates over engine state: the
// engine stops as soon as any configured Limit returns true.
package limit

import (
	"fmt"

	"github.com/inlined/evolve/genome"
)

// Limit is a predicate over evolution state deciding whether to terminate.
type Limit interface {
	fmt.Stringer

	// Done reports whether evolution should stop given state, the state
	// produced by the generation that just completed.
	Done(state genome.EvolutionState) bool
}

// MaxGenerations terminates once state.Generation reaches N.
type MaxGenerations struct {
	N uint64
}

// String implements fmt.Stringer.
func (l MaxGenerations) String() string { return fmt.Sprintf("MaxGenerations(%d)", l.N) }

// Done implements Limit.
func (l MaxGenerations) Done(state genome.EvolutionState) bool {
	return state.Generation >= l.N
}

// TargetFitness terminates once the population's best individual crosses
// Target in the ranker's optimization direction.
type TargetFitness struct {
	Target float64
}

// String implements fmt.Stringer.
func (l TargetFitness) String() string { return fmt.Sprintf("TargetFitness(%g)", l.Target) }

// Done implements Limit.
func (l TargetFitness) Done(state genome.EvolutionState) bool {
	best := state.BestIndex()
	if best == -1 {
		return false
	}
	return state.Ranker.Crosses(state.Population[best].Fitness.Value(), l.Target)
}

// SteadyGenerations terminates once the best fitness has not strictly
// improved, under the ranker, for K consecutive generations. It tracks its
// own last-seen best and consecutive-steady counter, so a single
// SteadyGenerations value must not be shared across independent runs.
type SteadyGenerations struct {
	K uint64

	haveBest  bool
	lastBest  float64
	steadyFor uint64
}

// String implements fmt.Stringer.
func (l *SteadyGenerations) String() string { return fmt.Sprintf("SteadyGenerations(%d)", l.K) }

// Steady returns the current count of consecutive generations without
// strict improvement, for listeners that report on termination progress.
func (l *SteadyGenerations) Steady() uint64 { return l.steadyFor }

// Done implements Limit.
func (l *SteadyGenerations) Done(state genome.EvolutionState) bool {
	best := state.BestIndex()
	if best == -1 {
		return false
	}
	fitness := state.Population[best].Fitness.Value()

	if !l.haveBest {
		l.haveBest = true
		l.lastBest = fitness
		l.steadyFor = 0
		return false
	}

	if state.Ranker.Less(fitness, l.lastBest) {
		l.lastBest = fitness
		l.steadyFor = 0
		return false
	}

	l.steadyFor++
	return l.steadyFor >= l.K
}

// MatchLimit wraps a user-supplied predicate.
type MatchLimit struct {
	Name      string
	Predicate func(state genome.EvolutionState) bool
}

// String implements fmt.Stringer.
func (l MatchLimit) String() string {
	if l.Name == "" {
		return "MatchLimit"
	}
	return fmt.Sprintf("MatchLimit(%s)", l.Name)
}

// Done implements Limit.
func (l MatchLimit) Done(state genome.EvolutionState) bool {
	return l.Predicate(state)
}

// Any reports whether any of limits terminates for state.
func Any(limits []Limit, state genome.EvolutionState) bool {
	for _, l := range limits {
		if l.Done(state) {
			return true
		}
	}
	return false
}
