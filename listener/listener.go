// Package listener implements the engine's observe-only lifecycle hooks:
// per-phase events a caller can subscribe to without influencing the
// evolution itself.
package listener

import "github.com/inlined/evolve/genome"

// Listener observes the engine's phase transitions. Every hook receives an
// immutable snapshot of the current state; a hook must not mutate it. A
// hook that returns an error aborts evolution exactly like an evaluation
// error.
type Listener interface {
	OnEvolutionStarted(state genome.EvolutionState) error
	OnEvolutionEnded(state genome.EvolutionState) error

	OnInitializationStarted(state genome.EvolutionState) error
	OnInitializationEnded(state genome.EvolutionState) error

	OnGenerationStarted(state genome.EvolutionState) error
	OnGenerationEnded(state genome.EvolutionState) error

	OnEvaluationStarted(state genome.EvolutionState) error
	OnEvaluationEnded(state genome.EvolutionState) error

	OnParentSelectionStarted(state genome.EvolutionState) error
	OnParentSelectionEnded(state genome.EvolutionState) error

	OnSurvivorSelectionStarted(state genome.EvolutionState) error
	OnSurvivorSelectionEnded(state genome.EvolutionState) error

	OnAlterationStarted(state genome.EvolutionState) error
	OnAlterationEnded(state genome.EvolutionState) error
}

// NoOp implements Listener with every hook a no-op. Listeners that only
// care about a handful of events embed NoOp and override the rest.
type NoOp struct{}

func (NoOp) OnEvolutionStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnEvolutionEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnInitializationStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnInitializationEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnGenerationStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnGenerationEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnEvaluationStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnEvaluationEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnParentSelectionStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnParentSelectionEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnSurvivorSelectionStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnSurvivorSelectionEnded(genome.EvolutionState) error   { return nil }

func (NoOp) OnAlterationStarted(genome.EvolutionState) error { return nil }
func (NoOp) OnAlterationEnded(genome.EvolutionState) error   { return nil }

// Multi fans one event out to every listener in registration order,
// stopping at (and returning) the first error.
type Multi []Listener

func (m Multi) OnEvolutionStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnEvolutionStarted(s) })
}
func (m Multi) OnEvolutionEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnEvolutionEnded(s) })
}
func (m Multi) OnInitializationStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnInitializationStarted(s) })
}
func (m Multi) OnInitializationEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnInitializationEnded(s) })
}
func (m Multi) OnGenerationStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnGenerationStarted(s) })
}
func (m Multi) OnGenerationEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnGenerationEnded(s) })
}
func (m Multi) OnEvaluationStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnEvaluationStarted(s) })
}
func (m Multi) OnEvaluationEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnEvaluationEnded(s) })
}
func (m Multi) OnParentSelectionStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnParentSelectionStarted(s) })
}
func (m Multi) OnParentSelectionEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnParentSelectionEnded(s) })
}
func (m Multi) OnSurvivorSelectionStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnSurvivorSelectionStarted(s) })
}
func (m Multi) OnSurvivorSelectionEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnSurvivorSelectionEnded(s) })
}
func (m Multi) OnAlterationStarted(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnAlterationStarted(s) })
}
func (m Multi) OnAlterationEnded(s genome.EvolutionState) error {
	return m.fanOut(func(l Listener) error { return l.OnAlterationEnded(s) })
}

func (m Multi) fanOut(call func(Listener) error) error {
	for _, l := range m {
		if err := call(l); err != nil {
			return err
		}
	}
	return nil
}
