package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/inlined/evolve/errs"
	"github.com/inlined/evolve/evaluate"
	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/limit"
	"github.com/inlined/evolve/listener"
	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
	"github.com/inlined/evolve/selection"
)

// Builder assembles an Engine through method chaining, matching the
// programmatic caller API. Build checks the engine-level settings; it does
// not check the chromosome factories' own size/range/filter settings, whose
// ConfigError is returned by Evolve when it first builds the population.
type Builder struct {
	fitness          evaluate.FitnessFunc
	factory          genome.GenotypeFactory
	populationSize   int
	survivalRate     float64
	parentSelector   selection.Selector
	survivorSelector selection.Selector
	alterers         []Alterer
	limits           []limit.Limit
	ranker           ranking.Ranker
	listeners        []listener.Listener
	seed             *uint64
	logger           *logrus.Logger
}

// NewBuilder returns a Builder pre-loaded with the engine's defaults:
// populationSize 50, survivalRate 0.4, ranker FitnessMax, no seed.
func NewBuilder() *Builder {
	return &Builder{
		populationSize: 50,
		survivalRate:   0.4,
		ranker:         ranking.FitnessMaxRanker{},
	}
}

// Fitness sets the fitness function.
func (b *Builder) Fitness(fn evaluate.FitnessFunc) *Builder {
	b.fitness = fn
	return b
}

// GenotypeFactory sets the factory used to produce initial genetic material.
func (b *Builder) GenotypeFactory(f genome.GenotypeFactory) *Builder {
	b.factory = f
	return b
}

// PopulationSize sets the invariant population size.
func (b *Builder) PopulationSize(n int) *Builder {
	b.populationSize = n
	return b
}

// SurvivalRate sets the fraction of the population preserved, unaltered,
// into the next generation.
func (b *Builder) SurvivalRate(r float64) *Builder {
	b.survivalRate = r
	return b
}

// ParentSelector sets the selector used to draw breeding parents.
func (b *Builder) ParentSelector(s selection.Selector) *Builder {
	b.parentSelector = s
	return b
}

// SurvivorSelector sets the selector used to draw survivors.
func (b *Builder) SurvivorSelector(s selection.Selector) *Builder {
	b.survivorSelector = s
	return b
}

// Alterers appends crossover/mutator alterers, applied in the given order
// during the alteration phase.
func (b *Builder) Alterers(a ...Alterer) *Builder {
	b.alterers = append(b.alterers, a...)
	return b
}

// Limits appends termination predicates; evolution stops when any fires.
func (b *Builder) Limits(l ...limit.Limit) *Builder {
	b.limits = append(b.limits, l...)
	return b
}

// Ranker sets the optimization direction and comparator.
func (b *Builder) Ranker(r ranking.Ranker) *Builder {
	b.ranker = r
	return b
}

// Listeners appends lifecycle observers, notified in registration order.
func (b *Builder) Listeners(l ...listener.Listener) *Builder {
	b.listeners = append(b.listeners, l...)
	return b
}

// Seed fixes the PRNG gateway's seed for a reproducible run.
func (b *Builder) Seed(seed uint64) *Builder {
	b.seed = &seed
	return b
}

// Logger overrides the engine's structured logger (default
// logrus.StandardLogger()).
func (b *Builder) Logger(l *logrus.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the accumulated configuration and constructs an Engine.
// Construction never panics: every violation is reported as a ConfigError.
func (b *Builder) Build() (*Engine, error) {
	if b.fitness == nil {
		return nil, errs.NewConfigError("fitness function is required", nil)
	}
	if len(b.factory.Factories) == 0 {
		return nil, errs.NewConfigError("genotype factory is required", nil)
	}
	if b.populationSize <= 0 {
		return nil, errs.NewConfigError("populationSize must be > 0", errs.ErrNegativeCount)
	}
	if b.survivalRate < 0 || b.survivalRate > 1 {
		return nil, errs.NewConfigError("survivalRate must be in [0, 1]", errs.ErrRateOutOfRange)
	}
	if b.parentSelector == nil {
		return nil, errs.NewConfigError("parentSelector is required", nil)
	}
	if b.survivorSelector == nil {
		return nil, errs.NewConfigError("survivorSelector is required", nil)
	}

	ranker := b.ranker
	if ranker == nil {
		ranker = ranking.FitnessMaxRanker{}
	}
	logger := b.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		evaluator:        evaluate.New(b.fitness),
		factory:          b.factory,
		populationSize:   b.populationSize,
		survivalRate:     b.survivalRate,
		parentSelector:   b.parentSelector,
		survivorSelector: b.survivorSelector,
		alterers:         append([]Alterer(nil), b.alterers...),
		limits:           append([]limit.Limit(nil), b.limits...),
		ranker:           ranker,
		listeners:        listener.Multi(append([]listener.Listener(nil), b.listeners...)),
		rng:              prng.New(b.seed),
		log:              logger,
	}, nil
}
