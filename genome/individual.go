package genome

import "strconv"

// Fitness is a two-variant sum type replacing the NaN-as-unevaluated
// sentinel some genetic-algorithm sources use: an Individual's fitness is
// either Unevaluated or Evaluated(value).
type Fitness struct {
	ok    bool
	value float64
}

// UnevaluatedFitness is the zero-value Fitness: no fitness assigned yet.
var UnevaluatedFitness = Fitness{}

// EvaluatedFitness wraps a real fitness value.
func EvaluatedFitness(value float64) Fitness {
	return Fitness{ok: true, value: value}
}

// IsEvaluated reports whether this Fitness carries a value.
func (f Fitness) IsEvaluated() bool { return f.ok }

// Value returns the wrapped fitness value. Calling it on an unevaluated
// Fitness returns 0; callers should check IsEvaluated first.
func (f Fitness) Value() float64 {
	if !f.ok {
		return 0
	}
	return f.value
}

// String implements fmt.Stringer.
func (f Fitness) String() string {
	if !f.ok {
		return "unevaluated"
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Individual is a genotype paired with its fitness. An individual is
// evaluated iff its fitness is Evaluated.
type Individual struct {
	Genotype Genotype
	Fitness  Fitness
}

// New constructs an unevaluated Individual for genotype.
func New(genotype Genotype) Individual {
	return Individual{Genotype: genotype, Fitness: UnevaluatedFitness}
}

// IsEvaluated reports whether the individual has a real fitness value.
func (ind Individual) IsEvaluated() bool { return ind.Fitness.IsEvaluated() }

// Verify reports whether the individual's genotype verifies and the
// individual is evaluated.
func (ind Individual) Verify() bool {
	return ind.Genotype.Verify() && ind.IsEvaluated()
}

// Equal reports whether other has an equal genotype. Fitness is not part
// of identity.
func (ind Individual) Equal(other Individual) bool {
	return ind.Genotype.Equal(other.Genotype)
}

// WithFitness returns a copy of the individual carrying the given fitness.
func (ind Individual) WithFitness(f Fitness) Individual {
	return Individual{Genotype: ind.Genotype, Fitness: f}
}

// WithGenotype returns a copy of the individual carrying the given genotype
// and reset to unevaluated — any change to genetic material invalidates a
// previously computed fitness.
func (ind Individual) WithGenotype(g Genotype) Individual {
	return Individual{Genotype: g, Fitness: UnevaluatedFitness}
}

// String renders the individual as its genotype and fitness.
func (ind Individual) String() string {
	return ind.Genotype.String() + " -> " + ind.Fitness.String()
}
