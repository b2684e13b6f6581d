// Package evolve provides a swappable-component evolutionary computation
// core: genetic data types, selection, crossover, mutation, termination
// limits, and the engine that drives a generational evolve loop over them.
//
// The subpackages are independently usable; engine assembles them into a
// runnable Engine through Builder.
package evolve
