package selection_test

import (
	"testing"

	"github.com/inlined/xkcd"

	"github.com/inlined/evolve/prng"
	"github.com/inlined/evolve/ranking"
	"github.com/inlined/evolve/selection"
)

func TestRandomSelectorIgnoresFitness(t *testing.T) {
	pop := individualsWithFitness(1, 2, 3)
	g := &prng.Gateway{Rand: xkcd.Rand(0, 0, 2)}
	out, err := selection.RandomSelector{}.Select(g, pop, 3, ranking.FitnessMinRanker{})
	if err != nil {
		t.Fatalf("Select() returned error: %v", err)
	}
	want := []float64{1, 1, 3}
	for i, w := range want {
		if out[i].Fitness.Value() != w {
			t.Fatalf("out[%d].Fitness = %v; want %v", i, out[i].Fitness.Value(), w)
		}
	}
}

func TestRandomSelectorString(t *testing.T) {
	if got := (selection.RandomSelector{}).String(); got != "RandomSelector" {
		t.Fatalf("String() = %q", got)
	}
}
