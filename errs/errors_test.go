package errs_test

import (
	"errors"
	"testing"

	"github.com/inlined/evolve/errs"
)

func TestConfigErrorUnwraps(t *testing.T) {
	err := errs.NewConfigError("populationSize must be > 0", errs.ErrNegativeCount)
	if !errors.Is(err, errs.ErrNegativeCount) {
		t.Fatalf("errors.Is() = false; want true for wrapped ErrNegativeCount")
	}
	var cfg *errs.ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("errors.As() = false; want true for *errs.ConfigError")
	}
}

func TestTaxonomyMembersDoNotCrossMatch(t *testing.T) {
	cfg := errs.NewConfigError("bad survival rate", errs.ErrRateOutOfRange)
	var op *errs.OperatorError
	if errors.As(cfg, &op) {
		t.Fatalf("errors.As() = true; a ConfigError must not satisfy *errs.OperatorError")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := errs.NewSelectionError("TournamentSelector", errs.ErrEmptyPopulation)
	if got := err.Error(); got == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestNilCauseIsTolerated(t *testing.T) {
	err := errs.NewEvaluationError("fitness function panicked", nil)
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string for nil cause")
	}
	if errors.Unwrap(err) != nil {
		t.Fatalf("Unwrap() = %v; want nil", errors.Unwrap(err))
	}
}
