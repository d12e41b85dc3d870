package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
	}{
		{"invalid input", KindInvalidInput, "invalid_input"},
		{"division by zero", KindDivisionByZero, "division_by_zero"},
		{"overflow", KindOverflow, "overflow"},
		{"convergence failed", KindConvergenceFailed, "convergence_failed"},
		{"unknown", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("principal", -100.0, "principal must be positive")

	assert.Equal(t, KindInvalidInput, err.Kind)
	assert.Equal(t, "principal", err.Field)
	assert.Equal(t, -100.0, err.Value)
	assert.Contains(t, err.Error(), "invalid_input")
	assert.Contains(t, err.Error(), "principal must be positive")
}

func TestInvalidInputf(t *testing.T) {
	err := InvalidInputf("rate", 1.5, "rate must be below %.0f%%", 100.0)
	assert.Equal(t, "invalid_input: rate must be below 100%", err.Error())
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		matches  bool
	}{
		{"invalid input matches", InvalidInput("x", 0.0, "x must be positive"), ErrInvalidInput, true},
		{"division by zero matches", DivisionByZero("total weight"), ErrDivisionByZero, true},
		{"overflow matches", Overflow("multiply", 1e308), ErrOverflow, true},
		{"convergence matches", ConvergenceFailed("irr", 1000), ErrConvergenceFailed, true},
		{"kinds do not cross-match", DivisionByZero("divisor"), ErrInvalidInput, false},
		{"overflow is not convergence", Overflow("power", 2.0), ErrConvergenceFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, stderrors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestDivisionByZeroMessage(t *testing.T) {
	err := DivisionByZero("equity plus debt")
	assert.Contains(t, err.Error(), "equity plus debt evaluated to zero")
}

func TestConvergenceFailedCarriesIterations(t *testing.T) {
	err := ConvergenceFailed("irr", 1000)
	assert.Equal(t, 1000, err.Value)
	assert.Contains(t, err.Error(), "1000 iterations")
}
