package safemath

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "fincalc/internal/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 1.0, false},
		{"small positive", 0.1, false},
		{"zero", 0.0, true},
		{"negative", -1.0, true},
		{"NaN", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive(tt.value, "test")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, ferrors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, ValidateNonNegative(1.0, "test"))
	assert.NoError(t, ValidateNonNegative(0.0, "test"))
	assert.Error(t, ValidateNonNegative(-1.0, "test"))
	assert.Error(t, ValidateNonNegative(math.NaN(), "test"))
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, ValidateFinite(1.0, "test"))
	assert.NoError(t, ValidateFinite(0.0, "test"))
	assert.NoError(t, ValidateFinite(-1.0, "test"))
	assert.Error(t, ValidateFinite(math.NaN(), "test"))
	assert.Error(t, ValidateFinite(math.Inf(1), "test"))
}

func TestValidateCalculationRange(t *testing.T) {
	assert.NoError(t, ValidateCalculationRange(1e14, "amount"))
	assert.NoError(t, ValidateCalculationRange(-1e14, "amount"))
	assert.NoError(t, ValidateCalculationRange(1e15, "amount"))
	assert.Error(t, ValidateCalculationRange(1.1e15, "amount"))
	assert.Error(t, ValidateCalculationRange(-1.1e15, "amount"))
	assert.Error(t, ValidateCalculationRange(math.Inf(1), "amount"))
}

func TestValidateCalculationRangeCustomPolicy(t *testing.T) {
	p := Policy{MaxCalculationRange: 1e6, MaxExponent: 10}
	assert.NoError(t, p.ValidateCalculationRange(1e6, "amount"))
	assert.Error(t, p.ValidateCalculationRange(2e6, "amount"))
}

func TestSafeMultiply(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		result, err := SafeMultiply(3.0, 4.0)
		require.NoError(t, err)
		assert.Equal(t, 12.0, result)
	})

	t.Run("true overflow", func(t *testing.T) {
		_, err := SafeMultiply(1e308, 2.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrOverflow))
	})

	t.Run("NaN operand", func(t *testing.T) {
		_, err := SafeMultiply(math.NaN(), 2.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrInvalidInput))
	})

	t.Run("infinite operand", func(t *testing.T) {
		_, err := SafeMultiply(2.0, math.Inf(1))
		assert.Error(t, err)
	})
}

func TestSafeDivide(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		result, err := SafeDivide(10.0, 4.0)
		require.NoError(t, err)
		assert.Equal(t, 2.5, result)
	})

	t.Run("zero divisor", func(t *testing.T) {
		for _, dividend := range []float64{1.0, -1.0, 0.0, 1e15} {
			_, err := SafeDivide(dividend, 0.0)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, ferrors.ErrDivisionByZero))
		}
	})

	t.Run("NaN operand", func(t *testing.T) {
		_, err := SafeDivide(math.NaN(), 2.0)
		assert.Error(t, err)
	})
}

func TestSafePower(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		result, err := SafePower(2.0, 10.0)
		require.NoError(t, err)
		assert.Equal(t, 1024.0, result)
	})

	t.Run("fractional exponent", func(t *testing.T) {
		result, err := SafePower(1.05, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.1025, result, 1e-10)
	})

	t.Run("exponent policy guard", func(t *testing.T) {
		_, err := SafePower(2.0, 1000.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrInvalidInput))

		_, err = SafePower(2.0, -1000.0)
		assert.Error(t, err)
	})

	t.Run("exponent at policy bound", func(t *testing.T) {
		_, err := SafePower(1.01, 100.0)
		assert.NoError(t, err)
	})

	t.Run("overflow within exponent bound", func(t *testing.T) {
		_, err := SafePower(1e308, 2.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrOverflow))
	})

	t.Run("custom policy bound", func(t *testing.T) {
		p := Policy{MaxCalculationRange: 1e15, MaxExponent: 5}
		_, err := p.SafePower(2.0, 6.0)
		assert.Error(t, err)
		_, err = p.SafePower(2.0, 5.0)
		assert.NoError(t, err)
	})
}

func TestSetDefaultPolicy(t *testing.T) {
	original := DefaultPolicy()
	defer SetDefaultPolicy(original)

	SetDefaultPolicy(Policy{MaxCalculationRange: 1e15, MaxExponent: 5})
	_, err := SafePower(2.0, 6.0)
	assert.Error(t, err)

	SetDefaultPolicy(original)
	_, err = SafePower(2.0, 6.0)
	assert.NoError(t, err)
}
