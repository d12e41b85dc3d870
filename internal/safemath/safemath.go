// Package safemath wraps raw float64 arithmetic so overflow, NaN
// production, and division by zero surface as typed errors instead of
// propagating silently through a calculation chain.
package safemath

import (
	"math"

	ferrors "fincalc/internal/errors"
)

// Policy cutoffs. These are deliberate domain guards, not IEEE-754
// limits: the range bound keeps chained multiplications away from
// float overflow, and the exponent bound rejects exponents too large
// to be meaningful in a financial formula.
const (
	DefaultMaxCalculationRange = 1e15
	DefaultMaxExponent         = 100
)

// Policy carries the safety layer's tunable cutoffs. The zero value is
// not useful; use DefaultPolicy or build one from configuration.
type Policy struct {
	MaxCalculationRange float64
	MaxExponent         float64
}

var defaultPolicy = Policy{
	MaxCalculationRange: DefaultMaxCalculationRange,
	MaxExponent:         DefaultMaxExponent,
}

// DefaultPolicy returns the policy applied by the package-level
// arithmetic functions.
func DefaultPolicy() Policy {
	return defaultPolicy
}

// SetDefaultPolicy replaces the policy applied by the package-level
// arithmetic functions. Call it once at startup, before calculations
// begin.
func SetDefaultPolicy(p Policy) {
	defaultPolicy = p
}

// ValidatePositive fails if value is non-finite or not strictly positive.
func ValidatePositive(value float64, name string) error {
	if err := ValidateFinite(value, name); err != nil {
		return err
	}
	if value <= 0 {
		return ferrors.InvalidInputf(name, value, "%s must be positive: %g", name, value)
	}
	return nil
}

// ValidateNonNegative fails if value is non-finite or negative.
func ValidateNonNegative(value float64, name string) error {
	if err := ValidateFinite(value, name); err != nil {
		return err
	}
	if value < 0 {
		return ferrors.InvalidInputf(name, value, "%s must be non-negative: %g", name, value)
	}
	return nil
}

// ValidateFinite fails if value is NaN or infinite.
func ValidateFinite(value float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ferrors.InvalidInputf(name, value, "%s must be a valid number: %g", name, value)
	}
	return nil
}

// ValidateCalculationRange fails if |value| exceeds the policy's
// magnitude bound, preventing later multiplications from reaching
// floating-point overflow.
func (p Policy) ValidateCalculationRange(value float64, name string) error {
	if err := ValidateFinite(value, name); err != nil {
		return err
	}
	if math.Abs(value) > p.MaxCalculationRange {
		return ferrors.InvalidInputf(name, value,
			"%s magnitude exceeds calculation range %g: %g", name, p.MaxCalculationRange, value)
	}
	return nil
}

// ValidateCalculationRange applies the default policy.
func ValidateCalculationRange(value float64, name string) error {
	return DefaultPolicy().ValidateCalculationRange(value, name)
}

// SafeMultiply multiplies two finite operands and verifies the result
// is still finite.
func (p Policy) SafeMultiply(a, b float64) (float64, error) {
	if err := ValidateFinite(a, "multiplicand"); err != nil {
		return 0, err
	}
	if err := ValidateFinite(b, "multiplier"); err != nil {
		return 0, err
	}

	result := a * b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ferrors.Overflow("multiplication", result)
	}
	return result, nil
}

// SafeMultiply applies the default policy.
func SafeMultiply(a, b float64) (float64, error) {
	return DefaultPolicy().SafeMultiply(a, b)
}

// SafeDivide divides two finite operands, rejecting a zero divisor and
// verifying the result is finite.
func (p Policy) SafeDivide(a, b float64) (float64, error) {
	if err := ValidateFinite(a, "dividend"); err != nil {
		return 0, err
	}
	if err := ValidateFinite(b, "divisor"); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ferrors.DivisionByZero("divisor")
	}

	result := a / b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ferrors.Overflow("division", result)
	}
	return result, nil
}

// SafeDivide applies the default policy.
func SafeDivide(a, b float64) (float64, error) {
	return DefaultPolicy().SafeDivide(a, b)
}

// SafePower raises base to exponent. Exponents beyond the policy bound
// are rejected outright; a finite computation that still lands on
// NaN/Inf is reported as overflow.
func (p Policy) SafePower(base, exponent float64) (float64, error) {
	if err := ValidateFinite(base, "base"); err != nil {
		return 0, err
	}
	if err := ValidateFinite(exponent, "exponent"); err != nil {
		return 0, err
	}
	if math.Abs(exponent) > p.MaxExponent {
		return 0, ferrors.InvalidInputf("exponent", exponent,
			"exponent magnitude exceeds %g: %g", p.MaxExponent, exponent)
	}

	result := math.Pow(base, exponent)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ferrors.Overflow("exponentiation", result)
	}
	return result, nil
}

// SafePower applies the default policy.
func SafePower(base, exponent float64) (float64, error) {
	return DefaultPolicy().SafePower(base, exponent)
}
