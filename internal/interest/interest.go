// Package interest implements simple and compound interest together
// with present- and future-value discounting. Rates are decimal
// fractions (0.05 = 5%); callers convert percentages before calling.
package interest

import (
	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// SimpleInterest computes Interest = Principal x Rate x Time.
func SimpleInterest(principal, rate, time float64) (float64, error) {
	if err := safemath.ValidatePositive(principal, "principal"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(rate, "interest rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(time, "time"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateCalculationRange(principal, "principal"); err != nil {
		return 0, err
	}

	temp, err := safemath.SafeMultiply(principal, rate)
	if err != nil {
		return 0, err
	}
	return safemath.SafeMultiply(temp, time)
}

// CompoundInterest computes the accumulated amount A = P(1 + r/n)^(nt)
// where n is the compounding frequency per year and t the number of
// years.
func CompoundInterest(principal, rate float64, compoundFrequency, years int) (float64, error) {
	if err := safemath.ValidatePositive(principal, "principal"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(rate, "interest rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateCalculationRange(principal, "principal"); err != nil {
		return 0, err
	}
	if compoundFrequency <= 0 {
		return 0, ferrors.InvalidInput("compound frequency", compoundFrequency,
			"compound frequency must be positive")
	}
	if years < 0 {
		return 0, ferrors.InvalidInput("years", years, "years must be non-negative")
	}

	ratePerPeriod := rate / float64(compoundFrequency)
	totalPeriods := float64(compoundFrequency * years)

	power, err := safemath.SafePower(1+ratePerPeriod, totalPeriods)
	if err != nil {
		return 0, err
	}
	return safemath.SafeMultiply(principal, power)
}

// PresentValue computes PV = FV / (1+r)^t. Discount rates of 100% or
// more are rejected as out of domain.
func PresentValue(futureValue, rate, time float64) (float64, error) {
	if err := safemath.ValidatePositive(futureValue, "future value"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(rate, "discount rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(time, "time"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateCalculationRange(futureValue, "future value"); err != nil {
		return 0, err
	}
	if rate >= 1.0 {
		return 0, ferrors.InvalidInput("discount rate", rate,
			"discount rate should be less than 100%")
	}

	power, err := safemath.SafePower(1+rate, time)
	if err != nil {
		return 0, err
	}
	return safemath.SafeDivide(futureValue, power)
}

// FutureValue computes FV = PV x (1+r)^t.
func FutureValue(presentValue, rate, time float64) (float64, error) {
	if err := safemath.ValidatePositive(presentValue, "present value"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(rate, "interest rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(time, "time"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateCalculationRange(presentValue, "present value"); err != nil {
		return 0, err
	}

	power, err := safemath.SafePower(1+rate, time)
	if err != nil {
		return 0, err
	}
	return safemath.SafeMultiply(presentValue, power)
}
