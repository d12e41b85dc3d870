// Package loan implements loan payment, mortgage, amortization
// schedule, break-even, and depreciation calculations. Annual interest
// rates here are percentages (5.0 = 5%), matching the usual quoting of
// loan products; the monthly rate is derived internally.
package loan

import (
	"math"
	"time"

	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// Clock supplies the current date for payoff-date calculations. The
// core never reads the system clock directly so payoff math stays
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Payment computes the monthly payment M = P*r / (1 - (1+r)^-n) where
// r is the monthly rate and n the number of monthly payments. A zero
// rate degenerates to straight-line division.
func Payment(principal, annualInterestRate, termYears float64) (float64, error) {
	if err := safemath.ValidatePositive(principal, "principal"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(annualInterestRate, "annual interest rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(termYears, "loan term"); err != nil {
		return 0, err
	}

	monthlyRate := annualInterestRate / 100.0 / 12.0
	numPayments := termYears * 12.0

	if monthlyRate == 0 {
		return principal / numPayments, nil
	}

	// The exponent here legitimately reaches -360 and beyond, so the
	// policy-guarded power does not apply; inputs are already bounded.
	power := math.Pow(1+monthlyRate, -numPayments)
	return safemath.SafeDivide(principal*monthlyRate, 1-power)
}

// MortgageDetails bundles the derived figures for a mortgage.
type MortgageDetails struct {
	MonthlyPayment float64
	TotalInterest  float64
	PayoffDate     time.Time
}

// Mortgage computes monthly payment, total interest over the term, and
// the payoff date relative to the clock's current date.
func Mortgage(loanAmount, annualInterestRate float64, termYears int, clock Clock) (MortgageDetails, error) {
	if err := safemath.ValidatePositive(loanAmount, "loan amount"); err != nil {
		return MortgageDetails{}, err
	}
	if err := safemath.ValidatePositive(annualInterestRate, "annual interest rate"); err != nil {
		return MortgageDetails{}, err
	}
	if termYears <= 0 {
		return MortgageDetails{}, ferrors.InvalidInput("term", termYears, "term must be positive")
	}

	monthlyPayment, err := Payment(loanAmount, annualInterestRate, float64(termYears))
	if err != nil {
		return MortgageDetails{}, err
	}

	totalPayments := termYears * 12
	totalPaid := monthlyPayment * float64(totalPayments)

	return MortgageDetails{
		MonthlyPayment: monthlyPayment,
		TotalInterest:  totalPaid - loanAmount,
		PayoffDate:     clock.Now().AddDate(0, totalPayments, 0),
	}, nil
}

// BreakEvenUnits computes fixed costs divided by the per-unit
// contribution margin. A zero or negative margin is rejected rather
// than reported as infinite units.
func BreakEvenUnits(fixedCosts, variableCostPerUnit, pricePerUnit float64) (float64, error) {
	if err := safemath.ValidatePositive(fixedCosts, "fixed costs"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(variableCostPerUnit, "variable cost per unit"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(pricePerUnit, "price per unit"); err != nil {
		return 0, err
	}
	if pricePerUnit <= variableCostPerUnit {
		return 0, ferrors.InvalidInput("price per unit", pricePerUnit,
			"price per unit must be greater than variable cost per unit")
	}

	return fixedCosts / (pricePerUnit - variableCostPerUnit), nil
}

// BreakEvenAnalysis returns break-even units and the revenue required
// to reach them.
func BreakEvenAnalysis(fixedCosts, variableCostPerUnit, pricePerUnit float64) (units, revenue float64, err error) {
	units, err = BreakEvenUnits(fixedCosts, variableCostPerUnit, pricePerUnit)
	if err != nil {
		return 0, 0, err
	}
	return units, units * pricePerUnit, nil
}
