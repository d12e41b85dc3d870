package loan

import (
	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// AmortizationPayment is a single month in an amortization schedule.
type AmortizationPayment struct {
	Month            int
	PrincipalPayment float64
	InterestPayment  float64
	RemainingBalance float64
}

// AmortizationSchedule generates the full month-by-month schedule for a
// loan as an eager slice of termYears x 12 entries, since consumers
// need random access (first payment, every 12th, last).
//
// Each month pays interest on the running balance first; the remainder
// of the fixed payment reduces principal. On the final month the
// balance is forced to exactly zero, absorbing the rounding drift a
// 360-iteration loop accumulates.
func AmortizationSchedule(loanAmount, annualInterestRate float64, termYears int) ([]AmortizationPayment, error) {
	if err := safemath.ValidatePositive(loanAmount, "loan amount"); err != nil {
		return nil, err
	}
	if err := safemath.ValidatePositive(annualInterestRate, "annual interest rate"); err != nil {
		return nil, err
	}
	if termYears <= 0 {
		return nil, ferrors.InvalidInput("term", termYears, "term must be positive")
	}

	monthlyPayment, err := Payment(loanAmount, annualInterestRate, float64(termYears))
	if err != nil {
		return nil, err
	}

	monthlyRate := annualInterestRate / 100.0 / 12.0
	totalPayments := termYears * 12

	schedule := make([]AmortizationPayment, 0, totalPayments)
	balance := loanAmount

	for month := 1; month <= totalPayments; month++ {
		interestPayment := balance * monthlyRate
		principalPayment := monthlyPayment - interestPayment
		balance -= principalPayment

		if month == totalPayments {
			balance = 0
		}

		schedule = append(schedule, AmortizationPayment{
			Month:            month,
			PrincipalPayment: principalPayment,
			InterestPayment:  interestPayment,
			RemainingBalance: balance,
		})
	}

	return schedule, nil
}
