// Package investment implements investment analysis: NPV, DCF, payback
// period, ROI, CAPM, and an iterative IRR solver.
package investment

import (
	"math"

	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// NPV computes net present value: -investment + sum of CF_i/(1+r)^i
// for i = 1..N. The cash-flow series is the future periods only; the
// initial investment is passed separately and must be positive.
//
// Each cash flow is validated finite, matching DCF. The original
// implementation skipped per-flow validation here; the behaviors are
// unified so a NaN flow cannot slip into the sum.
func NPV(initialInvestment float64, cashFlows []float64, discountRate float64) (float64, error) {
	if err := safemath.ValidatePositive(initialInvestment, "initial investment"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(discountRate, "discount rate"); err != nil {
		return 0, err
	}
	if len(cashFlows) == 0 {
		return 0, ferrors.InvalidInput("cash flows", nil, "cash flows cannot be empty")
	}

	npv := -initialInvestment
	for year, cashFlow := range cashFlows {
		if err := safemath.ValidateFinite(cashFlow, "cash flow"); err != nil {
			return 0, ferrors.InvalidInputf("cash flow", cashFlow,
				"cash flow at year %d is invalid", year+1)
		}
		npv += cashFlow / math.Pow(1+discountRate, float64(year+1))
	}
	return npv, nil
}

// DCF computes the discounted value of a cash-flow series without an
// initial-investment term. The discount rate must be greater than -1.
func DCF(cashFlows []float64, discountRate float64) (float64, error) {
	if err := safemath.ValidateFinite(discountRate, "discount rate"); err != nil {
		return 0, err
	}
	if discountRate <= -1.0 {
		return 0, ferrors.InvalidInput("discount rate", discountRate,
			"discount rate must be greater than -1")
	}
	if len(cashFlows) == 0 {
		return 0, ferrors.InvalidInput("cash flows", nil, "cash flows cannot be empty")
	}

	var dcf float64
	for year, cashFlow := range cashFlows {
		if err := safemath.ValidateFinite(cashFlow, "cash flow"); err != nil {
			return 0, ferrors.InvalidInputf("cash flow", cashFlow,
				"cash flow at year %d is invalid", year+1)
		}
		dcf += cashFlow / math.Pow(1+discountRate, float64(year+1))
	}
	return dcf, nil
}

// PaybackPeriod accumulates cash flows period by period and returns the
// fractional period at which the cumulative inflow recovers the initial
// cost, interpolating linearly within the crossing period. The second
// return value is false when the series is exhausted without recovering
// the cost.
func PaybackPeriod(initialCost float64, cashFlows []float64) (float64, bool, error) {
	if err := safemath.ValidatePositive(initialCost, "initial cost"); err != nil {
		return 0, false, err
	}
	if len(cashFlows) == 0 {
		return 0, false, ferrors.InvalidInput("cash flows", nil, "cash flows cannot be empty")
	}

	var cumulative float64
	for year, cashFlow := range cashFlows {
		if err := safemath.ValidateFinite(cashFlow, "cash flow"); err != nil {
			return 0, false, ferrors.InvalidInputf("cash flow", cashFlow,
				"cash flow at year %d is invalid", year+1)
		}

		cumulative += cashFlow
		if cumulative >= initialCost {
			previousCumulative := cumulative - cashFlow
			remaining := initialCost - previousCumulative
			fraction := remaining / cashFlow
			return float64(year) + fraction + 1.0, true, nil
		}
	}
	return 0, false, nil
}

// ROI computes (net profit / cost) x 100. Net profit may be negative.
func ROI(netProfit, costOfInvestment float64) (float64, error) {
	if err := safemath.ValidatePositive(costOfInvestment, "cost of investment"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateFinite(netProfit, "net profit"); err != nil {
		return 0, err
	}

	return (netProfit / costOfInvestment) * 100.0, nil
}

// CAPM computes the expected return r_f + beta x (r_m - r_f). Beta may
// be negative or zero.
func CAPM(riskFreeRate, beta, marketReturn float64) (float64, error) {
	if err := safemath.ValidateNonNegative(riskFreeRate, "risk-free rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateFinite(beta, "beta"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateFinite(marketReturn, "market return"); err != nil {
		return 0, err
	}

	return riskFreeRate + beta*(marketReturn-riskFreeRate), nil
}

// IRROptions tunes the Newton-Raphson IRR solver.
type IRROptions struct {
	Tolerance     float64
	MaxIterations int
	InitialGuess  float64
}

// DefaultIRROptions returns the standard solver settings.
func DefaultIRROptions() IRROptions {
	return IRROptions{
		Tolerance:     1e-7,
		MaxIterations: 1000,
		InitialGuess:  0.1,
	}
}

// IRR solves for the rate at which the NPV of the series is zero using
// Newton-Raphson with default options. Index 0 is the time-zero flow
// (normally the negative outlay).
func IRR(cashFlows []float64) (float64, error) {
	return IRRWith(cashFlows, DefaultIRROptions())
}

// IRRWith is IRR with explicit solver options.
func IRRWith(cashFlows []float64, opts IRROptions) (float64, error) {
	if len(cashFlows) < 2 {
		return 0, ferrors.InvalidInput("cash flows", len(cashFlows),
			"at least two cash flows are required")
	}

	var hasPositive, hasNegative bool
	for year, cashFlow := range cashFlows {
		if err := safemath.ValidateFinite(cashFlow, "cash flow"); err != nil {
			return 0, ferrors.InvalidInputf("cash flow", cashFlow,
				"cash flow at year %d is invalid", year)
		}
		if cashFlow > 0 {
			hasPositive = true
		}
		if cashFlow < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, ferrors.InvalidInput("cash flows", nil,
			"cash flows must contain at least one inflow and one outflow")
	}

	rate := opts.InitialGuess
	for i := 0; i < opts.MaxIterations; i++ {
		value, derivative := npvAndDerivative(cashFlows, rate)

		if math.Abs(value) < opts.Tolerance {
			return rate, nil
		}
		// The derivative can vanish or oscillate for pathological
		// sign patterns; a Newton step through zero is meaningless.
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, ferrors.ConvergenceFailed("irr", i)
		}

		next := rate - value/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1.0 {
			return 0, ferrors.ConvergenceFailed("irr", i)
		}
		rate = next
	}
	return 0, ferrors.ConvergenceFailed("irr", opts.MaxIterations)
}

// npvAndDerivative evaluates the time-zero-based NPV and its derivative
// with respect to the rate.
func npvAndDerivative(cashFlows []float64, rate float64) (float64, float64) {
	var value, derivative float64
	for i, cashFlow := range cashFlows {
		t := float64(i)
		value += cashFlow / math.Pow(1+rate, t)
		if i > 0 {
			derivative -= t * cashFlow / math.Pow(1+rate, t+1)
		}
	}
	return value, derivative
}
