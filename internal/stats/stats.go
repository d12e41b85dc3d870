// Package stats implements the descriptive statistics used by the
// calculator: mean, median, mode, variance, standard deviation,
// probability, and weighted average. Aggregations are delegated to
// gonum's stat package once inputs pass the validation contract.
package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// DefaultModeKeyDigits is the decimal precision used to group floats
// when computing the mode. Two values that agree to this many decimal
// digits are considered the same observation; changing it changes
// which near-duplicates merge.
const DefaultModeKeyDigits = 10

// validateSeries rejects an empty series or any non-finite element,
// reporting the offending index.
func validateSeries(numbers []float64, what string) error {
	if len(numbers) == 0 {
		return ferrors.InvalidInputf("numbers", nil, "cannot calculate %s of empty dataset", what)
	}
	for i, n := range numbers {
		if err := safemath.ValidateFinite(n, "number"); err != nil {
			return ferrors.InvalidInputf("numbers", n, "invalid number at index %d: %g", i, n)
		}
	}
	return nil
}

// Mean computes the arithmetic mean.
func Mean(numbers []float64) (float64, error) {
	if err := validateSeries(numbers, "mean"); err != nil {
		return 0, err
	}
	return stat.Mean(numbers, nil), nil
}

// Median sorts a copy of the series and returns the middle element,
// or the average of the two central elements for an even count.
// Non-finite values are rejected up front so the sort comparison is
// always total.
func Median(numbers []float64) (float64, error) {
	if err := validateSeries(numbers, "median"); err != nil {
		return 0, err
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0, nil
	}
	return sorted[n/2], nil
}

// Mode returns the most frequent value in the series, grouping floats
// by a fixed-precision decimal key (DefaultModeKeyDigits). When no
// value repeats the second return is false; when several values tie
// for the maximum frequency the smallest tied value is returned.
func Mode(numbers []float64) (float64, bool, error) {
	return ModeWithPrecision(numbers, DefaultModeKeyDigits)
}

// ModeWithPrecision is Mode with an explicit grouping precision.
func ModeWithPrecision(numbers []float64, keyDigits int) (float64, bool, error) {
	if len(numbers) == 0 {
		return 0, false, nil
	}
	if err := validateSeries(numbers, "mode"); err != nil {
		return 0, false, err
	}

	type group struct {
		value float64
		count int
	}
	// String keys sidestep float hash/equality pitfalls: values equal
	// to keyDigits decimal places land in the same bucket.
	groups := make(map[string]*group, len(numbers))
	for _, n := range numbers {
		key := fmt.Sprintf("%.*f", keyDigits, n)
		if g, ok := groups[key]; ok {
			g.count++
		} else {
			groups[key] = &group{value: n, count: 1}
		}
	}

	maxCount := 0
	for _, g := range groups {
		if g.count > maxCount {
			maxCount = g.count
		}
	}
	if maxCount <= 1 {
		return 0, false, nil
	}

	var mode float64
	found := false
	for _, g := range groups {
		if g.count != maxCount {
			continue
		}
		if !found || g.value < mode {
			mode = g.value
			found = true
		}
	}
	return mode, true, nil
}

// Variance computes the population variance (squared deviations over
// N). At least two observations are required.
func Variance(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, ferrors.InvalidInput("numbers", len(numbers),
			"at least two numbers are required to calculate variance")
	}
	if err := validateSeries(numbers, "variance"); err != nil {
		return 0, err
	}
	return stat.PopVariance(numbers, nil), nil
}

// SampleVariance computes the sample variance (squared deviations over
// N-1).
func SampleVariance(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, ferrors.InvalidInput("numbers", len(numbers),
			"at least two numbers are required to calculate sample variance")
	}
	if err := validateSeries(numbers, "sample variance"); err != nil {
		return 0, err
	}
	return stat.Variance(numbers, nil), nil
}

// StandardDeviation computes the population standard deviation.
func StandardDeviation(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, ferrors.InvalidInput("numbers", len(numbers),
			"at least two numbers are required to calculate standard deviation")
	}
	if err := validateSeries(numbers, "standard deviation"); err != nil {
		return 0, err
	}
	return stat.PopStdDev(numbers, nil), nil
}

// SampleStandardDeviation computes the sample standard deviation.
func SampleStandardDeviation(numbers []float64) (float64, error) {
	if len(numbers) < 2 {
		return 0, ferrors.InvalidInput("numbers", len(numbers),
			"at least two numbers are required to calculate sample standard deviation")
	}
	if err := validateSeries(numbers, "sample standard deviation"); err != nil {
		return 0, err
	}
	return stat.StdDev(numbers, nil), nil
}

// Probability computes successes / trials.
func Probability(successes, trials int) (float64, error) {
	if trials == 0 {
		return 0, ferrors.DivisionByZero("trials")
	}
	if trials < 0 {
		return 0, ferrors.InvalidInput("trials", trials, "trials must be non-negative")
	}
	if successes < 0 {
		return 0, ferrors.InvalidInput("successes", successes, "successes must be non-negative")
	}
	if successes > trials {
		return 0, ferrors.InvalidInput("successes", successes, "successes cannot exceed trials")
	}

	return float64(successes) / float64(trials), nil
}

// WeightedAverage computes sum(value x weight) / sum(weight). The two
// series must be the same non-zero length, weights must be finite and
// non-negative, and the total weight must be non-zero.
func WeightedAverage(numbers, weights []float64) (float64, error) {
	if len(numbers) == 0 || len(weights) == 0 {
		return 0, ferrors.InvalidInput("numbers", nil, "numbers and weights cannot be empty")
	}
	if len(numbers) != len(weights) {
		return 0, ferrors.InvalidInputf("weights", len(weights),
			"numbers and weights must have the same length: %d vs %d", len(numbers), len(weights))
	}

	var totalWeight float64
	for i := range numbers {
		if err := safemath.ValidateFinite(numbers[i], "number"); err != nil {
			return 0, ferrors.InvalidInputf("numbers", numbers[i],
				"invalid number at index %d: %g", i, numbers[i])
		}
		if err := safemath.ValidateNonNegative(weights[i], "weight"); err != nil {
			return 0, ferrors.InvalidInputf("weights", weights[i],
				"invalid weight at index %d: %g", i, weights[i])
		}
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return 0, ferrors.DivisionByZero("total weight")
	}

	return stat.Mean(numbers, weights), nil
}
