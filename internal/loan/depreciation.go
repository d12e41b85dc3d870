package loan

import (
	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// DepreciationMethod selects the depreciation formula.
type DepreciationMethod string

const (
	// StraightLine spreads the depreciable base evenly over the life.
	StraightLine DepreciationMethod = "straight-line"
	// DoubleDecliningBalance applies twice the straight-line rate to
	// the declining book value, floored at the salvage value.
	DoubleDecliningBalance DepreciationMethod = "double-declining-balance"
)

// DepreciationYear is one year of a depreciation schedule.
type DepreciationYear struct {
	Year      int
	Expense   float64
	BookValue float64
}

// DepreciationSchedule computes the year-by-year depreciation of an
// asset down to its salvage value.
func DepreciationSchedule(initialValue, salvageValue float64, usefulLifeYears int, method DepreciationMethod) ([]DepreciationYear, error) {
	if err := safemath.ValidatePositive(initialValue, "initial value"); err != nil {
		return nil, err
	}
	if err := safemath.ValidateNonNegative(salvageValue, "salvage value"); err != nil {
		return nil, err
	}
	if salvageValue > initialValue {
		return nil, ferrors.InvalidInput("salvage value", salvageValue,
			"salvage value cannot exceed initial value")
	}
	if usefulLifeYears <= 0 {
		return nil, ferrors.InvalidInput("useful life", usefulLifeYears,
			"useful life must be positive")
	}

	switch method {
	case StraightLine:
		return straightLineSchedule(initialValue, salvageValue, usefulLifeYears), nil
	case DoubleDecliningBalance:
		return doubleDecliningSchedule(initialValue, salvageValue, usefulLifeYears), nil
	default:
		return nil, ferrors.InvalidInputf("depreciation method", string(method),
			"unknown depreciation method %q", method)
	}
}

func straightLineSchedule(initialValue, salvageValue float64, life int) []DepreciationYear {
	annual := (initialValue - salvageValue) / float64(life)

	schedule := make([]DepreciationYear, 0, life)
	bookValue := initialValue
	for year := 1; year <= life; year++ {
		bookValue -= annual
		if year == life {
			bookValue = salvageValue
		}
		schedule = append(schedule, DepreciationYear{
			Year:      year,
			Expense:   annual,
			BookValue: bookValue,
		})
	}
	return schedule
}

func doubleDecliningSchedule(initialValue, salvageValue float64, life int) []DepreciationYear {
	rate := 2.0 / float64(life)

	schedule := make([]DepreciationYear, 0, life)
	bookValue := initialValue
	for year := 1; year <= life; year++ {
		expense := bookValue * rate
		// Never depreciate below the salvage value.
		if bookValue-expense < salvageValue {
			expense = bookValue - salvageValue
		}
		bookValue -= expense
		schedule = append(schedule, DepreciationYear{
			Year:      year,
			Expense:   expense,
			BookValue: bookValue,
		})
	}
	return schedule
}
