package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins Now for deterministic payoff-date assertions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestPayment(t *testing.T) {
	t.Run("standard 30-year mortgage", func(t *testing.T) {
		payment, err := Payment(100000.0, 5.0, 30.0)
		require.NoError(t, err)
		assert.InDelta(t, 536.82, payment, 0.01)
	})

	t.Run("zero interest is straight-line", func(t *testing.T) {
		payment, err := Payment(120000.0, 0.0, 10.0)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, payment)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := Payment(0.0, 5.0, 30.0)
		assert.Error(t, err)
		_, err = Payment(100000.0, -5.0, 30.0)
		assert.Error(t, err)
		_, err = Payment(100000.0, 5.0, 0.0)
		assert.Error(t, err)
	})
}

func TestMortgage(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}

	t.Run("details", func(t *testing.T) {
		details, err := Mortgage(200000.0, 4.5, 30, clock)
		require.NoError(t, err)

		assert.InDelta(t, 1013.37, details.MonthlyPayment, 0.01)
		assert.Greater(t, details.TotalInterest, 0.0)
		assert.Equal(t, time.Date(2055, 3, 15, 0, 0, 0, 0, time.UTC), details.PayoffDate)
	})

	t.Run("payoff date follows the injected clock", func(t *testing.T) {
		later := fixedClock{now: time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)}
		details, err := Mortgage(100000.0, 5.0, 15, later)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2045, 7, 1, 0, 0, 0, 0, time.UTC), details.PayoffDate)
	})

	t.Run("invalid term", func(t *testing.T) {
		_, err := Mortgage(200000.0, 4.5, 0, clock)
		assert.Error(t, err)
	})

	t.Run("zero rate rejected for mortgage", func(t *testing.T) {
		_, err := Mortgage(200000.0, 0.0, 30, clock)
		assert.Error(t, err)
	})
}

func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(100000.0, 5.0, 30)
	require.NoError(t, err)

	t.Run("length", func(t *testing.T) {
		assert.Len(t, schedule, 360)
	})

	t.Run("months are 1-based and sequential", func(t *testing.T) {
		assert.Equal(t, 1, schedule[0].Month)
		assert.Equal(t, 360, schedule[359].Month)
	})

	t.Run("first payment is interest-heavy", func(t *testing.T) {
		assert.Greater(t, schedule[0].InterestPayment, schedule[0].PrincipalPayment)
	})

	t.Run("last payment is principal-heavy", func(t *testing.T) {
		last := schedule[len(schedule)-1]
		assert.Greater(t, last.PrincipalPayment, last.InterestPayment)
	})

	t.Run("balance strictly decreases to zero", func(t *testing.T) {
		prev := 100000.0
		for _, p := range schedule {
			assert.Less(t, p.RemainingBalance, prev, "balance must decrease at month %d", p.Month)
			prev = p.RemainingBalance
		}
		assert.Equal(t, 0.0, schedule[len(schedule)-1].RemainingBalance)
	})

	t.Run("payment split is consistent", func(t *testing.T) {
		payment, err := Payment(100000.0, 5.0, 30.0)
		require.NoError(t, err)
		for _, p := range schedule[:12] {
			assert.InDelta(t, payment, p.PrincipalPayment+p.InterestPayment, 1e-9)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := AmortizationSchedule(0.0, 5.0, 30)
		assert.Error(t, err)
		_, err = AmortizationSchedule(100000.0, 0.0, 30)
		assert.Error(t, err)
		_, err = AmortizationSchedule(100000.0, 5.0, 0)
		assert.Error(t, err)
	})
}

func TestBreakEvenUnits(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		units, err := BreakEvenUnits(1000.0, 10.0, 20.0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, units)
	})

	t.Run("zero margin rejected", func(t *testing.T) {
		_, err := BreakEvenUnits(1000.0, 20.0, 20.0)
		assert.Error(t, err)
	})

	t.Run("negative margin rejected", func(t *testing.T) {
		_, err := BreakEvenUnits(1000.0, 25.0, 20.0)
		assert.Error(t, err)
	})
}

func TestBreakEvenAnalysis(t *testing.T) {
	units, revenue, err := BreakEvenAnalysis(5000.0, 10.0, 20.0)
	require.NoError(t, err)
	assert.Equal(t, 500.0, units)
	assert.Equal(t, 10000.0, revenue)
}

func TestDepreciationSchedule(t *testing.T) {
	t.Run("straight line", func(t *testing.T) {
		schedule, err := DepreciationSchedule(10000.0, 1000.0, 5, StraightLine)
		require.NoError(t, err)
		require.Len(t, schedule, 5)

		for _, year := range schedule {
			assert.InDelta(t, 1800.0, year.Expense, 1e-9)
		}
		assert.Equal(t, 1000.0, schedule[4].BookValue)
	})

	t.Run("double declining balance", func(t *testing.T) {
		schedule, err := DepreciationSchedule(10000.0, 1000.0, 5, DoubleDecliningBalance)
		require.NoError(t, err)
		require.Len(t, schedule, 5)

		// Year 1: 40% of 10000
		assert.InDelta(t, 4000.0, schedule[0].Expense, 1e-9)
		assert.InDelta(t, 6000.0, schedule[0].BookValue, 1e-9)
		// Year 2: 40% of 6000
		assert.InDelta(t, 2400.0, schedule[1].Expense, 1e-9)

		// Book value never drops below salvage.
		for _, year := range schedule {
			assert.GreaterOrEqual(t, year.BookValue, 1000.0-1e-9)
		}
		assert.InDelta(t, 1000.0, schedule[4].BookValue, 1e-9)
	})

	t.Run("salvage above cost rejected", func(t *testing.T) {
		_, err := DepreciationSchedule(1000.0, 2000.0, 5, StraightLine)
		assert.Error(t, err)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := DepreciationSchedule(10000.0, 1000.0, 5, DepreciationMethod("sum-of-years"))
		assert.Error(t, err)
	})

	t.Run("zero life rejected", func(t *testing.T) {
		_, err := DepreciationSchedule(10000.0, 1000.0, 0, StraightLine)
		assert.Error(t, err)
	})
}
