package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "fincalc/internal/errors"
)

func TestCheckRequest(t *testing.T) {
	type req struct {
		Principal float64 `validate:"gt=0" flag:"principal"`
		Years     int     `validate:"gt=0" flag:"years"`
	}

	t.Run("valid request passes", func(t *testing.T) {
		err := checkRequest(req{Principal: 1000, Years: 5})
		assert.NoError(t, err)
	})

	t.Run("missing field reports flag name", func(t *testing.T) {
		err := checkRequest(req{Years: 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, ferrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "--principal must be greater than 0")
	})

	t.Run("missing slice reports flag name", func(t *testing.T) {
		type sliceReq struct {
			CashFlows []float64 `validate:"required,min=2" flag:"cash-flows"`
		}
		err := checkRequest(sliceReq{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--cash-flows is required")
	})

	t.Run("slice minimum", func(t *testing.T) {
		type sliceReq struct {
			CashFlows []float64 `validate:"required,min=2" flag:"cash-flows"`
		}
		err := checkRequest(sliceReq{CashFlows: []float64{100}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--cash-flows needs at least 2 values")
	})
}

// Zero is a legal value wherever the core accepts it: a zero rate
// selects the straight-line loan branch, beta and discount rate may be
// zero, and a zero cash flow is just a flat year. Request validation
// must not reject any of these as missing.
func TestCheckRequestAcceptsLegalZeroValues(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
	}{
		{
			name: "zero-rate loan",
			req:  loanPaymentRequest{Principal: 120000, Rate: 0, TermYears: 10},
		},
		{
			name: "zero-rate simple interest",
			req:  simpleInterestRequest{Principal: 1000, Rate: 0, Time: 2},
		},
		{
			name: "zero beta",
			req:  capmRequest{RiskFreeRate: 0.03, Beta: 0, MarketReturn: 0.08},
		},
		{
			name: "zero discount rate",
			req:  npvRequest{InitialInvestment: 500, CashFlow: 100, Lifespan: 5, DiscountRate: 0},
		},
		{
			name: "zero net profit",
			req:  roiRequest{NetProfit: 0, CostOfInvestment: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, checkRequest(tt.req))
		})
	}
}

func TestAmortizationCommandExportsSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")

	rootCmd.SetArgs([]string{
		"amortization",
		"--loan-amount", "100000",
		"--rate", "5",
		"--term", "30",
		"--export", path,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Month,Principal Payment,Interest Payment,Remaining Balance")
}

func TestCommandRejectsMissingFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"interest"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--principal must be greater than 0")
}

func TestLoanPaymentCommandAcceptsZeroRate(t *testing.T) {
	rootCmd.SetArgs([]string{
		"loan-payment",
		"--principal", "120000",
		"--rate", "0",
		"--term", "10",
	})
	require.NoError(t, rootCmd.Execute())
}
