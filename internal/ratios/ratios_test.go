package ratios

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "fincalc/internal/errors"
)

func TestROE(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		roe, err := ROE(1000000.0, 5000000.0)
		require.NoError(t, err)
		assert.Equal(t, 20.0, roe)
	})

	t.Run("negative income is a negative return", func(t *testing.T) {
		roe, err := ROE(-500000.0, 5000000.0)
		require.NoError(t, err)
		assert.Equal(t, -10.0, roe)
	})

	t.Run("zero equity rejected", func(t *testing.T) {
		_, err := ROE(1000000.0, 0.0)
		assert.Error(t, err)
	})

	t.Run("non-finite income rejected", func(t *testing.T) {
		_, err := ROE(math.NaN(), 5000000.0)
		assert.Error(t, err)
	})
}

func TestROA(t *testing.T) {
	roa, err := ROA(500000.0, 5000000.0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, roa)

	_, err = ROA(500000.0, 0.0)
	assert.Error(t, err)
}

func TestPERatio(t *testing.T) {
	pe, err := PERatio(50.0, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, pe)

	_, err = PERatio(50.0, 0.0)
	assert.Error(t, err)
	_, err = PERatio(50.0, -5.0)
	assert.Error(t, err)
}

func TestDividendYield(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		yield, err := DividendYield(2.5, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 5.0, yield)
	})

	t.Run("zero dividend is zero yield", func(t *testing.T) {
		yield, err := DividendYield(0.0, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, yield)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, err := DividendYield(2.5, 0.0)
		assert.Error(t, err)
	})
}

func TestWACC(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		wacc, err := WACC(0.10, 0.05, 0.30, 1000000.0, 500000.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.0783333, wacc, 0.0001)
	})

	t.Run("all-equity firm", func(t *testing.T) {
		wacc, err := WACC(0.10, 0.05, 0.30, 1000000.0, 0.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.10, wacc, 1e-9)
	})

	t.Run("zero total value is division by zero", func(t *testing.T) {
		_, err := WACC(0.10, 0.05, 0.30, 0.0, 0.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrDivisionByZero))
	})

	t.Run("tax rate above 1 rejected", func(t *testing.T) {
		_, err := WACC(0.10, 0.05, 1.5, 1000000.0, 500000.0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, ferrors.ErrInvalidInput))
	})
}

func TestDebtToEquity(t *testing.T) {
	ratio, err := DebtToEquity(500000.0, 1000000.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	_, err = DebtToEquity(500000.0, 0.0)
	assert.Error(t, err)
}

func TestCurrentRatio(t *testing.T) {
	ratio, err := CurrentRatio(200000.0, 100000.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, ratio)

	_, err = CurrentRatio(200000.0, 0.0)
	assert.Error(t, err)
}

func TestQuickRatio(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		ratio, err := QuickRatio(200000.0, 50000.0, 100000.0)
		require.NoError(t, err)
		assert.Equal(t, 1.5, ratio)
	})

	t.Run("inventory above assets rejected", func(t *testing.T) {
		_, err := QuickRatio(100000.0, 150000.0, 50000.0)
		assert.Error(t, err)
	})
}
