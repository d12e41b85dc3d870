// Package ratios implements financial ratio calculations: returns,
// valuation, capital structure, and liquidity ratios.
package ratios

import (
	"github.com/shopspring/decimal"

	ferrors "fincalc/internal/errors"
	"fincalc/internal/safemath"
)

// ROE computes return on equity (net income / equity) x 100. The ratio
// is computed in decimal arithmetic to avoid binary-float artifacts in
// the reported percentage.
func ROE(netIncome, shareholdersEquity float64) (float64, error) {
	if err := safemath.ValidatePositive(shareholdersEquity, "shareholders' equity"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateFinite(netIncome, "net income"); err != nil {
		return 0, err
	}

	income := decimal.NewFromFloat(netIncome)
	equity := decimal.NewFromFloat(shareholdersEquity)

	roe, _ := income.Div(equity).Mul(decimal.NewFromInt(100)).Float64()
	return roe, nil
}

// ROA computes return on assets (net income / total assets) x 100.
func ROA(netIncome, totalAssets float64) (float64, error) {
	if err := safemath.ValidatePositive(totalAssets, "total assets"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateFinite(netIncome, "net income"); err != nil {
		return 0, err
	}

	return (netIncome / totalAssets) * 100.0, nil
}

// PERatio computes price-to-earnings: stock price / earnings per share.
func PERatio(stockPrice, earningsPerShare float64) (float64, error) {
	if err := safemath.ValidatePositive(stockPrice, "stock price"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(earningsPerShare, "earnings per share"); err != nil {
		return 0, err
	}

	return stockPrice / earningsPerShare, nil
}

// DividendYield computes (annual dividend / stock price) x 100.
func DividendYield(annualDividend, stockPrice float64) (float64, error) {
	if err := safemath.ValidatePositive(stockPrice, "stock price"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(annualDividend, "annual dividend"); err != nil {
		return 0, err
	}

	return (annualDividend / stockPrice) * 100.0, nil
}

// WACC computes the weighted average cost of capital:
// (E/V x Ke) + (D/V x Kd x (1 - tax)). A zero combined market value is
// a division-by-zero condition, not an input-shape error.
func WACC(costOfEquity, costOfDebt, taxRate, marketValueEquity, marketValueDebt float64) (float64, error) {
	if err := safemath.ValidateNonNegative(costOfEquity, "cost of equity"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(costOfDebt, "cost of debt"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(taxRate, "tax rate"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(marketValueEquity, "market value of equity"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(marketValueDebt, "market value of debt"); err != nil {
		return 0, err
	}
	if taxRate > 1.0 {
		return 0, ferrors.InvalidInput("tax rate", taxRate,
			"tax rate should be expressed as a decimal (0-1)")
	}

	totalValue := marketValueEquity + marketValueDebt
	if totalValue == 0 {
		return 0, ferrors.DivisionByZero("equity plus debt market value")
	}

	equityWeight := marketValueEquity / totalValue
	debtWeight := marketValueDebt / totalValue

	return equityWeight*costOfEquity + debtWeight*costOfDebt*(1-taxRate), nil
}

// DebtToEquity computes total debt / total equity.
func DebtToEquity(totalDebt, totalEquity float64) (float64, error) {
	if err := safemath.ValidateNonNegative(totalDebt, "total debt"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(totalEquity, "total equity"); err != nil {
		return 0, err
	}

	return totalDebt / totalEquity, nil
}

// CurrentRatio computes current assets / current liabilities.
func CurrentRatio(currentAssets, currentLiabilities float64) (float64, error) {
	if err := safemath.ValidateNonNegative(currentAssets, "current assets"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(currentLiabilities, "current liabilities"); err != nil {
		return 0, err
	}

	return currentAssets / currentLiabilities, nil
}

// QuickRatio computes (current assets - inventory) / current
// liabilities. Inventory cannot exceed current assets.
func QuickRatio(currentAssets, inventory, currentLiabilities float64) (float64, error) {
	if err := safemath.ValidateNonNegative(currentAssets, "current assets"); err != nil {
		return 0, err
	}
	if err := safemath.ValidateNonNegative(inventory, "inventory"); err != nil {
		return 0, err
	}
	if err := safemath.ValidatePositive(currentLiabilities, "current liabilities"); err != nil {
		return 0, err
	}
	if inventory > currentAssets {
		return 0, ferrors.InvalidInput("inventory", inventory,
			"inventory cannot exceed current assets")
	}

	return (currentAssets - inventory) / currentLiabilities, nil
}
