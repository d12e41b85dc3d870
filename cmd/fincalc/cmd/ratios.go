package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/display"
	"fincalc/internal/ratios"
)

// Net income and earnings may be zero or negative; only the
// denominator-bearing inputs carry positivity bounds.
type waccRequest struct {
	CostOfEquity      float64 `validate:"gte=0" flag:"cost-of-equity"`
	CostOfDebt        float64 `validate:"gte=0" flag:"cost-of-debt"`
	TaxRate           float64 `validate:"gte=0,lte=1" flag:"tax-rate"`
	MarketValueEquity float64 `validate:"gte=0" flag:"equity"`
	MarketValueDebt   float64 `validate:"gte=0" flag:"debt"`
}

type roeRequest struct {
	NetIncome          float64 `flag:"net-income"`
	ShareholdersEquity float64 `validate:"gt=0" flag:"equity"`
}

type roaRequest struct {
	NetIncome   float64 `flag:"net-income"`
	TotalAssets float64 `validate:"gt=0" flag:"assets"`
}

type peRatioRequest struct {
	StockPrice       float64 `validate:"gt=0" flag:"price"`
	EarningsPerShare float64 `validate:"gt=0" flag:"eps"`
}

type dividendYieldRequest struct {
	AnnualDividend float64 `validate:"gte=0" flag:"dividend"`
	StockPrice     float64 `validate:"gt=0" flag:"price"`
}

type debtToEquityRequest struct {
	TotalDebt   float64 `validate:"gte=0" flag:"debt"`
	TotalEquity float64 `validate:"gt=0" flag:"equity"`
}

type currentRatioRequest struct {
	CurrentAssets      float64 `validate:"gte=0" flag:"assets"`
	Inventory          float64 `validate:"gte=0" flag:"inventory"`
	CurrentLiabilities float64 `validate:"gt=0" flag:"liabilities"`
}

var (
	waccReq          waccRequest
	roeReq           roeRequest
	roaReq           roaRequest
	peRatioReq       peRatioRequest
	dividendYieldReq dividendYieldRequest
	debtToEquityReq  debtToEquityRequest
	currentRatioReq  currentRatioRequest
)

var waccCmd = &cobra.Command{
	Use:   "wacc",
	Short: "Weighted average cost of capital",
	Long: `Calculate the weighted average cost of capital from the costs
of equity and debt, their market values, and the tax rate.

Rates are fractions, e.g. 0.08 for 8%; the tax rate lies in [0, 1].`,
	RunE: runWACC,
}

var roeCmd = &cobra.Command{
	Use:   "roe",
	Short: "Return on equity as a percentage",
	RunE:  runROE,
}

var roaCmd = &cobra.Command{
	Use:   "roa",
	Short: "Return on assets as a percentage",
	RunE:  runROA,
}

var peRatioCmd = &cobra.Command{
	Use:   "pe-ratio",
	Short: "Price-to-earnings ratio",
	RunE:  runPERatio,
}

var dividendYieldCmd = &cobra.Command{
	Use:   "dividend-yield",
	Short: "Annual dividend as a fraction of the stock price",
	RunE:  runDividendYield,
}

var debtToEquityCmd = &cobra.Command{
	Use:   "debt-to-equity",
	Short: "Total debt over total equity",
	RunE:  runDebtToEquity,
}

var currentRatioCmd = &cobra.Command{
	Use:   "current-ratio",
	Short: "Current assets over current liabilities",
	RunE:  runCurrentRatio,
}

var quickRatioCmd = &cobra.Command{
	Use:   "quick-ratio",
	Short: "Current assets excluding inventory over current liabilities",
	RunE:  runQuickRatio,
}

func init() {
	waccCmd.Flags().Float64Var(&waccReq.CostOfEquity, "cost-of-equity", 0, "cost of equity as a fraction")
	waccCmd.Flags().Float64Var(&waccReq.CostOfDebt, "cost-of-debt", 0, "cost of debt as a fraction")
	waccCmd.Flags().Float64Var(&waccReq.TaxRate, "tax-rate", 0, "corporate tax rate in [0, 1]")
	waccCmd.Flags().Float64Var(&waccReq.MarketValueEquity, "equity", 0, "market value of equity")
	waccCmd.Flags().Float64Var(&waccReq.MarketValueDebt, "debt", 0, "market value of debt")

	roeCmd.Flags().Float64Var(&roeReq.NetIncome, "net-income", 0, "net income")
	roeCmd.Flags().Float64Var(&roeReq.ShareholdersEquity, "equity", 0, "shareholders' equity")

	roaCmd.Flags().Float64Var(&roaReq.NetIncome, "net-income", 0, "net income")
	roaCmd.Flags().Float64Var(&roaReq.TotalAssets, "assets", 0, "total assets")

	peRatioCmd.Flags().Float64Var(&peRatioReq.StockPrice, "price", 0, "stock price per share")
	peRatioCmd.Flags().Float64Var(&peRatioReq.EarningsPerShare, "eps", 0, "earnings per share")

	dividendYieldCmd.Flags().Float64Var(&dividendYieldReq.AnnualDividend, "dividend", 0, "annual dividend per share")
	dividendYieldCmd.Flags().Float64Var(&dividendYieldReq.StockPrice, "price", 0, "stock price per share")

	debtToEquityCmd.Flags().Float64Var(&debtToEquityReq.TotalDebt, "debt", 0, "total debt")
	debtToEquityCmd.Flags().Float64Var(&debtToEquityReq.TotalEquity, "equity", 0, "total equity")

	for _, c := range []*cobra.Command{currentRatioCmd, quickRatioCmd} {
		c.Flags().Float64Var(&currentRatioReq.CurrentAssets, "assets", 0, "current assets")
		c.Flags().Float64Var(&currentRatioReq.CurrentLiabilities, "liabilities", 0, "current liabilities")
	}
	quickRatioCmd.Flags().Float64Var(&currentRatioReq.Inventory, "inventory", 0, "inventory value")

	rootCmd.AddCommand(waccCmd, roeCmd, roaCmd, peRatioCmd, dividendYieldCmd, debtToEquityCmd, currentRatioCmd, quickRatioCmd)
}

func runWACC(cmd *cobra.Command, args []string) error {
	if err := checkRequest(waccReq); err != nil {
		return err
	}

	result, err := ratios.WACC(waccReq.CostOfEquity, waccReq.CostOfDebt, waccReq.TaxRate,
		waccReq.MarketValueEquity, waccReq.MarketValueDebt)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("WACC", display.Percent(result)))
	return nil
}

func runROE(cmd *cobra.Command, args []string) error {
	if err := checkRequest(roeReq); err != nil {
		return err
	}

	result, err := ratios.ROE(roeReq.NetIncome, roeReq.ShareholdersEquity)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Return on Equity", fmt.Sprintf("%.2f%%", result)))
	return nil
}

func runROA(cmd *cobra.Command, args []string) error {
	if err := checkRequest(roaReq); err != nil {
		return err
	}

	result, err := ratios.ROA(roaReq.NetIncome, roaReq.TotalAssets)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Return on Assets", fmt.Sprintf("%.2f%%", result)))
	return nil
}

func runPERatio(cmd *cobra.Command, args []string) error {
	if err := checkRequest(peRatioReq); err != nil {
		return err
	}

	result, err := ratios.PERatio(peRatioReq.StockPrice, peRatioReq.EarningsPerShare)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("P/E Ratio", fmt.Sprintf("%.2f", result)))
	return nil
}

func runDividendYield(cmd *cobra.Command, args []string) error {
	if err := checkRequest(dividendYieldReq); err != nil {
		return err
	}

	result, err := ratios.DividendYield(dividendYieldReq.AnnualDividend, dividendYieldReq.StockPrice)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Dividend Yield", fmt.Sprintf("%.2f%%", result)))
	return nil
}

func runDebtToEquity(cmd *cobra.Command, args []string) error {
	if err := checkRequest(debtToEquityReq); err != nil {
		return err
	}

	result, err := ratios.DebtToEquity(debtToEquityReq.TotalDebt, debtToEquityReq.TotalEquity)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Debt-to-Equity", fmt.Sprintf("%.2f", result)))
	return nil
}

func runCurrentRatio(cmd *cobra.Command, args []string) error {
	if err := checkRequest(currentRatioReq); err != nil {
		return err
	}

	result, err := ratios.CurrentRatio(currentRatioReq.CurrentAssets, currentRatioReq.CurrentLiabilities)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Current Ratio", fmt.Sprintf("%.2f", result)))
	return nil
}

func runQuickRatio(cmd *cobra.Command, args []string) error {
	if err := checkRequest(currentRatioReq); err != nil {
		return err
	}

	result, err := ratios.QuickRatio(currentRatioReq.CurrentAssets, currentRatioReq.Inventory, currentRatioReq.CurrentLiabilities)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Quick Ratio", fmt.Sprintf("%.2f", result)))
	return nil
}
