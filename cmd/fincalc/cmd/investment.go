package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/display"
	"fincalc/internal/investment"
)

// Cash flows, net profit, beta, and market return may legitimately be
// zero or negative; their finiteness is checked by the core, so they
// carry no tag here.
type npvRequest struct {
	InitialInvestment float64 `validate:"gt=0" flag:"initial-investment"`
	CashFlow          float64 `flag:"cash-flow"`
	Lifespan          int     `validate:"gt=0" flag:"lifespan"`
	DiscountRate      float64 `validate:"gte=0" flag:"discount-rate"`
}

type dcfRequest struct {
	CashFlows    []float64 `validate:"required,min=1" flag:"cash-flows"`
	DiscountRate float64   `validate:"gt=-1" flag:"discount-rate"`
}

type paybackRequest struct {
	InitialCost float64   `validate:"gt=0" flag:"initial-cost"`
	CashFlows   []float64 `validate:"required,min=1" flag:"cash-flows"`
}

type roiRequest struct {
	NetProfit        float64 `flag:"net-profit"`
	CostOfInvestment float64 `validate:"gt=0" flag:"cost"`
}

type capmRequest struct {
	RiskFreeRate float64 `validate:"gte=0" flag:"risk-free-rate"`
	Beta         float64 `flag:"beta"`
	MarketReturn float64 `flag:"market-return"`
}

type irrRequest struct {
	CashFlows []float64 `validate:"required,min=2" flag:"cash-flows"`
}

var (
	npvReq     npvRequest
	dcfReq     dcfRequest
	paybackReq paybackRequest
	roiReq     roiRequest
	capmReq    capmRequest
	irrReq     irrRequest
)

var npvCmd = &cobra.Command{
	Use:   "npv",
	Short: "Net present value of a constant yearly cash flow",
	Long: `Calculate the net present value of an investment producing the
same cash flow every year over its lifespan.

For irregular cash flows use the dcf command.`,
	RunE: runNPV,
}

var dcfCmd = &cobra.Command{
	Use:   "dcf",
	Short: "Discounted value of a series of cash flows",
	RunE:  runDCF,
}

var paybackCmd = &cobra.Command{
	Use:   "payback-period",
	Short: "Years until cumulative cash flows repay the initial cost",
	RunE:  runPayback,
}

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Return on investment as a percentage",
	RunE:  runROI,
}

var capmCmd = &cobra.Command{
	Use:   "capm",
	Short: "Expected return under the capital asset pricing model",
	RunE:  runCAPM,
}

var irrCmd = &cobra.Command{
	Use:   "irr",
	Short: "Internal rate of return of a cash flow series",
	Long: `Solve for the discount rate at which the net present value of
the cash flow series is zero. The first cash flow is the time-zero
amount and is normally negative.`,
	RunE: runIRR,
}

func init() {
	npvCmd.Flags().Float64Var(&npvReq.InitialInvestment, "initial-investment", 0, "upfront investment amount")
	npvCmd.Flags().Float64Var(&npvReq.CashFlow, "cash-flow", 0, "yearly cash flow")
	npvCmd.Flags().IntVar(&npvReq.Lifespan, "lifespan", 0, "number of years the cash flow repeats")
	npvCmd.Flags().Float64Var(&npvReq.DiscountRate, "discount-rate", 0, "discount rate as a fraction")

	dcfCmd.Flags().Float64SliceVar(&dcfReq.CashFlows, "cash-flows", nil, "comma-separated cash flows, one per period")
	dcfCmd.Flags().Float64Var(&dcfReq.DiscountRate, "discount-rate", 0, "discount rate as a fraction")

	paybackCmd.Flags().Float64Var(&paybackReq.InitialCost, "initial-cost", 0, "upfront cost to recover")
	paybackCmd.Flags().Float64SliceVar(&paybackReq.CashFlows, "cash-flows", nil, "comma-separated yearly cash flows")

	roiCmd.Flags().Float64Var(&roiReq.NetProfit, "net-profit", 0, "net profit of the investment")
	roiCmd.Flags().Float64Var(&roiReq.CostOfInvestment, "cost", 0, "cost of the investment")

	capmCmd.Flags().Float64Var(&capmReq.RiskFreeRate, "risk-free-rate", 0, "risk-free rate as a fraction")
	capmCmd.Flags().Float64Var(&capmReq.Beta, "beta", 0, "asset beta relative to the market")
	capmCmd.Flags().Float64Var(&capmReq.MarketReturn, "market-return", 0, "expected market return as a fraction")

	irrCmd.Flags().Float64SliceVar(&irrReq.CashFlows, "cash-flows", nil, "comma-separated cash flows, first is the time-zero amount")

	rootCmd.AddCommand(npvCmd, dcfCmd, paybackCmd, roiCmd, capmCmd, irrCmd)
}

func runNPV(cmd *cobra.Command, args []string) error {
	if err := checkRequest(npvReq); err != nil {
		return err
	}

	cashFlows := make([]float64, npvReq.Lifespan)
	for i := range cashFlows {
		cashFlows[i] = npvReq.CashFlow
	}

	result, err := investment.NPV(npvReq.InitialInvestment, cashFlows, npvReq.DiscountRate)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Net Present Value", display.Currency(result)))
	if result > 0 {
		fmt.Println(display.HighlightStyle.Render("The investment adds value at this discount rate."))
	} else {
		fmt.Println(display.LabelStyle.Render("The investment does not add value at this discount rate."))
	}
	return nil
}

func runDCF(cmd *cobra.Command, args []string) error {
	if err := checkRequest(dcfReq); err != nil {
		return err
	}

	result, err := investment.DCF(dcfReq.CashFlows, dcfReq.DiscountRate)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Discounted Cash Flow Value", display.Currency(result)))
	return nil
}

func runPayback(cmd *cobra.Command, args []string) error {
	if err := checkRequest(paybackReq); err != nil {
		return err
	}

	years, recovered, err := investment.PaybackPeriod(paybackReq.InitialCost, paybackReq.CashFlows)
	if err != nil {
		return err
	}
	if !recovered {
		fmt.Println(display.LabelStyle.Render("The initial cost is never recovered by the given cash flows."))
		return nil
	}

	fmt.Println(display.KeyValue("Payback Period", display.Years(years)))
	return nil
}

func runROI(cmd *cobra.Command, args []string) error {
	if err := checkRequest(roiReq); err != nil {
		return err
	}

	result, err := investment.ROI(roiReq.NetProfit, roiReq.CostOfInvestment)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Return on Investment", fmt.Sprintf("%.2f%%", result)))
	return nil
}

func runCAPM(cmd *cobra.Command, args []string) error {
	if err := checkRequest(capmReq); err != nil {
		return err
	}

	result, err := investment.CAPM(capmReq.RiskFreeRate, capmReq.Beta, capmReq.MarketReturn)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Expected Return", display.Percent(result)))
	return nil
}

func runIRR(cmd *cobra.Command, args []string) error {
	if err := checkRequest(irrReq); err != nil {
		return err
	}

	opts := investment.IRROptions{
		Tolerance:     appCfg.Solver.IRRTolerance,
		MaxIterations: appCfg.Solver.IRRMaxIterations,
		InitialGuess:  appCfg.Solver.IRRInitialGuess,
	}
	result, err := investment.IRRWith(irrReq.CashFlows, opts)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Internal Rate of Return", display.Percent(result)))
	return nil
}
