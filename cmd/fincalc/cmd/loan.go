package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"fincalc/internal/display"
	"fincalc/internal/exporter"
	"fincalc/internal/loan"
)

// A zero rate selects the straight-line payment branch, so the loan
// payment rate is bounded at gte=0 rather than required.
type loanPaymentRequest struct {
	Principal float64 `validate:"gt=0" flag:"principal"`
	Rate      float64 `validate:"gte=0" flag:"rate"`
	TermYears float64 `validate:"gt=0" flag:"term"`
}

type mortgageRequest struct {
	LoanAmount float64 `validate:"gt=0" flag:"loan-amount"`
	Rate       float64 `validate:"gt=0" flag:"rate"`
	TermYears  int     `validate:"gt=0" flag:"term"`
}

type amortizationRequest struct {
	LoanAmount float64 `validate:"gt=0" flag:"loan-amount"`
	Rate       float64 `validate:"gt=0" flag:"rate"`
	TermYears  int     `validate:"gt=0" flag:"term"`
	Export     string  `flag:"export"`
}

type breakEvenRequest struct {
	FixedCosts          float64 `validate:"gt=0" flag:"fixed-costs"`
	VariableCostPerUnit float64 `validate:"gt=0" flag:"variable-cost"`
	PricePerUnit        float64 `validate:"gt=0" flag:"price"`
}

type depreciationRequest struct {
	InitialValue float64 `validate:"gt=0" flag:"initial-value"`
	SalvageValue float64 `validate:"gte=0" flag:"salvage-value"`
	Life         int     `validate:"gt=0" flag:"life"`
	Method       string  `validate:"oneof=straight-line double-declining-balance" flag:"method"`
	Export       string  `flag:"export"`
}

var (
	loanPaymentReq  loanPaymentRequest
	mortgageReq     mortgageRequest
	amortizationReq amortizationRequest
	breakEvenReq    breakEvenRequest
	depreciationReq depreciationRequest
)

var loanPaymentCmd = &cobra.Command{
	Use:   "loan-payment",
	Short: "Monthly payment for a fixed-rate loan",
	Long: `Calculate the fixed monthly payment for a loan.

The rate is an annual percentage, e.g. 5 for 5%.`,
	RunE: runLoanPayment,
}

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Monthly payment, total interest, and payoff date for a mortgage",
	RunE:  runMortgage,
}

var amortizationCmd = &cobra.Command{
	Use:   "amortization",
	Short: "Amortization schedule for a fixed-rate loan",
	Long: `Print an abbreviated amortization schedule: the first month,
every twelfth month, and the final month. Use --export to write the
full schedule to a .csv or .xlsx file.`,
	RunE: runAmortization,
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even",
	Short: "Break-even units and the revenue at that point",
	RunE:  runBreakEven,
}

var breakEvenUnitsCmd = &cobra.Command{
	Use:   "break-even-units",
	Short: "Units needed to cover fixed costs",
	RunE:  runBreakEvenUnits,
}

var depreciationCmd = &cobra.Command{
	Use:   "depreciation",
	Short: "Yearly depreciation schedule for an asset",
	Long: `Print an asset's depreciation schedule using the straight-line
or double-declining-balance method. Use --export to write the schedule
to a .csv or .xlsx file.`,
	RunE: runDepreciation,
}

func init() {
	loanPaymentCmd.Flags().Float64Var(&loanPaymentReq.Principal, "principal", 0, "loan principal")
	loanPaymentCmd.Flags().Float64Var(&loanPaymentReq.Rate, "rate", 0, "annual interest rate as a percentage")
	loanPaymentCmd.Flags().Float64Var(&loanPaymentReq.TermYears, "term", 0, "loan term in years")

	mortgageCmd.Flags().Float64Var(&mortgageReq.LoanAmount, "loan-amount", 0, "mortgage amount")
	mortgageCmd.Flags().Float64Var(&mortgageReq.Rate, "rate", 0, "annual interest rate as a percentage")
	mortgageCmd.Flags().IntVar(&mortgageReq.TermYears, "term", 0, "mortgage term in years")

	amortizationCmd.Flags().Float64Var(&amortizationReq.LoanAmount, "loan-amount", 0, "loan amount")
	amortizationCmd.Flags().Float64Var(&amortizationReq.Rate, "rate", 0, "annual interest rate as a percentage")
	amortizationCmd.Flags().IntVar(&amortizationReq.TermYears, "term", 0, "loan term in years")
	amortizationCmd.Flags().StringVar(&amortizationReq.Export, "export", "", "write the full schedule to this .csv or .xlsx file")

	for _, c := range []*cobra.Command{breakEvenCmd, breakEvenUnitsCmd} {
		c.Flags().Float64Var(&breakEvenReq.FixedCosts, "fixed-costs", 0, "total fixed costs")
		c.Flags().Float64Var(&breakEvenReq.VariableCostPerUnit, "variable-cost", 0, "variable cost per unit")
		c.Flags().Float64Var(&breakEvenReq.PricePerUnit, "price", 0, "selling price per unit")
	}

	depreciationCmd.Flags().Float64Var(&depreciationReq.InitialValue, "initial-value", 0, "asset purchase value")
	depreciationCmd.Flags().Float64Var(&depreciationReq.SalvageValue, "salvage-value", 0, "value at end of useful life")
	depreciationCmd.Flags().IntVar(&depreciationReq.Life, "life", 0, "useful life in years")
	depreciationCmd.Flags().StringVar(&depreciationReq.Method, "method", string(loan.StraightLine), "straight-line or double-declining-balance")
	depreciationCmd.Flags().StringVar(&depreciationReq.Export, "export", "", "write the schedule to this .csv or .xlsx file")

	rootCmd.AddCommand(loanPaymentCmd, mortgageCmd, amortizationCmd, breakEvenCmd, breakEvenUnitsCmd, depreciationCmd)
}

func runLoanPayment(cmd *cobra.Command, args []string) error {
	if err := checkRequest(loanPaymentReq); err != nil {
		return err
	}

	payment, err := loan.Payment(loanPaymentReq.Principal, loanPaymentReq.Rate, loanPaymentReq.TermYears)
	if err != nil {
		return err
	}

	months := int(math.Round(loanPaymentReq.TermYears * 12))
	totalPaid := payment * float64(months)

	fmt.Println(display.KeyValue("Monthly Payment", display.Currency(payment)))
	fmt.Println(display.KeyValue("Total Paid", display.Currency(totalPaid)))
	fmt.Println(display.KeyValue("Total Interest", display.Currency(totalPaid-loanPaymentReq.Principal)))
	fmt.Println(display.KeyValue("Payoff Date", loan.SystemClock{}.Now().AddDate(0, months, 0).Format("January 2006")))
	return nil
}

func runMortgage(cmd *cobra.Command, args []string) error {
	if err := checkRequest(mortgageReq); err != nil {
		return err
	}

	details, err := loan.Mortgage(mortgageReq.LoanAmount, mortgageReq.Rate, mortgageReq.TermYears, loan.SystemClock{})
	if err != nil {
		return err
	}

	fmt.Println(display.RenderTitle("Mortgage Summary"))
	fmt.Println(display.KeyValue("Monthly Payment", display.Currency(details.MonthlyPayment)))
	fmt.Println(display.KeyValue("Total Interest", display.Currency(details.TotalInterest)))
	fmt.Println(display.KeyValue("Payoff Date", details.PayoffDate.Format("January 2006")))
	return nil
}

func runAmortization(cmd *cobra.Command, args []string) error {
	if err := checkRequest(amortizationReq); err != nil {
		return err
	}

	schedule, err := loan.AmortizationSchedule(amortizationReq.LoanAmount, amortizationReq.Rate, amortizationReq.TermYears)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(schedule)/12+2)
	for i, p := range schedule {
		if i != 0 && p.Month%12 != 0 && i != len(schedule)-1 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Month),
			display.Currency(p.PrincipalPayment),
			display.Currency(p.InterestPayment),
			display.Currency(p.RemainingBalance),
		})
	}

	fmt.Println(display.RenderTitle("Amortization Schedule"))
	fmt.Println(display.Table([]string{"Month", "Principal", "Interest", "Balance"}, rows))

	if amortizationReq.Export != "" {
		if err := exporter.ExportAmortizationSchedule(amortizationReq.Export, schedule); err != nil {
			return err
		}
		fmt.Println(display.KeyValue("Exported", amortizationReq.Export))
	}
	return nil
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	if err := checkRequest(breakEvenReq); err != nil {
		return err
	}

	units, revenue, err := loan.BreakEvenAnalysis(breakEvenReq.FixedCosts, breakEvenReq.VariableCostPerUnit, breakEvenReq.PricePerUnit)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Break-Even Units", fmt.Sprintf("%.2f", units)))
	fmt.Println(display.KeyValue("Break-Even Revenue", display.Currency(revenue)))
	return nil
}

func runBreakEvenUnits(cmd *cobra.Command, args []string) error {
	if err := checkRequest(breakEvenReq); err != nil {
		return err
	}

	units, err := loan.BreakEvenUnits(breakEvenReq.FixedCosts, breakEvenReq.VariableCostPerUnit, breakEvenReq.PricePerUnit)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Break-Even Units", fmt.Sprintf("%.2f", units)))
	return nil
}

func runDepreciation(cmd *cobra.Command, args []string) error {
	if err := checkRequest(depreciationReq); err != nil {
		return err
	}

	schedule, err := loan.DepreciationSchedule(
		depreciationReq.InitialValue,
		depreciationReq.SalvageValue,
		depreciationReq.Life,
		loan.DepreciationMethod(depreciationReq.Method),
	)
	if err != nil {
		return err
	}

	rows := make([][]string, len(schedule))
	for i, y := range schedule {
		rows[i] = []string{
			fmt.Sprintf("%d", y.Year),
			display.Currency(y.Expense),
			display.Currency(y.BookValue),
		}
	}

	fmt.Println(display.RenderTitle("Depreciation Schedule"))
	fmt.Println(display.Table([]string{"Year", "Expense", "Book Value"}, rows))

	if depreciationReq.Export != "" {
		if err := exporter.ExportDepreciationSchedule(depreciationReq.Export, schedule); err != nil {
			return err
		}
		fmt.Println(display.KeyValue("Exported", depreciationReq.Export))
	}
	return nil
}
