package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fincalc/internal/display"
	"fincalc/internal/interest"
)

// Zero is a legitimate value for rates, times, and year counts, so
// those fields carry gte bounds instead of required, which fails on
// the numeric zero value.
type simpleInterestRequest struct {
	Principal float64 `validate:"gt=0" flag:"principal"`
	Rate      float64 `validate:"gte=0" flag:"rate"`
	Time      float64 `validate:"gte=0" flag:"time"`
}

type compoundInterestRequest struct {
	Principal float64 `validate:"gt=0" flag:"principal"`
	Rate      float64 `validate:"gte=0" flag:"rate"`
	Frequency int     `validate:"gt=0" flag:"frequency"`
	Years     int     `validate:"gte=0" flag:"years"`
}

type presentValueRequest struct {
	FutureValue float64 `validate:"gt=0" flag:"future-value"`
	Rate        float64 `validate:"gte=0" flag:"rate"`
	Time        float64 `validate:"gte=0" flag:"time"`
}

type futureValueRequest struct {
	PresentValue float64 `validate:"gt=0" flag:"present-value"`
	Rate         float64 `validate:"gte=0" flag:"rate"`
	Time         float64 `validate:"gte=0" flag:"time"`
}

var (
	simpleInterestReq   simpleInterestRequest
	compoundInterestReq compoundInterestRequest
	presentValueReq     presentValueRequest
	futureValueReq      futureValueRequest
)

var interestCmd = &cobra.Command{
	Use:   "interest",
	Short: "Calculate simple interest",
	Long: `Calculate simple interest: principal x rate x time.

The rate is a fraction, e.g. 0.05 for 5%.`,
	RunE: runSimpleInterest,
}

var compoundInterestCmd = &cobra.Command{
	Use:   "compound-interest",
	Short: "Calculate compound interest with a per-year growth table",
	Long: `Calculate the final amount after compounding interest.

The rate is a fraction, e.g. 0.05 for 5%. A rate above 1.0 is treated
as a percentage and divided by 100.`,
	RunE: runCompoundInterest,
}

var presentValueCmd = &cobra.Command{
	Use:   "present-value",
	Short: "Discount a future amount to today's value",
	RunE:  runPresentValue,
}

var futureValueCmd = &cobra.Command{
	Use:   "future-value",
	Short: "Grow a present amount at a constant rate",
	RunE:  runFutureValue,
}

func init() {
	interestCmd.Flags().Float64Var(&simpleInterestReq.Principal, "principal", 0, "principal amount")
	interestCmd.Flags().Float64Var(&simpleInterestReq.Rate, "rate", 0, "interest rate as a fraction")
	interestCmd.Flags().Float64Var(&simpleInterestReq.Time, "time", 0, "time in years")

	compoundInterestCmd.Flags().Float64Var(&compoundInterestReq.Principal, "principal", 0, "principal amount")
	compoundInterestCmd.Flags().Float64Var(&compoundInterestReq.Rate, "rate", 0, "annual interest rate as a fraction")
	compoundInterestCmd.Flags().IntVar(&compoundInterestReq.Frequency, "frequency", 1, "compounding periods per year")
	compoundInterestCmd.Flags().IntVar(&compoundInterestReq.Years, "years", 0, "investment duration in years")

	presentValueCmd.Flags().Float64Var(&presentValueReq.FutureValue, "future-value", 0, "future amount to discount")
	presentValueCmd.Flags().Float64Var(&presentValueReq.Rate, "rate", 0, "discount rate as a fraction, below 1.0")
	presentValueCmd.Flags().Float64Var(&presentValueReq.Time, "time", 0, "time in years")

	futureValueCmd.Flags().Float64Var(&futureValueReq.PresentValue, "present-value", 0, "present amount to grow")
	futureValueCmd.Flags().Float64Var(&futureValueReq.Rate, "rate", 0, "growth rate as a fraction")
	futureValueCmd.Flags().Float64Var(&futureValueReq.Time, "time", 0, "time in years")

	rootCmd.AddCommand(interestCmd, compoundInterestCmd, presentValueCmd, futureValueCmd)
}

func runSimpleInterest(cmd *cobra.Command, args []string) error {
	if err := checkRequest(simpleInterestReq); err != nil {
		return err
	}

	result, err := interest.SimpleInterest(simpleInterestReq.Principal, simpleInterestReq.Rate, simpleInterestReq.Time)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Simple Interest", display.Currency(result)))
	fmt.Println(display.KeyValue("Total Amount", display.Currency(simpleInterestReq.Principal+result)))
	return nil
}

func runCompoundInterest(cmd *cobra.Command, args []string) error {
	if err := checkRequest(compoundInterestReq); err != nil {
		return err
	}

	req := compoundInterestReq
	// Convenience at the flag boundary only: 5.25 means 5.25%.
	if req.Rate > 1.0 {
		slog.Debug("interpreting rate as a percentage", slog.Float64("rate", req.Rate))
		req.Rate /= 100
	}

	final, err := interest.CompoundInterest(req.Principal, req.Rate, req.Frequency, req.Years)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, req.Years)
	for year := 1; year <= req.Years; year++ {
		amount, err := interest.CompoundInterest(req.Principal, req.Rate, req.Frequency, year)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", year),
			display.Currency(amount),
			display.Currency(amount - req.Principal),
		})
	}

	fmt.Println(display.RenderTitle("Compound Interest Growth"))
	fmt.Println(display.Table([]string{"Year", "Amount", "Interest Earned"}, rows))
	fmt.Println(display.KeyValue("Final Amount", display.Currency(final)))
	fmt.Println(display.KeyValue("Total Interest", display.Currency(final-req.Principal)))
	return nil
}

func runPresentValue(cmd *cobra.Command, args []string) error {
	if err := checkRequest(presentValueReq); err != nil {
		return err
	}

	result, err := interest.PresentValue(presentValueReq.FutureValue, presentValueReq.Rate, presentValueReq.Time)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Present Value", display.Currency(result)))
	return nil
}

func runFutureValue(cmd *cobra.Command, args []string) error {
	if err := checkRequest(futureValueReq); err != nil {
		return err
	}

	result, err := interest.FutureValue(futureValueReq.PresentValue, futureValueReq.Rate, futureValueReq.Time)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Future Value", display.Currency(result)))
	return nil
}
