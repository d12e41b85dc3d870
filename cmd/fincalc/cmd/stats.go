package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/display"
	"fincalc/internal/stats"
)

type seriesRequest struct {
	Numbers []float64 `validate:"required,min=1" flag:"numbers"`
}

type spreadRequest struct {
	Numbers []float64 `validate:"required,min=2" flag:"numbers"`
	Sample  bool      `flag:"sample"`
}

type probabilityRequest struct {
	Successes int `validate:"gte=0" flag:"successes"`
	Trials    int `validate:"gt=0" flag:"trials"`
}

type weightedAverageRequest struct {
	Numbers []float64 `validate:"required,min=1" flag:"numbers"`
	Weights []float64 `validate:"required,min=1" flag:"weights"`
}

var (
	averageReq         seriesRequest
	medianReq          seriesRequest
	modeReq            seriesRequest
	varianceReq        spreadRequest
	stdDevReq          spreadRequest
	probabilityReq     probabilityRequest
	weightedAverageReq weightedAverageRequest
)

var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Arithmetic mean of a series",
	RunE:  runAverage,
}

var medianCmd = &cobra.Command{
	Use:   "median",
	Short: "Middle value of a series",
	RunE:  runMedian,
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Most frequent value of a series",
	Long: `Find the most frequent value in a series. When several values
tie, the smallest is reported; a series with no repeated value has no
mode.`,
	RunE: runMode,
}

var varianceCmd = &cobra.Command{
	Use:   "variance",
	Short: "Population variance of a series",
	RunE:  runVariance,
}

var stdDevCmd = &cobra.Command{
	Use:   "standard-deviation",
	Short: "Population standard deviation of a series",
	RunE:  runStdDev,
}

var probabilityCmd = &cobra.Command{
	Use:   "probability",
	Short: "Probability of success from counts",
	RunE:  runProbability,
}

var weightedAverageCmd = &cobra.Command{
	Use:   "weighted-average",
	Short: "Weighted mean of a series",
	RunE:  runWeightedAverage,
}

func init() {
	averageCmd.Flags().Float64SliceVar(&averageReq.Numbers, "numbers", nil, "comma-separated values")
	medianCmd.Flags().Float64SliceVar(&medianReq.Numbers, "numbers", nil, "comma-separated values")
	modeCmd.Flags().Float64SliceVar(&modeReq.Numbers, "numbers", nil, "comma-separated values")

	varianceCmd.Flags().Float64SliceVar(&varianceReq.Numbers, "numbers", nil, "comma-separated values")
	varianceCmd.Flags().BoolVar(&varianceReq.Sample, "sample", false, "use the sample estimator (divide by N-1)")
	stdDevCmd.Flags().Float64SliceVar(&stdDevReq.Numbers, "numbers", nil, "comma-separated values")
	stdDevCmd.Flags().BoolVar(&stdDevReq.Sample, "sample", false, "use the sample estimator (divide by N-1)")

	probabilityCmd.Flags().IntVar(&probabilityReq.Successes, "successes", 0, "number of successful outcomes")
	probabilityCmd.Flags().IntVar(&probabilityReq.Trials, "trials", 0, "total number of trials")

	weightedAverageCmd.Flags().Float64SliceVar(&weightedAverageReq.Numbers, "numbers", nil, "comma-separated values")
	weightedAverageCmd.Flags().Float64SliceVar(&weightedAverageReq.Weights, "weights", nil, "comma-separated non-negative weights")

	rootCmd.AddCommand(averageCmd, medianCmd, modeCmd, varianceCmd, stdDevCmd, probabilityCmd, weightedAverageCmd)
}

func runAverage(cmd *cobra.Command, args []string) error {
	if err := checkRequest(averageReq); err != nil {
		return err
	}

	result, err := stats.Mean(averageReq.Numbers)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Average", fmt.Sprintf("%g", result)))
	return nil
}

func runMedian(cmd *cobra.Command, args []string) error {
	if err := checkRequest(medianReq); err != nil {
		return err
	}

	result, err := stats.Median(medianReq.Numbers)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Median", fmt.Sprintf("%g", result)))
	return nil
}

func runMode(cmd *cobra.Command, args []string) error {
	if err := checkRequest(modeReq); err != nil {
		return err
	}

	result, found, err := stats.ModeWithPrecision(modeReq.Numbers, appCfg.Safety.ModeKeyDigits)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println(display.LabelStyle.Render("No mode: no value appears more than once."))
		return nil
	}

	fmt.Println(display.KeyValue("Mode", fmt.Sprintf("%g", result)))
	return nil
}

func runVariance(cmd *cobra.Command, args []string) error {
	if err := checkRequest(varianceReq); err != nil {
		return err
	}

	var (
		result float64
		err    error
	)
	if varianceReq.Sample {
		result, err = stats.SampleVariance(varianceReq.Numbers)
	} else {
		result, err = stats.Variance(varianceReq.Numbers)
	}
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Variance", fmt.Sprintf("%g", result)))
	return nil
}

func runStdDev(cmd *cobra.Command, args []string) error {
	if err := checkRequest(stdDevReq); err != nil {
		return err
	}

	var (
		result float64
		err    error
	)
	if stdDevReq.Sample {
		result, err = stats.SampleStandardDeviation(stdDevReq.Numbers)
	} else {
		result, err = stats.StandardDeviation(stdDevReq.Numbers)
	}
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Standard Deviation", fmt.Sprintf("%g", result)))
	return nil
}

func runProbability(cmd *cobra.Command, args []string) error {
	if err := checkRequest(probabilityReq); err != nil {
		return err
	}

	result, err := stats.Probability(probabilityReq.Successes, probabilityReq.Trials)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Probability", fmt.Sprintf("%g", result)))
	fmt.Println(display.KeyValue("As Percentage", display.Percent(result)))
	return nil
}

func runWeightedAverage(cmd *cobra.Command, args []string) error {
	if err := checkRequest(weightedAverageReq); err != nil {
		return err
	}

	result, err := stats.WeightedAverage(weightedAverageReq.Numbers, weightedAverageReq.Weights)
	if err != nil {
		return err
	}

	fmt.Println(display.KeyValue("Weighted Average", fmt.Sprintf("%g", result)))
	return nil
}
