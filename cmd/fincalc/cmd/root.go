// Package cmd wires the calculator's operations into a cobra command
// tree. Each command parses flags into a request struct, validates it,
// calls the corresponding calculation package, and renders the result.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/config"
	"fincalc/internal/infrastructure"
	"fincalc/internal/safemath"
)

var (
	cfgFile string
	verbose bool

	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Financial calculator for the command line",
	Long: `fincalc computes interest, time-value-of-money, investment,
loan, ratio, and statistics results from the command line.

Command groups:
  interest     - simple/compound interest, present and future value
  investment   - npv, dcf, irr, payback-period, roi, capm
  loan         - payments, mortgages, amortization, break-even, depreciation
  ratios       - wacc, roe, roa, p/e, dividend yield, liquidity ratios
  statistics   - average, median, mode, variance, probability`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		safemath.SetDefaultPolicy(safemath.Policy{
			MaxCalculationRange: cfg.Safety.MaxCalculationRange,
			MaxExponent:         cfg.Safety.MaxExponent,
		})

		appCfg = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, env and built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
