package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yourbank/loan-calculator/internal/calculation"
)

type cliOptions struct {
	verbose   bool
	format    string
	logger    *zap.Logger
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newCLIOptions() *cliOptions {
	return &cliOptions{newLogger: newProductionLogger}
}

// newProductionLogger logs JSON to stderr at warn level, or debug under --verbose.
func newProductionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newRootCmd builds a fresh command tree bound to opts.
func newRootCmd(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "lumpsum",
		Short: "Lump-sum repayment calculator for balloon loans",
		Long: `lumpsum computes the amount due at maturity for loans repaid in a single
balloon payment, using discrete compound interest:

  amount = principal * (1 + r/n)^(n*t)

Results are rounded to cents, half away from zero.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "output format (console, csv, html, json)")

	root.AddCommand(newCalculateCmd(opts), newCompareCmd(opts), newExampleCmd())
	return root
}

func (o *cliOptions) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewZapLogger(o.logger))
	return engine
}

// execute runs root and flushes the logger whether or not the command failed;
// cobra skips post-run hooks after a RunE error.
func execute(root *cobra.Command, opts *cliOptions) error {
	defer opts.syncLogger()
	return root.Execute()
}

func (o *cliOptions) syncLogger() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}
