package main

import (
	"github.com/spf13/cobra"

	"github.com/yourbank/loan-calculator/internal/calculation"
	"github.com/yourbank/loan-calculator/internal/domain"
	"github.com/yourbank/loan-calculator/internal/output"
)

func newCalculateCmd(opts *cliOptions) *cobra.Command {
	var (
		name  string
		start string
		terms domain.LoanTerms
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the lump sum due for a single loan",
		Example: `  lumpsum calculate --principal 100000 --rate 6 --years 10 --periods 12
  lumpsum calculate -p 1000 -r 5 -y 1 -n 1 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.engine().Calculate(terms)
			if err != nil {
				return err
			}
			res.Name = name
			if res.MaturityDate, err = calculation.MaturityDate(start, terms.Years); err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), &domain.LoanComparison{Results: []domain.LumpSumResult{*res}}, opts.format)
		},
	}

	cmd.Flags().StringVar(&name, "name", "loan", "label used in the report")
	cmd.Flags().StringVar(&start, "start", "", "loan start date (YYYY-MM-DD); reports the maturity date")
	cmd.Flags().Float64VarP(&terms.Principal, "principal", "p", 0, "initial loan amount")
	cmd.Flags().Float64VarP(&terms.AnnualInterestRate, "rate", "r", 0, "annual interest rate in percent (6 means 6%)")
	cmd.Flags().IntVarP(&terms.Years, "years", "y", 0, "term in whole years")
	cmd.Flags().IntVarP(&terms.CompoundPeriodsPerYear, "periods", "n", 1, "compounding periods per year")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
