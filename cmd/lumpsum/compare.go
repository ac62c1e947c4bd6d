package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourbank/loan-calculator/internal/config"
	"github.com/yourbank/loan-calculator/internal/output"
)

func newCompareCmd(opts *cliOptions) *cobra.Command {
	var outFile, outDir string

	cmd := &cobra.Command{
		Use:   "compare <loans.yaml>",
		Short: "Calculate and compare every loan in a loan book",
		Example: `  lumpsum compare loans.yaml
  lumpsum compare loans.yaml --format json --output report.json
  lumpsum compare loans.yaml --format html --output-dir reports/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			results, err := opts.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			path := outFile
			switch {
			case outFile != "":
				f, err := output.LookupFormatter(opts.format)
				if err != nil {
					return err
				}
				if err := output.WriteFormatted(f, results, outFile); err != nil {
					return err
				}
			case outDir != "":
				if path, err = output.GenerateReport(results, opts.format, outDir); err != nil {
					return err
				}
			default:
				return output.Render(cmd.OutOrStdout(), results, opts.format)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&outDir, "output-dir", "", "write a timestamped report file into this directory")
	cmd.MarkFlagsMutuallyExclusive("output", "output-dir")
	return cmd
}
