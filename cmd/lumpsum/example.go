package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourbank/loan-calculator/internal/config"
	"github.com/yourbank/loan-calculator/internal/output"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <loans.yaml>",
		Short: "Write an example loan book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example loan book written to %s\n", args[0])
			return nil
		},
	}
}
