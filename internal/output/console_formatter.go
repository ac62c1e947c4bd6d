package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/yourbank/loan-calculator/internal/domain"
)

// ConsoleFormatter renders a plain-text table, one loan per row.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LUMP-SUM REPAYMENT SUMMARY")
	fmt.Fprintln(&buf, "================================")

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Loan\tPrincipal\tRate\tYears\tPeriods/yr\tLump sum\tInterest\t")
	for _, r := range results.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t\n",
			r.Name,
			FormatCurrency(moneyOf(r.Terms.Principal)),
			FormatRate(r.Terms.AnnualInterestRate),
			r.Terms.Years,
			r.Terms.CompoundPeriodsPerYear,
			FormatCurrency(r.LumpSum),
			FormatCurrency(r.TotalInterest),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	if len(results.Results) > 1 {
		rec := AnalyzeLoans(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Cheapest: %s at %s (spread %s / %s)\n", rec.LoanName, FormatCurrency(rec.LumpSum), FormatCurrency(rec.Spread), FormatPercentage(rec.SpreadPercent))
	}
	return buf.Bytes(), nil
}
