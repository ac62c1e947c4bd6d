package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/yourbank/loan-calculator/internal/domain"
	money "github.com/yourbank/loan-calculator/pkg/decimal"
)

// CSVSummarizer implements the summary CSV output (one row per loan, input order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.LoanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Loan", "Principal", "AnnualInterestRate", "Years", "CompoundPeriodsPerYear", "LumpSum", "TotalInterest", "GrowthFactor", "MaturityDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		row := []string{
			r.Name,
			moneyOf(r.Terms.Principal).StringFixed(2),
			decimal.NewFromFloat(r.Terms.AnnualInterestRate).String(),
			intToString(r.Terms.Years),
			intToString(r.Terms.CompoundPeriodsPerYear),
			r.LumpSum.StringFixed(2),
			r.TotalInterest.StringFixed(2),
			r.GrowthFactor.String(),
			r.MaturityDate,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// moneyOf settles an input amount to cents for display.
func moneyOf(v float64) decimal.Decimal {
	return money.NewMoney(v).Round().Decimal
}
