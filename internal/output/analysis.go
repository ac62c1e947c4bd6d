package output

import (
	"github.com/shopspring/decimal"

	"github.com/yourbank/loan-calculator/internal/domain"
	money "github.com/yourbank/loan-calculator/pkg/decimal"
)

// Recommendation identifies the cheapest loan in a comparison.
type Recommendation struct {
	LoanName      string
	LumpSum       decimal.Decimal
	Spread        decimal.Decimal // most expensive lump sum minus the cheapest
	SpreadPercent decimal.Decimal // spread relative to the cheapest lump sum
}

var decimalHundred = decimal.NewFromInt(100)

// AnalyzeLoans picks the loan with the lowest lump sum. Ties keep input order.
func AnalyzeLoans(results *domain.LoanComparison) Recommendation {
	if results == nil || len(results.Results) == 0 {
		return Recommendation{}
	}

	bestName := results.Results[0].Name
	best := money.NewMoneyFromDecimal(results.Results[0].LumpSum)
	worst := best
	for _, r := range results.Results[1:] {
		amount := money.NewMoneyFromDecimal(r.LumpSum)
		if amount.LessThan(best) {
			best, bestName = amount, r.Name
		}
		if amount.GreaterThan(worst) {
			worst = amount
		}
	}

	spread := worst.Sub(best)
	pct := money.Zero()
	if !best.IsZero() {
		pct = spread.Div(best.Decimal).Mul(decimalHundred)
	}
	return Recommendation{LoanName: bestName, LumpSum: best.Decimal, Spread: spread.Decimal, SpreadPercent: pct.Decimal}
}
