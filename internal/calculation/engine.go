package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourbank/loan-calculator/internal/domain"
	"github.com/yourbank/loan-calculator/pkg/dateutil"
	money "github.com/yourbank/loan-calculator/pkg/decimal"
)

// growthFactorPlaces is the precision of the reported lump-sum / principal ratio.
const growthFactorPlaces int32 = 6

// CalculationEngine orchestrates lump-sum calculations over a loan book
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate settles a single loan.
func (ce *CalculationEngine) Calculate(terms domain.LoanTerms) (*domain.LumpSumResult, error) {
	amount, err := lumpSum(terms)
	if err != nil {
		return nil, err
	}

	principal := money.NewMoney(terms.Principal).Round()
	growth := decimal.Zero
	if !principal.IsZero() {
		growth = amount.DivRound(principal.Decimal, growthFactorPlaces)
	}

	ce.Logger.Debugf("lump sum %s for principal %s at %v%% over %d periods",
		amount.StringFixed(2), principal, terms.AnnualInterestRate, terms.Periods())

	return &domain.LumpSumResult{
		Terms:         terms,
		LumpSum:       amount,
		TotalInterest: money.NewMoneyFromDecimal(amount).Sub(principal).Decimal,
		GrowthFactor:  growth,
	}, nil
}

// RunScenarios calculates every loan in the configuration, in order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.LoanComparison, error) {
	comparison := &domain.LoanComparison{Results: make([]domain.LumpSumResult, 0, len(config.Loans))}
	for _, loan := range config.Loans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := ce.Calculate(loan.Terms)
		if err != nil {
			ce.Logger.Errorf("loan %q failed: %v", loan.Name, err)
			return nil, fmt.Errorf("loan %q: %w", loan.Name, err)
		}
		res.Name = loan.Name
		if res.MaturityDate, err = MaturityDate(loan.StartDate, loan.Terms.Years); err != nil {
			return nil, fmt.Errorf("loan %q: %w", loan.Name, err)
		}
		comparison.Results = append(comparison.Results, *res)
	}
	ce.Logger.Infof("calculated %d loans", len(comparison.Results))
	return comparison, nil
}

// MaturityDate returns the YYYY-MM-DD date a loan starting on start falls due.
// An empty start yields an empty date.
func MaturityDate(start string, years int) (string, error) {
	if start == "" {
		return "", nil
	}
	startDate, err := dateutil.ParseDate(start)
	if err != nil {
		return "", err
	}
	return dateutil.FormatDate(dateutil.AddYears(startDate, years)), nil
}
