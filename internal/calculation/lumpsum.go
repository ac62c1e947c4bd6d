package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourbank/loan-calculator/internal/domain"
	money "github.com/yourbank/loan-calculator/pkg/decimal"
)

// ErrInvalidArgument is the single validation error kind of the calculator.
var ErrInvalidArgument = domain.ErrInvalidArgument

// ErrOverflow reports a result outside the float64 range. It is not a validation
// failure: the inputs were acceptable but too extreme to represent.
var ErrOverflow = errors.New("lump sum overflows float64 range")

// CalculateLumpSumPayment returns the amount due at maturity for a loan repaid in
// a single balloon payment, compounding compoundPeriodPerYear times a year:
//
//	amount = principal * (1 + r/n)^(n*t), r = annualInterestRate/100
//
// The result is rounded to cents, half away from zero, on its decimal text form.
func CalculateLumpSumPayment(principal, annualInterestRate float64, years, compoundPeriodPerYear int) (float64, error) {
	amount, err := lumpSum(domain.LoanTerms{
		Principal:              principal,
		AnnualInterestRate:     annualInterestRate,
		Years:                  years,
		CompoundPeriodsPerYear: compoundPeriodPerYear,
	})
	if err != nil {
		return 0, err
	}
	return amount.InexactFloat64(), nil
}

// lumpSum validates the terms and returns the rounded amount as a decimal.
func lumpSum(terms domain.LoanTerms) (decimal.Decimal, error) {
	if err := terms.Validate(); err != nil {
		return decimal.Zero, err
	}
	if terms.Principal == 0 {
		return decimal.Zero, nil
	}

	r := terms.AnnualInterestRate / 100
	n := float64(terms.CompoundPeriodsPerYear)
	t := float64(terms.Years)
	amount := terms.Principal * math.Pow(1+r/n, n*t)
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return decimal.Zero, fmt.Errorf("%w: principal %v at %v%% over %d periods", ErrOverflow, terms.Principal, terms.AnnualInterestRate, terms.Periods())
	}

	return money.NewMoney(amount).Round().Decimal, nil
}
