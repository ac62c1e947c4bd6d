package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned when loan terms fall outside the accepted ranges.
// Every violated precondition maps to this single error kind; the wrapped message
// names the field.
var ErrInvalidArgument = errors.New("invalid argument")

// LoanTerms are the inputs of a single balloon-payment loan.
type LoanTerms struct {
	Principal              float64 `yaml:"principal" json:"principal"`
	AnnualInterestRate     float64 `yaml:"annual_interest_rate" json:"annual_interest_rate"` // percent, 6 means 6%
	Years                  int     `yaml:"years" json:"years"`
	CompoundPeriodsPerYear int     `yaml:"compound_periods_per_year" json:"compound_periods_per_year"`
}

// Validate checks the terms against the accepted input ranges.
func (t LoanTerms) Validate() error {
	switch {
	case math.IsNaN(t.Principal) || math.IsInf(t.Principal, 0):
		return fmt.Errorf("%w: principal must be a finite number, got %v", ErrInvalidArgument, t.Principal)
	case t.Principal < 0:
		return fmt.Errorf("%w: principal must be non-negative, got %v", ErrInvalidArgument, t.Principal)
	case math.IsNaN(t.AnnualInterestRate) || math.IsInf(t.AnnualInterestRate, 0):
		return fmt.Errorf("%w: annual interest rate must be a finite number, got %v", ErrInvalidArgument, t.AnnualInterestRate)
	case t.AnnualInterestRate < 0:
		return fmt.Errorf("%w: annual interest rate must be non-negative, got %v", ErrInvalidArgument, t.AnnualInterestRate)
	case t.Years <= 0:
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidArgument, t.Years)
	case t.CompoundPeriodsPerYear < 1:
		return fmt.Errorf("%w: compound periods per year must be at least 1, got %d", ErrInvalidArgument, t.CompoundPeriodsPerYear)
	}
	return nil
}

// Periods returns the total number of compounding events over the term.
func (t LoanTerms) Periods() int {
	return t.Years * t.CompoundPeriodsPerYear
}

// LoanScenario is a named loan in a loan book.
type LoanScenario struct {
	Name      string    `yaml:"name" json:"name"`
	StartDate string    `yaml:"start_date,omitempty" json:"start_date,omitempty"` // YYYY-MM-DD, optional
	Terms     LoanTerms `yaml:",inline" json:"terms"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Loans []LoanScenario `yaml:"loans" json:"loans"`
}

// LumpSumResult is the settled outcome for one loan.
type LumpSumResult struct {
	Name          string          `json:"name"`
	Terms         LoanTerms       `json:"terms"`
	LumpSum       decimal.Decimal `json:"lump_sum"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	GrowthFactor  decimal.Decimal `json:"growth_factor"`
	MaturityDate  string          `json:"maturity_date,omitempty"`
}

// LoanComparison holds results for every loan in a book, in input order.
type LoanComparison struct {
	Results []LumpSumResult `json:"results"`
}
