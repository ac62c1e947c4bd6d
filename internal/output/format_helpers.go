package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/yourbank/loan-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats an annual percentage rate input, e.g. 6 -> "6%", 3.25 -> "3.25%".
func FormatRate(rate float64) string { return decimal.NewFromFloat(rate).String() + "%" }

func intToString(i int) string { return strconv.Itoa(i) }
