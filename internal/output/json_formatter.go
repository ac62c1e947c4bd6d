package output

import (
	"encoding/json"

	"github.com/yourbank/loan-calculator/internal/domain"
)

// JSONFormatter serializes the loan comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
