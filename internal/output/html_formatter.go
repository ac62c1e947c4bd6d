package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/yourbank/loan-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"money": moneyOf,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.LoanComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.LoanComparison
		Recommendation Recommendation
		Compare        bool
	}{results, AnalyzeLoans(results), len(results.Results) > 1}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
