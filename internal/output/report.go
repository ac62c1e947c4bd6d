package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yourbank/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes results to a timestamped file in dir using the named formatter
// and returns the file's path.
func GenerateReport(results *domain.LoanComparison, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("lumpsum_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}
	if err := WriteFormatted(f, results, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveConfiguration writes a loan book as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
