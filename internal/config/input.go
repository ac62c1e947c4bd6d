package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/yourbank/loan-calculator/internal/domain"
	"github.com/yourbank/loan-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of loan book files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a loan book from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a loan book.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Loans) == 0 {
		return fmt.Errorf("no loans provided")
	}

	seen := make(map[string]int, len(config.Loans))
	for i, loan := range config.Loans {
		name := strings.TrimSpace(loan.Name)
		if name == "" {
			return fmt.Errorf("loan %d: name is required", i)
		}
		if j, dup := seen[name]; dup {
			return fmt.Errorf("loan %d: name %q already used by loan %d", i, name, j)
		}
		seen[name] = i

		if err := loan.Terms.Validate(); err != nil {
			return fmt.Errorf("loan %q validation failed: %w", name, err)
		}
		if loan.StartDate != "" {
			if _, err := dateutil.ParseDate(loan.StartDate); err != nil {
				return fmt.Errorf("loan %q: %w", name, err)
			}
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example loan book
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Loans: []domain.LoanScenario{
			{
				Name:      "Ten-year annual",
				StartDate: "2025-01-15",
				Terms:     domain.LoanTerms{Principal: 100000, AnnualInterestRate: 6, Years: 10, CompoundPeriodsPerYear: 1},
			},
			{
				Name:  "Ten-year monthly",
				Terms: domain.LoanTerms{Principal: 100000, AnnualInterestRate: 6, Years: 10, CompoundPeriodsPerYear: 12},
			},
			{
				Name:  "Short bridge",
				Terms: domain.LoanTerms{Principal: 1000, AnnualInterestRate: 5, Years: 1, CompoundPeriodsPerYear: 1},
			},
			{
				Name:  "Interest-free",
				Terms: domain.LoanTerms{Principal: 50000, AnnualInterestRate: 0, Years: 20, CompoundPeriodsPerYear: 1},
			},
		},
	}
}
