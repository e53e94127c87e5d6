package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// ErrNoScenarios is returned when a scenario file defines no scenarios.
var ErrNoScenarios = errors.New("no scenarios provided")

// InputParser handles parsing of scenario configuration files
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration held in memory.
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

// ValidateConfiguration checks the structure of a configuration. Numeric
// values are not range-checked; degenerate ages still project.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateInput(&config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(i, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if prev, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[scenario.Name] = i
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(_ int, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	return ip.validateInput(&scenario.ScenarioInput)
}

func (ip *InputParser) validateInput(in *domain.ScenarioInput) error {
	if in.CurrentAge != nil && in.BirthDate != nil {
		return fmt.Errorf("specify either current_age or birth_date, not both")
	}
	if in.BirthDate != nil && in.BirthDate.After(ip.now()) {
		return fmt.Errorf("birth date %s is in the future", in.BirthDate.Format("2006-01-02"))
	}
	return nil
}

// SaveConfiguration writes a configuration as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	dec := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	age := func(v int) *int { return &v }

	return &domain.Configuration{
		Defaults: domain.ScenarioInput{
			CurrentAge:          age(30),
			LifeExpectancy:      age(85),
			RetireAge:           age(60),
			StartingAssets:      dec(5000000),
			MonthlyIncome:       dec(300000),
			MonthlyExpenses:     dec(250000),
			AnnualGrowthPercent: dec(3),
		},
		Scenarios: []domain.Scenario{
			{
				Name:        "Baseline",
				Description: "Retire at 60 on current income and spending",
			},
			{
				Name:          "Retire at 55",
				Description:   "Stop working five years earlier",
				ScenarioInput: domain.ScenarioInput{RetireAge: age(55)},
			},
			{
				Name:        "Frugal",
				Description: "Spend 50,000 less each month",
				ScenarioInput: domain.ScenarioInput{
					MonthlyExpenses: dec(200000),
				},
			},
			{
				Name:        "Cautious growth",
				Description: "Half the expected return",
				ScenarioInput: domain.ScenarioInput{
					AnnualGrowthPercent: &[]decimal.Decimal{decimal.NewFromFloat(1.5)}[0],
				},
			},
		},
	}
}
