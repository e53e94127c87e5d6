package calculation

import (
	"context"
	"fmt"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// CalculationEngine orchestrates scenario runs on top of the projection engine
type CalculationEngine struct {
	Projector *ProjectionEngine
	Logger    Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		Projector: NewProjectionEngine(logger),
		Logger:    logger,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
	ce.Projector.Logger = ce.Logger
}

// ResolveInput layers the scenario's overrides on the configuration defaults.
func (ce *CalculationEngine) ResolveInput(config *domain.Configuration, scenario *domain.Scenario) domain.ProjectionInput {
	return config.Defaults.Overlay(scenario.ScenarioInput).Resolve(nowFunc())
}

// RunInput projects a single ad-hoc input under the given name.
func (ce *CalculationEngine) RunInput(name string, in domain.ProjectionInput) *domain.ScenarioSummary {
	result := ce.Projector.Project(in)
	summary := summarize(in, result)
	summary.Name = name
	ce.Logger.Infof("%s: %d years, daily budget %s", name, len(result.Points), result.DailyBudgetWhole().String())
	return summary
}

// RunScenario calculates a complete scenario
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := config.Defaults.Overlay(scenario.ScenarioInput)
	in := merged.Resolve(nowFunc())

	summary := ce.RunInput(scenario.Name, in)
	summary.Description = scenario.Description
	summary.BirthDate = merged.BirthDate
	return summary, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))

	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", config.Scenarios[i].Name, err)
		}
		scenarios[i] = *summary
	}

	return Compare(scenarios), nil
}

// Compare builds a comparison from already-computed summaries.
func Compare(scenarios []domain.ScenarioSummary) *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		GeneratedAt:         nowFunc(),
		Scenarios:           scenarios,
		RecommendedScenario: recommendScenario(scenarios),
		LongestLasting:      longestLasting(scenarios),
		Assumptions:         GenerateAssumptions(scenarios),
	}
}
