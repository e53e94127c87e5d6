package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario,
// measured against the first scenario as the baseline.
type Recommendation struct {
	ScenarioName     string
	BaselineName     string
	DailyBudget      decimal.Decimal
	BudgetChange     decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest daily budget.
// The comparison's own RecommendedScenario wins when it names a scenario.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	baseline := results.Scenarios[0]

	best, ok := results.Find(results.RecommendedScenario)
	if !ok {
		ranked := append([]domain.ScenarioSummary(nil), results.Scenarios...)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Projection.DailyBudget.GreaterThan(ranked[j].Projection.DailyBudget)
		})
		best = &ranked[0]
	}

	budget := best.Projection.DailyBudgetWhole()
	delta := budget.Sub(baseline.Projection.DailyBudgetWhole())
	pct := decimal.Zero
	if base := baseline.Projection.DailyBudgetWhole(); !base.IsZero() {
		pct = delta.Div(base).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:     best.Name,
		BaselineName:     baseline.Name,
		DailyBudget:      budget,
		BudgetChange:     delta,
		PercentageChange: pct,
	}
}
