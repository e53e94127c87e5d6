package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// Summarize derives the named summary of a projection computed elsewhere,
// such as one reloaded from history.
func Summarize(name string, in domain.ProjectionInput, result domain.ProjectionResult) *domain.ScenarioSummary {
	s := summarize(in, result)
	s.Name = name
	return s
}

// summarize derives the per-scenario metrics from a finished projection.
func summarize(in domain.ProjectionInput, result domain.ProjectionResult) *domain.ScenarioSummary {
	s := &domain.ScenarioSummary{
		Input:              in,
		Projection:         result,
		PeakAssets:         decimal.Zero,
		FinalAssets:        result.FinalAssets(),
		TotalContributions: decimal.Zero,
		TotalWithdrawals:   decimal.Zero,
		TotalGrowth:        decimal.Zero,
	}

	prev := in.StartingAssets
	for i, p := range result.Points {
		if i == 0 || p.Assets.GreaterThan(s.PeakAssets) {
			s.PeakAssets = p.Assets
			s.PeakYear = p.Year
		}
		if s.DepletionYear == 0 && isDepleted(p.Assets) && !isDepleted(prev) {
			s.DepletionYear = p.Year
		}
		prev = p.Assets

		s.TotalContributions = s.TotalContributions.Add(p.Contribution)
		s.TotalWithdrawals = s.TotalWithdrawals.Add(p.Withdrawal)
		s.TotalGrowth = s.TotalGrowth.Add(p.Growth)
	}
	return s
}

// isDepleted treats anything below half a cent as gone; drawdown division
// leaves sub-cent residue rather than an exact zero.
func isDepleted(d decimal.Decimal) bool {
	return d.Round(2).Sign() <= 0
}

// recommendScenario picks the highest daily budget, ties broken by name.
func recommendScenario(scenarios []domain.ScenarioSummary) string {
	if len(scenarios) == 0 {
		return ""
	}
	ranked := append([]domain.ScenarioSummary(nil), scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		bi, bj := ranked[i].Projection.DailyBudget, ranked[j].Projection.DailyBudget
		if !bi.Equal(bj) {
			return bi.GreaterThan(bj)
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked[0].Name
}

// longestLasting picks the scenario whose assets survive longest. A scenario
// that never depletes beats any that does; among those, higher final assets win.
func longestLasting(scenarios []domain.ScenarioSummary) string {
	if len(scenarios) == 0 {
		return ""
	}
	best := scenarios[0]
	for _, sc := range scenarios[1:] {
		if lastsLonger(sc, best) {
			best = sc
		}
	}
	return best.Name
}

func lastsLonger(a, b domain.ScenarioSummary) bool {
	switch {
	case !a.Depleted() && b.Depleted():
		return true
	case a.Depleted() && !b.Depleted():
		return false
	case a.Depleted() && b.Depleted() && a.DepletionYear != b.DepletionYear:
		return a.DepletionYear > b.DepletionYear
	}
	if !a.FinalAssets.Equal(b.FinalAssets) {
		return a.FinalAssets.GreaterThan(b.FinalAssets)
	}
	return a.Name < b.Name
}

// GenerateAssumptions lists the modelling assumptions shown alongside reports,
// including the growth rates actually used by the scenarios.
func GenerateAssumptions(scenarios []domain.ScenarioSummary) []string {
	out := []string{
		"Net savings (income minus expenses) are added every year up to and including the retirement age",
		"After retirement an equal share of the remaining balance is withdrawn each year, reaching zero at life expectancy",
		"Growth is applied every year in both phases",
		"Days are counted as 365 per year; the daily budget is the retirement-year balance over the remaining days",
	}
	seen := map[string]bool{}
	for _, sc := range scenarios {
		rate := sc.Input.AnnualGrowthPercent.String()
		if seen[rate] {
			continue
		}
		seen[rate] = true
		out = append(out, fmt.Sprintf("Annual growth: %s%% (%s)", rate, sc.Name))
	}
	return out
}
