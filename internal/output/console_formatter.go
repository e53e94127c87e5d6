package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LIFECOUNT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s: Days=%d DailyBudget=%s AtRetirement=%s Final=%s Depleted=%s\n",
			sc.Name,
			sc.Projection.DaysRemaining,
			FormatCurrency(sc.Projection.DailyBudgetWhole()),
			FormatCurrency(sc.Projection.RetirementAssets),
			FormatCurrency(sc.FinalAssets),
			depletedLabel(sc),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s/day / %s)\n", rec.ScenarioName, FormatCurrency(rec.BudgetChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

func depletedLabel(sc domain.ScenarioSummary) string {
	if !sc.Depleted() {
		return "never"
	}
	return intToString(sc.DepletionYear)
}
