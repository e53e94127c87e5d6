package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "CurrentAge", "LifeExpectancy", "RetireAge", "StartingAssets", "MonthlyIncome", "MonthlyExpenses", "AnnualGrowthPercent", "DaysRemaining", "DailyBudget", "RetirementAssets", "PeakAssets", "PeakYear", "DepletionYear", "FinalAssets", "TotalContributions", "TotalWithdrawals", "TotalGrowth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		in := sc.Input
		row := []string{
			sc.Name,
			intToString(in.CurrentAge),
			intToString(in.LifeExpectancy),
			intToString(in.RetireAge),
			in.StartingAssets.StringFixed(2),
			in.MonthlyIncome.StringFixed(2),
			in.MonthlyExpenses.StringFixed(2),
			in.AnnualGrowthPercent.String(),
			intToString(sc.Projection.DaysRemaining),
			sc.Projection.DailyBudgetWhole().String(),
			sc.Projection.RetirementAssets.StringFixed(2),
			sc.PeakAssets.StringFixed(2),
			intToString(sc.PeakYear),
			yearOrEmpty(sc.DepletionYear),
			sc.FinalAssets.StringFixed(2),
			sc.TotalContributions.StringFixed(2),
			sc.TotalWithdrawals.StringFixed(2),
			sc.TotalGrowth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
