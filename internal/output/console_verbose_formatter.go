package output

import (
	"bytes"
	"fmt"

	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full styled terminal report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const labelWidth = 20

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, cli.RenderTitle("LIFECOUNT ASSET PROJECTION"))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, cli.Header("KEY ASSUMPTIONS"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i := range results.Scenarios {
		writeScenario(&buf, i, &results.Scenarios[i])
	}

	if len(results.Scenarios) > 1 {
		fmt.Fprint(&buf, cli.RenderTable(comparisonTable(results)))
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, cli.Header("SUMMARY & RECOMMENDATIONS"))
		fmt.Fprintln(&buf, cli.RenderKeyValue("Best daily budget", rec.ScenarioName+" ("+FormatDailyBudget(rec.DailyBudget)+")", labelWidth))
		if rec.ScenarioName != rec.BaselineName {
			fmt.Fprintln(&buf, cli.RenderKeyValue("vs "+rec.BaselineName, signed(FormatCurrency(rec.BudgetChange), rec.BudgetChange.IsPositive())+"/day ("+FormatPercentage(rec.PercentageChange)+")", labelWidth))
		}
		if results.LongestLasting != "" {
			fmt.Fprintln(&buf, cli.RenderKeyValue("Longest lasting", results.LongestLasting, labelWidth))
		}
	}

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, i int, sc *domain.ScenarioSummary) {
	in := sc.Input
	res := sc.Projection

	fmt.Fprintln(buf, cli.Header(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name)))
	if sc.Description != "" {
		fmt.Fprintln(buf, "  "+cli.Muted(sc.Description))
	}
	ageLine := fmt.Sprintf("%d", in.CurrentAge)
	if sc.BirthDate != nil {
		ageLine += " (born " + sc.BirthDate.Format("2006-01-02") + ")"
	}
	rows := [][2]string{
		{"Current age", ageLine},
		{"Life expectancy", fmt.Sprintf("%d", in.LifeExpectancy)},
		{"Retirement age", fmt.Sprintf("%d", in.RetireAge)},
		{"Starting assets", FormatCurrency(in.StartingAssets)},
		{"Monthly net", FormatCurrency(in.MonthlyIncome.Sub(in.MonthlyExpenses))},
		{"Annual growth", cli.FormatPercent(in.AnnualGrowthPercent)},
	}
	for _, r := range rows {
		fmt.Fprintln(buf, cli.RenderKeyValue(r[0], r[1], labelWidth))
	}
	fmt.Fprintln(buf)

	results := [][2]string{
		{"Days remaining", cli.FormatDays(res.DaysRemaining)},
		{"Daily budget", cli.Money(FormatDailyBudget(res.DailyBudget))},
		{"Assets at retirement", FormatCurrency(res.RetirementAssets)},
		{"Peak assets", FormatCurrency(sc.PeakAssets) + " at " + cli.FormatYear(sc.PeakYear)},
		{"Final assets", FormatCurrency(sc.FinalAssets)},
	}
	if sc.Depleted() {
		results = append(results, [2]string{"Depleted at", cli.Warn(cli.FormatYear(sc.DepletionYear))})
	}
	for _, r := range results {
		fmt.Fprintln(buf, cli.RenderKeyValue(r[0], r[1], labelWidth))
	}

	_, series := res.Series()
	if len(series) > 0 {
		fmt.Fprintln(buf, cli.RenderKeyValue("Assets by age", cli.RenderSparkline(series), labelWidth))
	}
	fmt.Fprintln(buf)

	if len(res.Points) > 0 {
		fmt.Fprint(buf, cli.RenderTable(yearTable(res.Points)))
		fmt.Fprintln(buf)
	}
}

func yearTable(points []domain.YearPoint) cli.Table {
	t := cli.Table{Headers: []string{"Age", "Phase", "Contribution", "Withdrawal", "Growth", "Assets"}}
	for i, p := range points {
		if i > 0 && p.Phase != points[i-1].Phase {
			t.Rows = append(t.Rows, []string{"---"})
		}
		t.Rows = append(t.Rows, []string{
			intToString(p.Year),
			string(p.Phase),
			FormatCurrency(p.Contribution),
			FormatCurrency(p.Withdrawal),
			FormatCurrency(p.Growth),
			FormatCurrency(p.Assets),
		})
	}
	return t
}

func comparisonTable(results *domain.ScenarioComparison) cli.Table {
	t := cli.Table{
		Title:   "SCENARIO COMPARISON",
		Headers: []string{"Scenario", "Retire", "Daily budget", "At retirement", "Final", "Depleted"},
	}
	for _, sc := range results.Scenarios {
		t.Rows = append(t.Rows, []string{
			sc.Name,
			intToString(sc.Input.RetireAge),
			FormatDailyBudget(sc.Projection.DailyBudget),
			FormatCurrency(sc.Projection.RetirementAssets),
			FormatCurrency(sc.FinalAssets),
			cli.FormatYear(sc.DepletionYear),
		})
	}
	return t
}

func signed(s string, positive bool) string {
	if positive {
		return "+" + s
	}
	return s
}
