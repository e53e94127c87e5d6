package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/pkg/dateutil"
)

// CSVDetailedExporter provides the raw projection per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "CalendarYear", "Phase", "Contribution", "Withdrawal", "Growth", "Assets"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Projection.Points {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				calendarYear(sc, yr.Year),
				string(yr.Phase),
				yr.Contribution.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.Growth.StringFixed(2),
				yr.Assets.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// calendarYear is only known when the scenario was given a birth date.
func calendarYear(sc domain.ScenarioSummary, age int) string {
	if sc.BirthDate == nil {
		return ""
	}
	return intToString(dateutil.CalendarYearAtAge(*sc.BirthDate, age))
}
