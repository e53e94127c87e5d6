package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	calc "github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"budget": FormatDailyBudget,
	"pct":    FormatPercentage,
	"add":    func(a, b float64) float64 { return a + b },
	"sub":    func(a, b float64) float64 { return a - b },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type seriesData struct {
	Name   string    `json:"name"`
	Years  []int     `json:"years"`
	Assets []float64 `json:"assets"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(results)

	// Crossover of the second scenario over the first, when there are two
	var crossover *calc.CrossoverResult
	var nameA, nameB string
	if len(results.Scenarios) >= 2 {
		a, b := results.Scenarios[0], results.Scenarios[1]
		if co, err := calc.Crossover(a.Projection.Points, b.Projection.Points); err == nil && co != nil {
			crossover, nameA, nameB = co, a.Name, b.Name
		}
	}

	series := make([]seriesData, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		years, assets := sc.Projection.Series()
		series = append(series, seriesData{Name: sc.Name, Years: years, Assets: assets})
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Chart          *svgChart
		Crossover      *calc.CrossoverResult
		CrossoverA     string
		CrossoverB     string
		Series         []seriesData
	}{results, rec, assumptionsFor(results), buildSVGChart(results.Scenarios), crossover, nameA, nameB, series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
