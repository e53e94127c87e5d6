package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// PDFFormatter renders an A4 report with a summary table, an asset chart
// and a year-by-year table per scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

type pdfReport struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	results *domain.ScenarioComparison
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), results: results}
	// Core fonts are cp1252; translate so symbols like ¥ and € survive.
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("lifecount asset projection", true)

	r.addSummaryPage()
	for i := range results.Scenarios {
		r.addScenarioPage(&results.Scenarios[i])
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Asset Projection", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(contentWidth, 6, "Generated: "+r.results.GeneratedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Scenarios")
	headers := []string{"Scenario", "Retire", "Days left", "Daily budget", "At retirement", "Final", "Depleted"}
	widths := []float64{44, 14, 20, 26, 30, 26, 20}
	r.drawTableHeader(headers, widths)
	rec := AnalyzeScenarios(r.results)
	for _, sc := range r.results.Scenarios {
		r.drawTableRow([]string{
			sc.Name,
			strconv.Itoa(sc.Input.RetireAge),
			cli.FormatNumber(int64(sc.Projection.DaysRemaining)),
			FormatCurrency(sc.Projection.DailyBudgetWhole()),
			FormatCurrency(sc.Projection.RetirementAssets),
			FormatCurrency(sc.FinalAssets),
			depletedLabel(sc),
		}, widths, sc.Name == rec.ScenarioName)
	}
	r.pdf.Ln(6)

	if frame, ok := newChartFrame(r.results.Scenarios, marginLeft+18, 0, contentWidth-22, 80); ok {
		if r.pdf.GetY() > 160 {
			r.pdf.AddPage()
		}
		r.drawSectionHeader("Assets by age")
		frame.Y = r.pdf.GetY() + 2
		r.drawChart(frame)
		r.pdf.SetY(frame.Y + frame.H + 14)
	}

	r.drawSectionHeader("Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptionsFor(r.results) {
		r.pdf.MultiCell(contentWidth, 5, r.tr("- "+a), "", "L", false)
	}
}

func (r *pdfReport) drawChart(f chartFrame) {
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetLineWidth(0.1)
	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(110, 110, 105)
	for _, v := range f.YTicks(4) {
		_, y := f.Point(f.MinYear, v)
		r.pdf.Line(f.X, y, f.X+f.W, y)
		r.pdf.SetXY(f.X-18, y-2)
		r.pdf.CellFormat(16, 4, cli.FormatCompact(v), "", 0, "R", false, 0, "")
	}
	for _, yr := range f.XTicks() {
		x, _ := f.Point(yr, 0)
		r.pdf.SetXY(x-5, f.Y+f.H+1)
		r.pdf.CellFormat(10, 4, strconv.Itoa(yr), "", 0, "C", false, 0, "")
	}

	r.pdf.SetLineWidth(0.5)
	legendX := f.X
	for i, sc := range r.results.Scenarios {
		red, green, blue := hexRGB(chartPalette[i%len(chartPalette)])
		r.pdf.SetDrawColor(red, green, blue)
		years, assets := sc.Projection.Series()
		for j := 1; j < len(years); j++ {
			x1, y1 := f.Point(years[j-1], assets[j-1])
			x2, y2 := f.Point(years[j], assets[j])
			r.pdf.Line(x1, y1, x2, y2)
		}

		r.pdf.SetFillColor(red, green, blue)
		r.pdf.Rect(legendX, f.Y+f.H+7, 3, 3, "F")
		label := r.tr(sc.Name)
		r.pdf.SetXY(legendX+4, f.Y+f.H+6.5)
		w := r.pdf.GetStringWidth(label) + 2
		r.pdf.CellFormat(w, 4, label, "", 0, "L", false, 0, "")
		legendX += w + 8
	}
	r.pdf.SetLineWidth(0.2)
}

func (r *pdfReport) addScenarioPage(sc *domain.ScenarioSummary) {
	r.pdf.AddPage()
	r.drawSectionHeader(sc.Name)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	if sc.Description != "" {
		r.pdf.MultiCell(contentWidth, 5, r.tr(sc.Description), "", "L", false)
		r.pdf.Ln(2)
	}
	in := sc.Input
	lines := []string{
		fmt.Sprintf("Age %d, life expectancy %d, retiring at %d", in.CurrentAge, in.LifeExpectancy, in.RetireAge),
		fmt.Sprintf("Starting assets %s, monthly income %s, monthly expenses %s, growth %s",
			FormatCurrency(in.StartingAssets), FormatCurrency(in.MonthlyIncome), FormatCurrency(in.MonthlyExpenses), cli.FormatPercent(in.AnnualGrowthPercent)),
		fmt.Sprintf("Days remaining %s, daily budget %s", cli.FormatNumber(int64(sc.Projection.DaysRemaining)), FormatDailyBudget(sc.Projection.DailyBudget)),
	}
	for _, l := range lines {
		r.pdf.CellFormat(contentWidth, 5, r.tr(l), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)

	headers := []string{"Age", "Phase", "Contribution", "Withdrawal", "Growth", "Assets"}
	widths := []float64{16, 28, 34, 34, 34, 34}
	r.drawTableHeader(headers, widths)
	for _, p := range sc.Projection.Points {
		if r.pdf.GetY() > 270 {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		r.drawTableRow([]string{
			strconv.Itoa(p.Year),
			string(p.Phase),
			FormatCurrency(p.Contribution),
			FormatCurrency(p.Withdrawal),
			FormatCurrency(p.Growth),
			FormatCurrency(p.Assets),
		}, widths, p.Year == in.RetireAge)
	}
}

// Helper functions

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 9, r.tr(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(231, 243, 241)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, r.tr(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

// hexRGB parses "#RRGGBB"; malformed input yields black.
func hexRGB(s string) (int, int, int) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
