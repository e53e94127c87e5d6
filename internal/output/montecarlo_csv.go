package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/calculation"
)

// SimulationCSVReport exports volatile-growth simulation results.
type SimulationCSVReport struct {
	Result *calculation.MonteCarloResult
}

// WriteSummary writes aggregate metrics as Metric,Value,Description rows.
func (m *SimulationCSVReport) WriteSummary(w io.Writer) error {
	hundred := decimal.NewFromInt(100)
	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"Simulations", strconv.Itoa(m.Result.Simulations), "Number of simulated lifetimes"},
		{"Seed", strconv.FormatInt(m.Result.Seed, 10), "Seed of the first simulation"},
		{"Volatility", m.Result.Volatility.String(), "Standard deviation of yearly growth in percentage points"},
		{"Fixed-Rate Daily Budget", m.Result.ExpectedDailyBudget.StringFixed(2), "Daily budget with constant growth"},
		{"Median Daily Budget", m.Result.DailyBudget.P50.StringFixed(2), "Median daily budget across simulations"},
		{"Shortfall Rate", m.Result.ShortfallRate.Mul(hundred).StringFixed(2), "Percentage of simulations below the fixed-rate budget"},
	}
	return writeCSV(w, rows)
}

// WritePercentiles writes one row per reported percentile.
func (m *SimulationCSVReport) WritePercentiles(w io.Writer) error {
	r := m.Result
	rows := [][]string{
		{"Percentile", "DailyBudget", "RetirementAssets", "PeakAssets"},
		{"10th", r.DailyBudget.P10.StringFixed(2), r.RetirementAssets.P10.StringFixed(2), r.PeakAssets.P10.StringFixed(2)},
		{"25th", r.DailyBudget.P25.StringFixed(2), r.RetirementAssets.P25.StringFixed(2), r.PeakAssets.P25.StringFixed(2)},
		{"50th", r.DailyBudget.P50.StringFixed(2), r.RetirementAssets.P50.StringFixed(2), r.PeakAssets.P50.StringFixed(2)},
		{"75th", r.DailyBudget.P75.StringFixed(2), r.RetirementAssets.P75.StringFixed(2), r.PeakAssets.P75.StringFixed(2)},
		{"90th", r.DailyBudget.P90.StringFixed(2), r.RetirementAssets.P90.StringFixed(2), r.PeakAssets.P90.StringFixed(2)},
	}
	return writeCSV(w, rows)
}

// WriteOutcomes writes one row per simulation, in seed order.
func (m *SimulationCSVReport) WriteOutcomes(w io.Writer) error {
	rows := make([][]string, 0, len(m.Result.Outcomes)+1)
	rows = append(rows, []string{"Simulation", "Seed", "MeanGrowth", "DailyBudget", "RetirementAssets", "PeakAssets"})
	for i, o := range m.Result.Outcomes {
		rows = append(rows, []string{
			intToString(i + 1),
			strconv.FormatInt(m.Result.Seed+int64(i), 10),
			o.MeanGrowth.StringFixed(4),
			o.DailyBudget.StringFixed(2),
			o.RetirementAssets.StringFixed(2),
			o.PeakAssets.StringFixed(2),
		})
	}
	return writeCSV(w, rows)
}

// GenerateAllCSVReports writes summary, percentile and per-simulation files into dir.
func (m *SimulationCSVReport) GenerateAllCSVReports(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"simulation_summary.csv", m.WriteSummary},
		{"simulation_percentiles.csv", m.WritePercentiles},
		{"simulation_outcomes.csv", m.WriteOutcomes},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeCSVFile(path, f.write); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSVFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
