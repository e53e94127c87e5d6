package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecount/countdown-calculator/internal/calculation"
)

func simulateForTest(t *testing.T) *calculation.MonteCarloResult {
	t.Helper()
	res, err := calculation.NewCalculationEngine().Simulate(context.Background(), baseInput(), calculation.MonteCarloConfig{
		Simulations: 8,
		Volatility:  decimal.NewFromInt(12),
		Seed:        42,
	})
	require.NoError(t, err)
	return res
}

func TestSimulationCSVReport_Writers(t *testing.T) {
	report := &SimulationCSVReport{Result: simulateForTest(t)}

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf))
	summary := buf.String()
	assert.True(t, strings.HasPrefix(summary, "Metric,Value,Description\n"))
	assert.Contains(t, summary, "Simulations,8,")
	assert.Contains(t, summary, "Seed,42,")
	assert.Contains(t, summary, "Volatility,12,")

	buf.Reset()
	require.NoError(t, report.WritePercentiles(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[3], "50th,"))

	buf.Reset()
	require.NoError(t, report.WriteOutcomes(&buf))
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[1], "1,42,"))
	assert.True(t, strings.HasPrefix(lines[8], "8,49,"))
}

func TestSimulationCSVReport_GenerateAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sim")
	paths, err := (&SimulationCSVReport{Result: simulateForTest(t)}).GenerateAllCSVReports(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Equal(t, "simulation_outcomes.csv", filepath.Base(paths[2]))
}
