package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/internal/output"
	"github.com/lifecount/countdown-calculator/internal/store"
)

func TestOutputGeneration(t *testing.T) {
	fixClock(t)
	results := loadAndRun(t)
	dir := t.TempDir()

	paths, err := output.GenerateAllReports(results, dir)
	require.NoError(t, err)
	require.Len(t, paths, 5)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}

	path, err := output.GenerateReport(results, "console", dir)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SCENARIO 3: Frugal")
	assert.Contains(t, string(data), "born 1995-04-01")

	path, err = output.GenerateReport(results, "detailed-csv", dir)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	// Frugal turns 29 in 2024 and 30 in 2025.
	assert.Contains(t, string(data), "Frugal,30,2025,accumulation,")
}

func TestHistoryRoundTrip(t *testing.T) {
	fixClock(t)
	results := loadAndRun(t)

	h, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	for _, sc := range results.Scenarios {
		_, err := h.SaveRun(sc.Name, sc.Input, sc.Projection)
		require.NoError(t, err)
	}
	runs, err := h.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	var reloaded []domain.ScenarioSummary
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		reloaded = append(reloaded, *calculation.Summarize(r.Name, r.Input, r.Result()))
	}
	again := calculation.Compare(reloaded)

	fresh, err := output.CSVSummarizer{}.Format(results)
	require.NoError(t, err)
	fromHistory, err := output.CSVSummarizer{}.Format(again)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(string(fresh)), strings.TrimSpace(string(fromHistory)))
	assert.Equal(t, results.RecommendedScenario, again.RecommendedScenario)
}
