package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/internal/output"
)

func sampleComparison() *domain.ScenarioComparison {
	in := domain.ProjectionInput{
		CurrentAge:          40,
		LifeExpectancy:      80,
		RetireAge:           65,
		StartingAssets:      decimal.NewFromInt(1000000),
		MonthlyIncome:       decimal.NewFromInt(200000),
		MonthlyExpenses:     decimal.NewFromInt(180000),
		AnnualGrowthPercent: decimal.NewFromInt(2),
	}
	s := calculation.NewCalculationEngine().RunInput("Baseline", in)
	return calculation.Compare([]domain.ScenarioSummary{*s})
}

func TestGenerateReport_WritesFile(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "detailed-csv", "html", "pdf", "lite"} {
		path, err := output.GenerateReport(sampleComparison(), format, dir)
		require.NoError(t, err, format)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, strings.HasPrefix(filepath.Base(path), "lifecount_report_"))
		assert.Equal(t, "."+output.Extension(format), filepath.Ext(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestGenerateReport_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := output.GenerateReport(sampleComparison(), "json", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(sampleComparison(), "xml", t.TempDir())
	require.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestGenerateAllReports(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateAllReports(sampleComparison(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	exts := map[string]bool{}
	for _, p := range paths {
		assert.FileExists(t, p)
		exts[filepath.Ext(p)] = true
	}
	assert.Equal(t, map[string]bool{".txt": true, ".csv": true, ".json": true, ".html": true, ".pdf": true}, exts)

	first, err := output.GenerateReport(sampleComparison(), "all", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(first))
}

func TestWriteFormatted_PropagatesFormatError(t *testing.T) {
	failing := output.FormatterFunc{ID: "broken", F: func(*domain.ScenarioComparison) ([]byte, error) {
		return nil, assert.AnError
	}}
	_, err := output.WriteFormatted(failing, sampleComparison(), t.TempDir(), "txt")
	require.ErrorIs(t, err, assert.AnError)
}

func TestComparisonGeneratedAtIsSet(t *testing.T) {
	cmp := sampleComparison()
	assert.WithinDuration(t, time.Now(), cmp.GeneratedAt, time.Minute)
}
