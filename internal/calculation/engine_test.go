package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

func intPtr(i int) *int { return &i }

func decPtr(i int64) *decimal.Decimal {
	d := decimal.NewFromInt(i)
	return &d
}

func testConfig() *domain.Configuration {
	return &domain.Configuration{
		Defaults: domain.InputFrom(defaultInput()),
		Scenarios: []domain.Scenario{
			{Name: "Baseline"},
			{Name: "Retire at 55", ScenarioInput: domain.ScenarioInput{RetireAge: intPtr(55)}},
			{Name: "Never retire", ScenarioInput: domain.ScenarioInput{RetireAge: intPtr(85)}},
		},
	}
}

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	SetNowFunc(func() time.Time { return now })
	t.Cleanup(func() { SetNowFunc(time.Now) })
}

func TestRunScenario_UsesDefaultsAndOverrides(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := testConfig()

	summary, err := engine.RunScenario(context.Background(), cfg, &cfg.Scenarios[1])
	require.NoError(t, err)

	assert.Equal(t, "Retire at 55", summary.Name)
	assert.Equal(t, 55, summary.Input.RetireAge)
	assert.Equal(t, 30, summary.Input.CurrentAge)
	assert.Len(t, summary.Projection.Points, 56)
	assert.Equal(t, 55, summary.PeakYear)
	assert.Equal(t, 85, summary.DepletionYear)
	assert.True(t, summary.TotalContributions.Equal(decimal.NewFromInt(26*600000)))
}

func TestRunScenario_BirthDateDerivesAge(t *testing.T) {
	withFixedNow(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	birth := time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC)

	engine := NewCalculationEngine()
	cfg := testConfig()
	sc := domain.Scenario{Name: "Born 1985", ScenarioInput: domain.ScenarioInput{BirthDate: &birth}}

	summary, err := engine.RunScenario(context.Background(), cfg, &sc)
	require.NoError(t, err)
	assert.Equal(t, 39, summary.Input.CurrentAge)
	require.NotNil(t, summary.BirthDate)
	assert.Len(t, summary.Projection.Points, 85-39+1)
}

func TestRunScenario_CancelledContext(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := testConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunScenario(ctx, cfg, &cfg.Scenarios[0])
	assert.ErrorIs(t, err, context.Canceled)

	_, err = engine.RunScenarios(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenarios_Comparison(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	withFixedNow(t, now)

	engine := NewCalculationEngine()
	cmp, err := engine.RunScenarios(context.Background(), testConfig())
	require.NoError(t, err)

	require.Len(t, cmp.Scenarios, 3)
	assert.Equal(t, now, cmp.GeneratedAt)
	assert.Equal(t, "Baseline", cmp.Scenarios[0].Name)

	// Retiring at life expectancy leaves no days to spend, so its budget is zero.
	never, ok := cmp.Find("Never retire")
	require.True(t, ok)
	assert.True(t, never.Projection.DailyBudget.IsZero())
	assert.False(t, never.Depleted())

	// Working longer accumulates more per retired day.
	assert.Equal(t, "Baseline", cmp.RecommendedScenario)
	assert.Equal(t, "Never retire", cmp.LongestLasting)
	assert.NotEmpty(t, cmp.Assumptions)

	_, ok = cmp.Find("missing")
	assert.False(t, ok)
}

func TestRunInput_LogsSummary(t *testing.T) {
	engine := NewCalculationEngine()
	rl := &countingLogger{}
	engine.SetLogger(rl)

	summary := engine.RunInput("adhoc", defaultInput())
	assert.Equal(t, "adhoc", summary.Name)
	assert.Equal(t, 1, rl.infos)
	assert.Greater(t, rl.debugs, 0, "projector shares the engine logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

type countingLogger struct {
	NopLogger
	infos, debugs int
}

func (c *countingLogger) Infof(string, ...any)  { c.infos++ }
func (c *countingLogger) Debugf(string, ...any) { c.debugs++ }

func TestSummarize_DepletionAndPeak(t *testing.T) {
	in := domain.ProjectionInput{CurrentAge: 83, LifeExpectancy: 85, RetireAge: 70, StartingAssets: decimal.NewFromInt(300)}
	s := summarize(in, Project(in))

	assert.Equal(t, 83, s.PeakYear)
	assert.True(t, s.PeakAssets.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 85, s.DepletionYear)
	assert.True(t, s.TotalWithdrawals.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.FinalAssets.IsZero())
}

func TestSummarize_NeverPositiveIsNotDepletion(t *testing.T) {
	in := domain.ProjectionInput{CurrentAge: 30, LifeExpectancy: 32, RetireAge: 40, MonthlyExpenses: decimal.NewFromInt(10)}
	s := summarize(in, Project(in))
	assert.Equal(t, 0, s.DepletionYear)
}

func TestLongestLastingOrdering(t *testing.T) {
	depletedEarly := domain.ScenarioSummary{Name: "early", DepletionYear: 70}
	depletedLate := domain.ScenarioSummary{Name: "late", DepletionYear: 80}
	survives := domain.ScenarioSummary{Name: "survives", FinalAssets: decimal.NewFromInt(1)}

	assert.Equal(t, "late", longestLasting([]domain.ScenarioSummary{depletedEarly, depletedLate}))
	assert.Equal(t, "survives", longestLasting([]domain.ScenarioSummary{depletedLate, survives, depletedEarly}))
	assert.Equal(t, "", longestLasting(nil))
	assert.Equal(t, "", recommendScenario(nil))
}

func TestRecommendScenarioTieBreaksByName(t *testing.T) {
	a := domain.ScenarioSummary{Name: "b", Projection: domain.ProjectionResult{DailyBudget: decimal.NewFromInt(10)}}
	b := domain.ScenarioSummary{Name: "a", Projection: domain.ProjectionResult{DailyBudget: decimal.NewFromInt(10)}}
	assert.Equal(t, "a", recommendScenario([]domain.ScenarioSummary{a, b}))
}

func TestGenerateAssumptionsListsEachGrowthRateOnce(t *testing.T) {
	in := defaultInput()
	scenarios := []domain.ScenarioSummary{{Name: "x", Input: in}, {Name: "y", Input: in}}
	out := GenerateAssumptions(scenarios)
	count := 0
	for _, line := range out {
		if line == "Annual growth: 3% (x)" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.NotContains(t, out, "Annual growth: 3% (y)")
}

func TestRunScenarios_RecommendsHighestDailyBudget(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{
		Name:          "Rich",
		ScenarioInput: domain.ScenarioInput{StartingAssets: decPtr(500000000)},
	})
	cmp, err := NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "Rich", cmp.RecommendedScenario)
}
