package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_ZeroVolatilityMatchesProjection(t *testing.T) {
	ce := NewCalculationEngine()
	in := defaultInput()

	res, err := ce.Simulate(context.Background(), in, MonteCarloConfig{Simulations: 20, Seed: 7})
	require.NoError(t, err)

	want := Project(in)
	for _, p := range []decimal.Decimal{res.DailyBudget.P10, res.DailyBudget.P50, res.DailyBudget.P90} {
		assert.True(t, p.Equal(want.DailyBudget), "got %s want %s", p, want.DailyBudget)
	}
	assert.True(t, res.RetirementAssets.P50.Equal(want.RetirementAssets))
	assert.True(t, res.ExpectedDailyBudget.Equal(want.DailyBudget))
	assert.True(t, res.ShortfallRate.IsZero())
	assert.Equal(t, int64(7), res.Seed)
	assert.Len(t, res.Outcomes, 20)
}

func TestSimulate_ReproducibleAcrossWorkerCounts(t *testing.T) {
	ce := NewCalculationEngine()
	in := defaultInput()
	cfg := MonteCarloConfig{Simulations: 50, Volatility: decimal.NewFromInt(10), Seed: 42, Workers: 1}

	a, err := ce.Simulate(context.Background(), in, cfg)
	require.NoError(t, err)
	cfg.Workers = 8
	b, err := ce.Simulate(context.Background(), in, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.DailyBudget, b.DailyBudget)
	assert.Equal(t, a.ShortfallRate, b.ShortfallRate)
	for i := range a.Outcomes {
		assert.True(t, a.Outcomes[i].DailyBudget.Equal(b.Outcomes[i].DailyBudget), "outcome %d", i)
	}
}

func TestSimulate_VolatilitySpreadsOutcomes(t *testing.T) {
	ce := NewCalculationEngine()
	res, err := ce.Simulate(context.Background(), defaultInput(), MonteCarloConfig{
		Simulations: 200,
		Volatility:  decimal.NewFromInt(8),
		Seed:        1,
	})
	require.NoError(t, err)

	d := res.DailyBudget
	assert.True(t, d.P10.LessThanOrEqual(d.P25))
	assert.True(t, d.P25.LessThanOrEqual(d.P50))
	assert.True(t, d.P50.LessThanOrEqual(d.P75))
	assert.True(t, d.P75.LessThanOrEqual(d.P90))
	assert.True(t, d.P90.GreaterThan(d.P10))
	assert.True(t, res.ShortfallRate.IsPositive())
	assert.True(t, res.ShortfallRate.LessThan(decimal.NewFromInt(1)))

	for _, o := range res.Outcomes {
		assert.False(t, o.RetirementAssets.IsNegative())
		assert.True(t, o.PeakAssets.GreaterThanOrEqual(o.RetirementAssets))
	}
}

func TestSimulate_UsesSeedFuncWhenUnset(t *testing.T) {
	orig := seedFunc
	SetSeedFunc(func() int64 { return 99 })
	t.Cleanup(func() { SetSeedFunc(orig) })

	res, err := NewCalculationEngine().Simulate(context.Background(), defaultInput(), MonteCarloConfig{Simulations: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(99), res.Seed)
}

func TestSimulate_InvalidConfig(t *testing.T) {
	ce := NewCalculationEngine()
	for name, cfg := range map[string]MonteCarloConfig{
		"no runs":             {Simulations: 0},
		"too many runs":       {Simulations: maxSimulations + 1},
		"negative volatility": {Simulations: 10, Volatility: decimal.NewFromInt(-1)},
	} {
		_, err := ce.Simulate(context.Background(), defaultInput(), cfg)
		assert.ErrorIs(t, err, ErrInvalidSimulation, name)
	}
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().Simulate(ctx, defaultInput(), MonteCarloConfig{Simulations: 5, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProjectWithRates(t *testing.T) {
	in := defaultInput()
	pe := NewProjectionEngine(nil)

	// No rates behaves like Project.
	assert.Equal(t, Project(in).DailyBudget.String(), pe.ProjectWithRates(in, nil).DailyBudget.String())

	// A zero first year leaves only the savings in the first point.
	res := pe.ProjectWithRates(in, []decimal.Decimal{decimal.Zero})
	assert.Equal(t, "5600000.00", res.Points[0].Assets.StringFixed(2))
	assert.True(t, res.Points[0].Growth.IsZero())
	// Later years fall back to the input rate.
	assert.Equal(t, "6386000.00", res.Points[1].Assets.StringFixed(2))

	// -100% wipes the balance for that year.
	res = pe.ProjectWithRates(in, []decimal.Decimal{decimal.NewFromInt(-100)})
	assert.True(t, res.Points[0].Assets.IsZero())
}
