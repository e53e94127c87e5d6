package calculation

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// maxSimulations bounds a single Monte Carlo run.
const maxSimulations = 100000

// MonteCarloConfig holds configuration for Monte Carlo simulations
type MonteCarloConfig struct {
	Simulations int
	// Standard deviation of the yearly growth rate, in percentage points,
	// around the input's AnnualGrowthPercent
	Volatility decimal.Decimal
	// Seed 0 picks a time-based seed; the chosen seed is reported in the result
	Seed int64
	// Concurrent simulations; 0 means 10
	Workers int
}

// MonteCarloResult represents the results of a Monte Carlo simulation
type MonteCarloResult struct {
	Simulations         int                 `json:"simulations"`
	Seed                int64               `json:"seed"`
	Volatility          decimal.Decimal     `json:"volatility"`
	ExpectedDailyBudget decimal.Decimal     `json:"expected_daily_budget"`
	DailyBudget         PercentileRanges    `json:"daily_budget"`
	RetirementAssets    PercentileRanges    `json:"retirement_assets"`
	PeakAssets          PercentileRanges    `json:"peak_assets"`
	ShortfallRate       decimal.Decimal     `json:"shortfall_rate"`
	Outcomes            []SimulationOutcome `json:"-"`
}

// SimulationOutcome represents a single Monte Carlo simulation outcome
type SimulationOutcome struct {
	DailyBudget      decimal.Decimal `json:"daily_budget"`
	RetirementAssets decimal.Decimal `json:"retirement_assets"`
	PeakAssets       decimal.Decimal `json:"peak_assets"`
	MeanGrowth       decimal.Decimal `json:"mean_growth"`
}

// PercentileRanges represents percentile ranges for Monte Carlo results
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// Simulate re-runs the projection with a normally distributed growth rate
// drawn independently for every year. Simulation i draws from its own source
// seeded with Seed+i, so the result does not depend on Workers.
func (ce *CalculationEngine) Simulate(ctx context.Context, in domain.ProjectionInput, config MonteCarloConfig) (*MonteCarloResult, error) {
	if config.Simulations <= 0 || config.Simulations > maxSimulations {
		return nil, fmt.Errorf("%w: simulations must be between 1 and %d, got %d", ErrInvalidSimulation, maxSimulations, config.Simulations)
	}
	if config.Volatility.IsNegative() {
		return nil, fmt.Errorf("%w: negative volatility %s", ErrInvalidSimulation, config.Volatility)
	}
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	workers := config.Workers
	if workers <= 0 {
		workers = 10
	}

	projector := NewProjectionEngine(NopLogger{})
	results := make([]SimulationOutcome, config.Simulations)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := 0; i < config.Simulations; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(simIndex int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(config.Seed + int64(simIndex)))
			results[simIndex] = runSingleSimulation(projector, in, config.Volatility, rng)
		}(i)
	}
	wg.Wait()

	expected := projector.Project(in).DailyBudget
	shortfalls := 0
	for _, r := range results {
		if r.DailyBudget.LessThan(expected) {
			shortfalls++
		}
	}

	result := &MonteCarloResult{
		Simulations:         config.Simulations,
		Seed:                config.Seed,
		Volatility:          config.Volatility,
		ExpectedDailyBudget: expected,
		DailyBudget:         percentiles(results, func(o SimulationOutcome) decimal.Decimal { return o.DailyBudget }),
		RetirementAssets:    percentiles(results, func(o SimulationOutcome) decimal.Decimal { return o.RetirementAssets }),
		PeakAssets:          percentiles(results, func(o SimulationOutcome) decimal.Decimal { return o.PeakAssets }),
		ShortfallRate:       decimal.NewFromInt(int64(shortfalls)).Div(decimal.NewFromInt(int64(len(results)))),
		Outcomes:            results,
	}
	ce.Logger.Infof("simulated %d runs (seed %d): median daily budget %s", config.Simulations, config.Seed, result.DailyBudget.P50.Floor())
	return result, nil
}

// runSingleSimulation runs a single Monte Carlo simulation
func runSingleSimulation(projector *ProjectionEngine, in domain.ProjectionInput, volatility decimal.Decimal, rng *rand.Rand) SimulationOutcome {
	years := in.YearSpan() + 1
	if years < 0 {
		years = 0
	}
	minRate := decimal.NewFromInt(-100)
	rates := make([]decimal.Decimal, years)
	sum := decimal.Zero
	for i := range rates {
		r := in.AnnualGrowthPercent.Add(volatility.Mul(decimal.NewFromFloat(rng.NormFloat64())))
		if r.LessThan(minRate) {
			r = minRate
		}
		rates[i] = r
		sum = sum.Add(r)
	}

	res := projector.ProjectWithRates(in, rates)
	out := SimulationOutcome{
		DailyBudget:      res.DailyBudget,
		RetirementAssets: res.RetirementAssets,
		PeakAssets:       decimal.Zero,
		MeanGrowth:       in.AnnualGrowthPercent,
	}
	for _, p := range res.Points {
		if p.Assets.GreaterThan(out.PeakAssets) {
			out.PeakAssets = p.Assets
		}
	}
	if years > 0 {
		out.MeanGrowth = sum.Div(decimal.NewFromInt(int64(years)))
	}
	return out
}

// percentiles sorts the extracted values and picks the 10th..90th percentiles by index.
func percentiles(outcomes []SimulationOutcome, value func(SimulationOutcome) decimal.Decimal) PercentileRanges {
	vals := make([]decimal.Decimal, len(outcomes))
	for i, o := range outcomes {
		vals[i] = value(o)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i].LessThan(vals[j]) })

	n := len(vals)
	return PercentileRanges{
		P10: vals[n/10],
		P25: vals[n/4],
		P50: vals[n/2],
		P75: vals[3*n/4],
		P90: vals[9*n/10],
	}
}
