package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// maxSweepPoints bounds a sweep so a tiny step cannot run away.
const maxSweepPoints = 1000

// SensitivityPoint holds the outcome of one variation of the input
type SensitivityPoint struct {
	GrowthPercent    decimal.Decimal `json:"growth_percent"`
	RetireAge        int             `json:"retire_age"`
	DailyBudget      decimal.Decimal `json:"daily_budget"`
	RetirementAssets decimal.Decimal `json:"retirement_assets"`
	FinalAssets      decimal.Decimal `json:"final_assets"`
	PeakAssets       decimal.Decimal `json:"peak_assets"`
	DepletionYear    int             `json:"depletion_year"`
}

// buildGrowthRates generates growth rates from min to max inclusive with the given step
func buildGrowthRates(min, max, step decimal.Decimal) ([]decimal.Decimal, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidRange, step)
	}
	if min.GreaterThan(max) {
		return nil, fmt.Errorf("%w: min %s is above max %s", ErrInvalidRange, min, max)
	}
	var rates []decimal.Decimal
	for r := min; r.LessThanOrEqual(max); r = r.Add(step) {
		if len(rates) == maxSweepPoints {
			return nil, fmt.Errorf("%w: more than %d points", ErrInvalidRange, maxSweepPoints)
		}
		rates = append(rates, r)
	}
	return rates, nil
}

// SweepGrowthRates re-runs the projection for each growth rate in [min, max].
func (ce *CalculationEngine) SweepGrowthRates(in domain.ProjectionInput, min, max, step decimal.Decimal) ([]SensitivityPoint, error) {
	rates, err := buildGrowthRates(min, max, step)
	if err != nil {
		return nil, err
	}
	out := make([]SensitivityPoint, 0, len(rates))
	for _, r := range rates {
		variant := in
		variant.AnnualGrowthPercent = r
		out = append(out, ce.sensitivityPoint(variant))
	}
	ce.Logger.Debugf("growth sweep: %d points from %s%% to %s%%", len(out), min, max)
	return out, nil
}

// SweepRetireAges re-runs the projection for each retirement age in [from, to].
func (ce *CalculationEngine) SweepRetireAges(in domain.ProjectionInput, from, to int) ([]SensitivityPoint, error) {
	if from > to {
		return nil, fmt.Errorf("%w: retire age %d is after %d", ErrInvalidRange, from, to)
	}
	if to-from >= maxSweepPoints {
		return nil, fmt.Errorf("%w: more than %d points", ErrInvalidRange, maxSweepPoints)
	}
	out := make([]SensitivityPoint, 0, to-from+1)
	for age := from; age <= to; age++ {
		variant := in
		variant.RetireAge = age
		out = append(out, ce.sensitivityPoint(variant))
	}
	ce.Logger.Debugf("retire age sweep: %d points from %d to %d", len(out), from, to)
	return out, nil
}

func (ce *CalculationEngine) sensitivityPoint(in domain.ProjectionInput) SensitivityPoint {
	result := ce.Projector.Project(in)
	s := summarize(in, result)
	return SensitivityPoint{
		GrowthPercent:    in.AnnualGrowthPercent,
		RetireAge:        in.RetireAge,
		DailyBudget:      result.DailyBudget,
		RetirementAssets: result.RetirementAssets,
		FinalAssets:      s.FinalAssets,
		PeakAssets:       s.PeakAssets,
		DepletionYear:    s.DepletionYear,
	}
}
