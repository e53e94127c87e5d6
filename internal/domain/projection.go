package domain

import (
	"github.com/shopspring/decimal"
)

// Phase tells which branch of the yearly step produced a point.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseDrawdown     Phase = "drawdown"
)

// ProjectionInput is an immutable snapshot of everything the projection needs.
// Nothing here is validated: ages may be out of order and amounts may be negative.
type ProjectionInput struct {
	CurrentAge          int             `json:"current_age" yaml:"current_age"`
	LifeExpectancy      int             `json:"life_expectancy" yaml:"life_expectancy"`
	RetireAge           int             `json:"retire_age" yaml:"retire_age"`
	StartingAssets      decimal.Decimal `json:"starting_assets" yaml:"starting_assets"`
	MonthlyIncome       decimal.Decimal `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses     decimal.Decimal `json:"monthly_expenses" yaml:"monthly_expenses"`
	AnnualGrowthPercent decimal.Decimal `json:"annual_growth_percent" yaml:"annual_growth_percent"`
}

// AnnualSavings is the yearly amount added during accumulation.
func (in ProjectionInput) AnnualSavings() decimal.Decimal {
	return in.MonthlyIncome.Sub(in.MonthlyExpenses).Mul(decimal.NewFromInt(12))
}

// YearSpan is LifeExpectancy - CurrentAge; negative when the ages are inverted.
func (in ProjectionInput) YearSpan() int {
	return in.LifeExpectancy - in.CurrentAge
}

// RetirementSpan is LifeExpectancy - RetireAge.
func (in ProjectionInput) RetirementSpan() int {
	return in.LifeExpectancy - in.RetireAge
}

// YearPoint is one simulated year. Assets is clamped at zero; the flow fields
// are taken from the unclamped running balance.
type YearPoint struct {
	Year         int             `json:"year"`
	Assets       decimal.Decimal `json:"assets"`
	Phase        Phase           `json:"phase"`
	Contribution decimal.Decimal `json:"contribution"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`
	Growth       decimal.Decimal `json:"growth"`
}

// ProjectionResult holds the yearly series and the two derived figures.
type ProjectionResult struct {
	Points           []YearPoint     `json:"points"`
	DaysRemaining    int             `json:"days_remaining"`
	RetirementAssets decimal.Decimal `json:"retirement_assets"`
	DailyBudget      decimal.Decimal `json:"daily_budget"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
}

// DailyBudgetWhole is the daily budget floored to a whole currency unit.
func (r ProjectionResult) DailyBudgetWhole() decimal.Decimal {
	return r.DailyBudget.Floor()
}

// PointAt returns the recorded point for year, if the year was simulated.
func (r ProjectionResult) PointAt(year int) (YearPoint, bool) {
	if len(r.Points) == 0 {
		return YearPoint{}, false
	}
	i := year - r.Points[0].Year
	if i < 0 || i >= len(r.Points) {
		return YearPoint{}, false
	}
	return r.Points[i], true
}

// FinalAssets is the last recorded (clamped) balance, or zero for an empty series.
func (r ProjectionResult) FinalAssets() decimal.Decimal {
	if len(r.Points) == 0 {
		return decimal.Zero
	}
	return r.Points[len(r.Points)-1].Assets
}

// Series splits the points into chart-ready axes.
func (r ProjectionResult) Series() (years []int, assets []float64) {
	years = make([]int, len(r.Points))
	assets = make([]float64, len(r.Points))
	for i, p := range r.Points {
		years[i] = p.Year
		assets[i] = p.Assets.InexactFloat64()
	}
	return years, assets
}
