package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/pkg/dateutil"
)

// Configuration is the root of a scenario file.
type Configuration struct {
	Defaults  ScenarioInput `yaml:"defaults" json:"defaults"`
	Scenarios []Scenario    `yaml:"scenarios" json:"scenarios"`
}

// ScenarioInput carries optional overrides. A nil field falls through to the
// defaults block and, failing that, to zero.
type ScenarioInput struct {
	CurrentAge          *int             `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	BirthDate           *time.Time       `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	LifeExpectancy      *int             `yaml:"life_expectancy,omitempty" json:"life_expectancy,omitempty"`
	RetireAge           *int             `yaml:"retire_age,omitempty" json:"retire_age,omitempty"`
	StartingAssets      *decimal.Decimal `yaml:"starting_assets,omitempty" json:"starting_assets,omitempty"`
	MonthlyIncome       *decimal.Decimal `yaml:"monthly_income,omitempty" json:"monthly_income,omitempty"`
	MonthlyExpenses     *decimal.Decimal `yaml:"monthly_expenses,omitempty" json:"monthly_expenses,omitempty"`
	AnnualGrowthPercent *decimal.Decimal `yaml:"annual_growth_percent,omitempty" json:"annual_growth_percent,omitempty"`
}

// Scenario is a named set of overrides on top of Configuration.Defaults.
type Scenario struct {
	Name          string `yaml:"name" json:"name"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	ScenarioInput `yaml:",inline"`
}

// Overlay returns s with every field set in o replacing the one in s.
// A birth date in o also replaces an explicit current age in s, and vice versa.
func (s ScenarioInput) Overlay(o ScenarioInput) ScenarioInput {
	out := s
	if o.CurrentAge != nil {
		out.CurrentAge = o.CurrentAge
		out.BirthDate = nil
	}
	if o.BirthDate != nil {
		out.BirthDate = o.BirthDate
		out.CurrentAge = nil
	}
	if o.LifeExpectancy != nil {
		out.LifeExpectancy = o.LifeExpectancy
	}
	if o.RetireAge != nil {
		out.RetireAge = o.RetireAge
	}
	if o.StartingAssets != nil {
		out.StartingAssets = o.StartingAssets
	}
	if o.MonthlyIncome != nil {
		out.MonthlyIncome = o.MonthlyIncome
	}
	if o.MonthlyExpenses != nil {
		out.MonthlyExpenses = o.MonthlyExpenses
	}
	if o.AnnualGrowthPercent != nil {
		out.AnnualGrowthPercent = o.AnnualGrowthPercent
	}
	return out
}

// Resolve turns the overrides into a concrete input. The current age comes from
// BirthDate at now when a birth date is set.
func (s ScenarioInput) Resolve(now time.Time) ProjectionInput {
	in := ProjectionInput{
		CurrentAge:          intOrZero(s.CurrentAge),
		LifeExpectancy:      intOrZero(s.LifeExpectancy),
		RetireAge:           intOrZero(s.RetireAge),
		StartingAssets:      decOrZero(s.StartingAssets),
		MonthlyIncome:       decOrZero(s.MonthlyIncome),
		MonthlyExpenses:     decOrZero(s.MonthlyExpenses),
		AnnualGrowthPercent: decOrZero(s.AnnualGrowthPercent),
	}
	if s.BirthDate != nil {
		in.CurrentAge = dateutil.Age(*s.BirthDate, now)
	}
	return in
}

// InputFrom converts a concrete input back into a fully-populated override set.
func InputFrom(in ProjectionInput) ScenarioInput {
	return ScenarioInput{
		CurrentAge:          &in.CurrentAge,
		LifeExpectancy:      &in.LifeExpectancy,
		RetireAge:           &in.RetireAge,
		StartingAssets:      &in.StartingAssets,
		MonthlyIncome:       &in.MonthlyIncome,
		MonthlyExpenses:     &in.MonthlyExpenses,
		AnnualGrowthPercent: &in.AnnualGrowthPercent,
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func decOrZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}
