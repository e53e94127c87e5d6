package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestScenarioInput_OverlayReplacesSetFields(t *testing.T) {
	base := ScenarioInput{
		CurrentAge:      intPtr(30),
		LifeExpectancy:  intPtr(85),
		RetireAge:       intPtr(60),
		MonthlyIncome:   decPtr("300000"),
		MonthlyExpenses: decPtr("250000"),
	}
	over := ScenarioInput{RetireAge: intPtr(55), MonthlyExpenses: decPtr("200000")}

	got := base.Overlay(over)

	assert.Equal(t, 30, *got.CurrentAge)
	assert.Equal(t, 85, *got.LifeExpectancy)
	assert.Equal(t, 55, *got.RetireAge)
	assert.True(t, got.MonthlyIncome.Equal(decimal.NewFromInt(300000)))
	assert.True(t, got.MonthlyExpenses.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, 60, *base.RetireAge, "overlay must not mutate the receiver")
}

func TestScenarioInput_BirthDateAndAgeReplaceEachOther(t *testing.T) {
	birth := time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC)
	withAge := ScenarioInput{CurrentAge: intPtr(30)}
	withBirth := ScenarioInput{BirthDate: &birth}

	got := withAge.Overlay(withBirth)
	assert.Nil(t, got.CurrentAge)
	require.NotNil(t, got.BirthDate)

	got = withBirth.Overlay(withAge)
	assert.Nil(t, got.BirthDate)
	assert.Equal(t, 30, *got.CurrentAge)
}

func TestScenarioInput_Resolve(t *testing.T) {
	birth := time.Date(1995, 4, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	in := ScenarioInput{
		BirthDate:           &birth,
		LifeExpectancy:      intPtr(85),
		AnnualGrowthPercent: decPtr("3"),
	}.Resolve(now)

	assert.Equal(t, 29, in.CurrentAge)
	assert.Equal(t, 85, in.LifeExpectancy)
	assert.Equal(t, 0, in.RetireAge, "unset fields resolve to zero")
	assert.True(t, in.StartingAssets.IsZero())
	assert.True(t, in.AnnualGrowthPercent.Equal(decimal.NewFromInt(3)))
}

func TestInputFromRoundTrip(t *testing.T) {
	in := ProjectionInput{
		CurrentAge:          30,
		LifeExpectancy:      85,
		RetireAge:           60,
		StartingAssets:      decimal.NewFromInt(5000000),
		MonthlyIncome:       decimal.NewFromInt(300000),
		MonthlyExpenses:     decimal.NewFromInt(250000),
		AnnualGrowthPercent: decimal.NewFromInt(3),
	}
	got := InputFrom(in).Resolve(time.Now())
	assert.Equal(t, in.CurrentAge, got.CurrentAge)
	assert.Equal(t, in.RetireAge, got.RetireAge)
	assert.True(t, in.StartingAssets.Equal(got.StartingAssets))
	assert.True(t, in.AnnualGrowthPercent.Equal(got.AnnualGrowthPercent))
}

func TestScenarioYAMLInline(t *testing.T) {
	src := "name: Frugal\n" +
		"birth_date: 1995-04-01\n" +
		"monthly_expenses: 200000\n" +
		"annual_growth_percent: 2.5\n"

	var sc Scenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &sc))

	assert.Equal(t, "Frugal", sc.Name)
	require.NotNil(t, sc.BirthDate)
	assert.Equal(t, 1995, sc.BirthDate.Year())
	require.NotNil(t, sc.MonthlyExpenses)
	assert.True(t, sc.MonthlyExpenses.Equal(decimal.NewFromInt(200000)))
	assert.True(t, sc.AnnualGrowthPercent.Equal(decimal.RequireFromString("2.5")))
	assert.Nil(t, sc.RetireAge)
}
