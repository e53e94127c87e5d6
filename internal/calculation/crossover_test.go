package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

func makePoints(startYear int, assets ...int64) []domain.YearPoint {
	out := make([]domain.YearPoint, len(assets))
	for i, a := range assets {
		out[i] = domain.YearPoint{Year: startYear + i, Assets: decimal.NewFromInt(a)}
	}
	return out
}

// Test exact year crossover
func TestCrossover_ExactYear(t *testing.T) {
	a := makePoints(60, 100, 200)
	b := makePoints(60, 50, 200)

	res, err := Crossover(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if res.Year != 61 {
		t.Fatalf("expected year 61, got %d", res.Year)
	}
	if !res.Fraction.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected fraction 1, got %s", res.Fraction)
	}
	if !res.Assets.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected assets 200, got %s", res.Assets)
	}
}

// Test mid-year interpolation crossover
func TestCrossover_Interpolation(t *testing.T) {
	// diff B-A goes from -20 to +20, so the lines cross half way
	a := makePoints(60, 100, 200)
	b := makePoints(60, 80, 220)

	res, err := Crossover(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if !res.Fraction.Equal(decimal.NewFromFloat(0.5)) {
		t.Fatalf("expected fraction 0.5, got %s", res.Fraction)
	}
	if res.FractionalYear != 60.5 {
		t.Fatalf("expected fractional year 60.5, got %v", res.FractionalYear)
	}
	if !res.Assets.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected assets 150, got %s", res.Assets)
	}
}

// Test no crossover when B stays below A
func TestCrossover_None(t *testing.T) {
	res, err := Crossover(makePoints(60, 100, 200, 300), makePoints(60, 50, 60, 70))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected no crossover, got %+v", res)
	}
}

// Test B already ahead at the first shared year
func TestCrossover_StartsAhead(t *testing.T) {
	res, err := Crossover(makePoints(60, 100, 50), makePoints(60, 100, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil when B starts level, got %+v", res)
	}
}

// Only overlapping years are compared
func TestCrossover_AlignsByYear(t *testing.T) {
	a := makePoints(58, 10, 20, 100, 100)
	b := makePoints(60, 50, 150)

	res, err := Crossover(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.Year != 61 {
		t.Fatalf("expected crossover in 61, got %+v", res)
	}
}

func TestCrossover_Errors(t *testing.T) {
	if _, err := Crossover(nil, makePoints(60, 1)); err == nil {
		t.Fatalf("expected error for empty projection")
	}
	if _, err := Crossover(makePoints(30, 1, 2), makePoints(60, 1, 2)); err == nil {
		t.Fatalf("expected error for disjoint projections")
	}
}

// Real projections: retiring later overtakes retiring earlier after the earlier date
func TestCrossover_RetireLaterOvertakes(t *testing.T) {
	early := defaultInput()
	early.RetireAge = 50
	early.StartingAssets = decimal.NewFromInt(20000000)
	early.MonthlyIncome = decimal.Zero
	early.MonthlyExpenses = decimal.Zero

	late := early
	late.StartingAssets = decimal.NewFromInt(10000000)
	late.MonthlyIncome = decimal.NewFromInt(500000)
	late.RetireAge = 70

	res, err := Crossover(Project(early).Points, Project(late).Points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected the later retiree to overtake")
	}
	if res.Year <= 30 || res.Year > 85 {
		t.Fatalf("crossover year %d outside projection", res.Year)
	}
}
