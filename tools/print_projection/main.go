package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/config"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

// Prints the raw year-by-year projection with full decimal precision, for
// checking rounding and clamping by eye. Pass a scenario file to print each
// of its scenarios instead of the built-in example.
func main() {
	engine := calculation.NewCalculationEngine()

	var scenarios []domain.ScenarioSummary
	if len(os.Args) > 1 {
		cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		results, err := engine.RunScenarios(context.Background(), cfg)
		if err != nil {
			log.Fatal(err)
		}
		scenarios = results.Scenarios
	} else {
		in := domain.ProjectionInput{
			CurrentAge:          30,
			LifeExpectancy:      85,
			RetireAge:           60,
			StartingAssets:      decimal.NewFromInt(5000000),
			MonthlyIncome:       decimal.NewFromInt(300000),
			MonthlyExpenses:     decimal.NewFromInt(250000),
			AnnualGrowthPercent: decimal.NewFromInt(3),
		}
		scenarios = append(scenarios, *engine.RunInput("example", in))
	}

	for _, sc := range scenarios {
		fmt.Printf("== %s ==\n", sc.Name)
		for _, p := range sc.Projection.Points {
			fmt.Printf("%3d %-12s +%s -%s growth %s => %s\n",
				p.Year, p.Phase, p.Contribution.StringFixed(2), p.Withdrawal.StringFixed(2),
				p.Growth.StringFixed(2), p.Assets.String())
		}
		fmt.Printf("days remaining:    %d\n", sc.Projection.DaysRemaining)
		fmt.Printf("retirement assets: %s\n", sc.Projection.RetirementAssets.String())
		fmt.Printf("daily budget:      %s (whole %s)\n", sc.Projection.DailyBudget.String(), sc.Projection.DailyBudgetWhole().String())
		fmt.Printf("final balance:     %s\n", sc.Projection.FinalBalance.String())
		fmt.Println()
	}
}
