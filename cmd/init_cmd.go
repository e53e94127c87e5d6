package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/config"
	"github.com/lifecount/countdown-calculator/internal/domain"
	moneyutil "github.com/lifecount/countdown-calculator/pkg/decimal"
)

var (
	flagInitDefaults bool
	flagInitForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a scenario file",
	Long:  "Ask for the baseline inputs and write a scenario file with a baseline and an early-retirement scenario.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitDefaults, "defaults", false, "Write the example scenario file without prompting")
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "lifecount.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	if !flagInitDefaults {
		var err error
		if cfg, err = promptConfiguration(); err != nil {
			return err
		}
	}

	if err := parser.SaveConfiguration(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %d scenarios to %s\n", len(cfg.Scenarios), path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run `lifecount run %s` to see them.\n", path)
	return nil
}

type wizardAnswers struct {
	name                             string
	age, lifeExpectancy, retireAge   string
	assets, income, expenses, growth string
}

func promptConfiguration() (*domain.Configuration, error) {
	a := wizardAnswers{
		name: "Baseline", age: flagAge, lifeExpectancy: flagLifeExpectancy, retireAge: flagRetireAge,
		assets: flagAssets, income: flagIncome, expenses: flagExpenses, growth: flagGrowth,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Scenario name").Value(&a.name).Validate(requireText),
			huh.NewInput().Title("Current age").Value(&a.age).Validate(requireNumber),
			huh.NewInput().Title("Life expectancy").Value(&a.lifeExpectancy).Validate(requireNumber),
			huh.NewInput().Title("Retirement age").Value(&a.retireAge).Validate(requireNumber),
		),
		huh.NewGroup(
			huh.NewInput().Title("Starting assets").Value(&a.assets).Validate(requireNumber),
			huh.NewInput().Title("Monthly income").Value(&a.income).Validate(requireNumber),
			huh.NewInput().Title("Monthly expenses").Value(&a.expenses).Validate(requireNumber),
			huh.NewInput().Title("Annual growth %").Value(&a.growth).Validate(requireNumber),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, errors.New("init cancelled")
		}
		return nil, err
	}
	return a.configuration(), nil
}

// configuration turns the answers into a baseline plus a retire-five-years-earlier scenario.
func (a wizardAnswers) configuration() *domain.Configuration {
	in := domain.ProjectionInput{
		CurrentAge:          moneyutil.ParseIntOrZero(a.age),
		LifeExpectancy:      moneyutil.ParseIntOrZero(a.lifeExpectancy),
		RetireAge:           moneyutil.ParseIntOrZero(a.retireAge),
		StartingAssets:      moneyutil.ParseOrZero(a.assets),
		MonthlyIncome:       moneyutil.ParseOrZero(a.income),
		MonthlyExpenses:     moneyutil.ParseOrZero(a.expenses),
		AnnualGrowthPercent: moneyutil.ParseOrZero(a.growth),
	}
	earlier := in.RetireAge - 5
	return &domain.Configuration{
		Defaults: domain.InputFrom(in),
		Scenarios: []domain.Scenario{
			{Name: strings.TrimSpace(a.name)},
			{
				Name:          "Retire at " + strconv.Itoa(earlier),
				Description:   "Stop working five years earlier",
				ScenarioInput: domain.ScenarioInput{RetireAge: &earlier},
			},
		},
	}
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func requireNumber(s string) error {
	if _, err := moneyutil.NewMoneyFromString(s); err != nil {
		return errors.New("enter a number")
	}
	return nil
}
