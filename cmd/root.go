// Package cmd implements the lifecount CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/config"
	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/internal/output"
	"github.com/lifecount/countdown-calculator/internal/store"
	moneyutil "github.com/lifecount/countdown-calculator/pkg/decimal"
)

var (
	flagAge            string
	flagLifeExpectancy string
	flagRetireAge      string
	flagAssets         string
	flagIncome         string
	flagExpenses       string
	flagGrowth         string

	flagFormat    string
	flagOut       string
	flagNoHistory bool
	flagVerbose   bool
)

// Set up by the root command before any subcommand runs.
var (
	logger = cli.NewLogger(os.Stderr, false)
	prefs  = config.DefaultPreferences()
)

var rootCmd = &cobra.Command{
	Use:   "lifecount",
	Short: "Countdown calculator for assets and days left",
	Long: "Project savings year by year until retirement, draw them down until life expectancy,\n" +
		"and see how many days remain and how much can be spent per day.",
	PersistentPreRunE: setup,
	RunE:              runProjection,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAge, "age", "30", "Current age")
	pf.StringVar(&flagLifeExpectancy, "life-expectancy", "85", "Life expectancy")
	pf.StringVar(&flagRetireAge, "retire-age", "60", "Retirement age")
	pf.StringVar(&flagAssets, "assets", "5000000", "Starting assets")
	pf.StringVar(&flagIncome, "income", "300000", "Monthly income")
	pf.StringVar(&flagExpenses, "expenses", "250000", "Monthly expenses")
	pf.StringVar(&flagGrowth, "growth", "3", "Annual growth in percent")

	pf.StringVarP(&flagFormat, "format", "f", "", "Output format (see `lifecount formats`); defaults to the preference")
	pf.StringVarP(&flagOut, "out", "o", "", "Write the report to this directory instead of stdout")
	pf.BoolVar(&flagNoHistory, "no-history", false, "Do not record runs in the history database")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger = cli.NewLogger(cmd.ErrOrStderr(), flagVerbose)

	p, err := config.LoadPreferences()
	if err != nil {
		logger.Warnf("%v; using defaults", err)
		p = config.DefaultPreferences()
	}
	prefs = p
	output.SetCurrencySymbol(prefs.Display.CurrencySymbol)
	logger.Debugf("preferences: %s", config.PreferencesPath())
	return nil
}

// inputFromFlags coerces the input flags the same way the form fields are coerced.
func inputFromFlags() domain.ProjectionInput {
	return domain.ProjectionInput{
		CurrentAge:          moneyutil.ParseIntOrZero(flagAge),
		LifeExpectancy:      moneyutil.ParseIntOrZero(flagLifeExpectancy),
		RetireAge:           moneyutil.ParseIntOrZero(flagRetireAge),
		StartingAssets:      moneyutil.ParseOrZero(flagAssets),
		MonthlyIncome:       moneyutil.ParseOrZero(flagIncome),
		MonthlyExpenses:     moneyutil.ParseOrZero(flagExpenses),
		AnnualGrowthPercent: moneyutil.ParseOrZero(flagGrowth),
	}
}

func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	return engine
}

func runProjection(cmd *cobra.Command, _ []string) error {
	in := inputFromFlags()
	summary := newEngine().RunInput("Projection", in)
	recordHistory(summary)
	return emit(cmd.OutOrStdout(), calculation.Compare([]domain.ScenarioSummary{*summary}))
}

// emit prints the comparison in the selected format, or writes report files
// when --out is set.
func emit(w io.Writer, results *domain.ScenarioComparison) error {
	format := flagFormat
	if format == "" {
		format = prefs.Display.DefaultFormat
	}

	if flagOut != "" {
		if output.NormalizeFormatName(format) == "all" {
			paths, err := output.GenerateAllReports(results, flagOut)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(w, "  Report written to %s\n", p)
			}
			return nil
		}
		path, err := output.GenerateReport(results, format, flagOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Report written to %s\n", path)
		return nil
	}

	if output.NormalizeFormatName(format) == "all" {
		return fmt.Errorf("format %q needs --out", format)
	}
	f, err := output.LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func historyEnabled() bool {
	return !flagNoHistory && prefs.History.Enabled
}

// openHistory opens the history database, or returns nil when history is off.
func openHistory() (*store.History, error) {
	if !historyEnabled() {
		return nil, nil
	}
	return store.Open(prefs.HistoryPath())
}

// recordHistory saves the runs; history problems never fail a projection.
func recordHistory(summaries ...*domain.ScenarioSummary) {
	h, err := openHistory()
	if err != nil {
		logger.Warnf("history unavailable: %v", err)
		return
	}
	if h == nil {
		return
	}
	defer func() { _ = h.Close() }()

	for _, s := range summaries {
		run, err := h.SaveRun(s.Name, s.Input, s.Projection)
		if err != nil {
			logger.Warnf("saving %s to history: %v", s.Name, err)
			continue
		}
		logger.Debugf("saved %s as run %s", s.Name, run.ShortID())
	}
}
