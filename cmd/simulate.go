package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/output"
)

var (
	flagSimRuns       int
	flagSimVolatility float64
	flagSimSeed       int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Monte Carlo run with a volatile yearly growth rate",
	Long: "Re-run the projection from the input flags many times, drawing each year's growth\n" +
		"from a normal distribution around --growth with --volatility percentage points of\n" +
		"standard deviation, and report percentiles of the outcome. With --out, writes\n" +
		"summary, percentile and per-simulation CSV files into that directory.",
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1000, "Number of simulations")
	simulateCmd.Flags().Float64Var(&flagSimVolatility, "volatility", 10, "Standard deviation of yearly growth in percentage points")
	simulateCmd.Flags().Int64Var(&flagSimSeed, "seed", 0, "Random seed (0 picks one and prints it)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	in := inputFromFlags()
	res, err := newEngine().Simulate(cmd.Context(), in, calculation.MonteCarloConfig{
		Simulations: flagSimRuns,
		Volatility:  decimal.NewFromFloat(flagSimVolatility),
		Seed:        flagSimSeed,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	report := &output.SimulationCSVReport{Result: res}
	if flagOut != "" {
		paths, err := report.GenerateAllCSVReports(flagOut)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(w, "  Report written to %s\n", p)
		}
		return nil
	}

	switch output.NormalizeFormatName(flagFormat) {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "csv", "detailed-csv":
		return report.WritePercentiles(w)
	}

	t := cli.Table{
		Title:   fmt.Sprintf("%d RUNS, GROWTH %s ± %s", res.Simulations, cli.FormatPercent(in.AnnualGrowthPercent), cli.FormatPercent(res.Volatility)),
		Headers: []string{"Percentile", "Daily budget", "At retirement", "Peak"},
	}
	rows := []struct {
		label             string
		budget, ret, peak decimal.Decimal
	}{
		{"10th", res.DailyBudget.P10, res.RetirementAssets.P10, res.PeakAssets.P10},
		{"25th", res.DailyBudget.P25, res.RetirementAssets.P25, res.PeakAssets.P25},
		{"median", res.DailyBudget.P50, res.RetirementAssets.P50, res.PeakAssets.P50},
		{"75th", res.DailyBudget.P75, res.RetirementAssets.P75, res.PeakAssets.P75},
		{"90th", res.DailyBudget.P90, res.RetirementAssets.P90, res.PeakAssets.P90},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.label, output.FormatDailyBudget(r.budget), output.FormatCurrency(r.ret), output.FormatCurrency(r.peak)})
	}
	fmt.Fprint(w, cli.RenderTable(t))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderKeyValue("Fixed-rate budget", output.FormatDailyBudget(res.ExpectedDailyBudget), 20))
	fmt.Fprintln(w, cli.RenderKeyValue("Runs below it", output.FormatPercentage(res.ShortfallRate.Mul(decimal.NewFromInt(100))), 20))
	fmt.Fprintln(w, cli.RenderKeyValue("Seed", fmt.Sprintf("%d", res.Seed), 20))
	return nil
}
