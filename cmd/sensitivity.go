package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/output"
)

var (
	flagSweepMin   float64
	flagSweepMax   float64
	flagSweepStep  float64
	flagRetireAges string
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep growth rates or retirement ages and tabulate the outcome",
	Long: "Re-run the projection from the input flags over a range of annual growth rates\n" +
		"(--min, --max, --step, in percent) or, with --retire-ages from:to, over retirement ages.",
	RunE: runSensitivity,
}

func init() {
	sensitivityCmd.Flags().Float64Var(&flagSweepMin, "min", 0, "Lowest growth rate in percent (default from preferences)")
	sensitivityCmd.Flags().Float64Var(&flagSweepMax, "max", 8, "Highest growth rate in percent (default from preferences)")
	sensitivityCmd.Flags().Float64Var(&flagSweepStep, "step", 1, "Growth rate step in percent (default from preferences)")
	sensitivityCmd.Flags().StringVar(&flagRetireAges, "retire-ages", "", "Sweep retirement ages instead, as from:to (e.g. 55:65)")
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, _ []string) error {
	in := inputFromFlags()
	engine := newEngine()

	var (
		points []calculation.SensitivityPoint
		err    error
		title  string
	)
	if flagRetireAges != "" {
		from, to, perr := parseAgeRange(flagRetireAges)
		if perr != nil {
			return perr
		}
		title = fmt.Sprintf("RETIREMENT AGE %d-%d AT %s GROWTH", from, to, cli.FormatPercent(in.AnnualGrowthPercent))
		points, err = engine.SweepRetireAges(in, from, to)
	} else {
		min, max, step := sweepRange(cmd)
		title = fmt.Sprintf("GROWTH %s-%s RETIRING AT %d", cli.FormatPercent(min), cli.FormatPercent(max), in.RetireAge)
		points, err = engine.SweepGrowthRates(in, min, max, step)
	}
	if err != nil {
		return err
	}

	t := cli.Table{
		Title:   title,
		Headers: []string{"Growth", "Retire", "Daily budget", "At retirement", "Peak", "Final", "Depleted"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{
			cli.FormatPercent(p.GrowthPercent),
			strconv.Itoa(p.RetireAge),
			output.FormatDailyBudget(p.DailyBudget),
			output.FormatCurrency(p.RetirementAssets),
			output.FormatCurrency(p.PeakAssets),
			output.FormatCurrency(p.FinalAssets),
			cli.FormatYear(p.DepletionYear),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(t))
	return nil
}

// sweepRange uses the flags that were set and falls back to preferences for the rest.
func sweepRange(cmd *cobra.Command) (min, max, step decimal.Decimal) {
	pick := func(name string, flagVal, prefVal float64) decimal.Decimal {
		if cmd.Flags().Changed(name) {
			return decimal.NewFromFloat(flagVal)
		}
		return decimal.NewFromFloat(prefVal)
	}
	return pick("min", flagSweepMin, prefs.Sweep.Min),
		pick("max", flagSweepMax, prefs.Sweep.Max),
		pick("step", flagSweepStep, prefs.Sweep.Step)
}

// parseAgeRange parses "from:to".
func parseAgeRange(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --retire-ages %q: want from:to", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --retire-ages %q: %w", s, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --retire-ages %q: %w", s, err)
	}
	return from, to, nil
}
