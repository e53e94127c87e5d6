package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare <scenarios.yaml> <scenario-a> <scenario-b>",
	Short: "Find the age at which one scenario's assets overtake another's",
	Args:  cobra.ExactArgs(3),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	results, err := loadAndRun(cmd, args[0])
	if err != nil {
		return err
	}
	a, ok := results.Find(args[1])
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", args[1], args[0])
	}
	b, ok := results.Find(args[2])
	if !ok {
		return fmt.Errorf("scenario %q not found in %s", args[2], args[0])
	}

	co, err := calculation.Crossover(a.Projection.Points, b.Projection.Points)
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", a.Name, b.Name, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, cli.RenderTitle(a.Name+" vs "+b.Name))
	fmt.Fprintln(w)

	t := cli.Table{Headers: []string{"", a.Name, b.Name}}
	t.Rows = [][]string{
		{"Retirement age", strconv.Itoa(a.Input.RetireAge), strconv.Itoa(b.Input.RetireAge)},
		{"Daily budget", output.FormatDailyBudget(a.Projection.DailyBudget), output.FormatDailyBudget(b.Projection.DailyBudget)},
		{"At retirement", output.FormatCurrency(a.Projection.RetirementAssets), output.FormatCurrency(b.Projection.RetirementAssets)},
		{"Peak", output.FormatCurrency(a.PeakAssets), output.FormatCurrency(b.PeakAssets)},
		{"Depleted at", cli.FormatYear(a.DepletionYear), cli.FormatYear(b.DepletionYear)},
	}
	fmt.Fprint(w, cli.RenderTable(t))
	fmt.Fprintln(w)

	_, seriesA := a.Projection.Series()
	_, seriesB := b.Projection.Series()
	fmt.Fprintln(w, cli.RenderKeyValue(a.Name, cli.RenderSparkline(seriesA), 20))
	fmt.Fprintln(w, cli.RenderKeyValue(b.Name, cli.RenderSparkline(seriesB), 20))
	fmt.Fprintln(w)

	if co == nil {
		fmt.Fprintf(w, "  %s never overtakes %s\n", b.Name, a.Name)
		return nil
	}
	fmt.Fprintf(w, "  %s overtakes %s at age %.1f (%s)\n", b.Name, a.Name, co.FractionalYear, output.FormatCurrency(co.Assets))
	return nil
}
