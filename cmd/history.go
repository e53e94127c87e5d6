package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/calculation"
	"github.com/lifecount/countdown-calculator/internal/cli"
	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/internal/output"
	"github.com/lifecount/countdown-calculator/internal/store"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show or clear saved runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved run (an ID prefix is enough)",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved run",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to list (0 for all)")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

// withHistory opens the history database regardless of --no-history, which
// only controls recording.
func withHistory(fn func(h *store.History) error) error {
	h, err := store.Open(prefs.HistoryPath())
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()
	return fn(h)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	return withHistory(func(h *store.History) error {
		runs, err := h.ListRuns(flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "  No saved runs.")
			return nil
		}

		t := cli.Table{
			Title:   "HISTORY",
			Headers: []string{"ID", "Saved", "Name", "Age", "Retire", "Daily budget", "Final"},
		}
		for _, r := range runs {
			t.Rows = append(t.Rows, []string{
				r.ShortID(),
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.Name,
				strconv.Itoa(r.Input.CurrentAge),
				strconv.Itoa(r.Input.RetireAge),
				output.FormatDailyBudget(r.DailyBudget),
				output.FormatCurrency(r.FinalAssets),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(t))
		return nil
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withHistory(func(h *store.History) error {
		run, err := h.GetRun(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved run matches %q (see `lifecount history list`)", args[0])
		}
		if err != nil {
			return err
		}
		summary := calculation.Summarize(run.Name, run.Input, run.Result())
		results := calculation.Compare([]domain.ScenarioSummary{*summary})
		results.GeneratedAt = run.CreatedAt
		return emit(cmd.OutOrStdout(), results)
	})
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	return withHistory(func(h *store.History) error {
		n, err := h.DeleteAll()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Deleted %d runs.\n", n)
		return nil
	})
}
