package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current preferences",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the effective preferences to the config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if flagConfigWrite {
		if err := config.SavePreferences(prefs); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Wrote %s\n\n", config.PreferencesPath())
	}

	fmt.Fprintf(w, "  Config file: %s\n", config.PreferencesPath())
	if config.PreferencesExist() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [display]")
	fmt.Fprintf(w, "    Currency symbol: %s\n", prefs.Display.CurrencySymbol)
	fmt.Fprintf(w, "    Default format:  %s\n", prefs.Display.DefaultFormat)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [history]")
	fmt.Fprintf(w, "    Enabled:  %v\n", prefs.History.Enabled)
	fmt.Fprintf(w, "    Database: %s\n", prefs.HistoryPath())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [sweep]")
	fmt.Fprintf(w, "    Growth range: %g%% to %g%% step %g\n", prefs.Sweep.Min, prefs.Sweep.Max, prefs.Sweep.Step)
	return nil
}
