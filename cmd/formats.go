package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and their aliases",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "  Formats:")
	for _, name := range output.AvailableFormatterNames() {
		fmt.Fprintf(w, "    %-14s .%s\n", name, output.Extension(name))
	}
	fmt.Fprintln(w, "    all            every file format (needs --out)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Aliases:")
	for _, alias := range output.AvailableFormatAliases() {
		fmt.Fprintf(w, "    %-14s -> %s\n", alias, output.NormalizeFormatName(alias))
	}
	return nil
}
