package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the inputs interactively and watch the projection update",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	lipgloss.SetColorProfile(termenv.TrueColor)

	var saver tui.Saver
	h, err := openHistory()
	if err != nil {
		logger.Warnf("history unavailable: %v", err)
	} else if h != nil {
		defer func() { _ = h.Close() }()
		saver = h
	}

	form := tui.NewForm(inputFromFlags(), prefs.Display.CurrencySymbol, saver)
	p := tea.NewProgram(form, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
