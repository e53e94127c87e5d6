package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lifecount/countdown-calculator/internal/config"
	"github.com/lifecount/countdown-calculator/internal/domain"
)

var runCmd = &cobra.Command{
	Use:   "run <scenarios.yaml>",
	Short: "Run every scenario in a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	results, err := loadAndRun(cmd, args[0])
	if err != nil {
		return err
	}

	summaries := make([]*domain.ScenarioSummary, len(results.Scenarios))
	for i := range results.Scenarios {
		summaries[i] = &results.Scenarios[i]
	}
	recordHistory(summaries...)

	return emit(cmd.OutOrStdout(), results)
}

// loadAndRun parses a scenario file and projects all of its scenarios.
func loadAndRun(cmd *cobra.Command, path string) (*domain.ScenarioComparison, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %d scenarios from %s", len(cfg.Scenarios), path)
	return newEngine().RunScenarios(cmd.Context(), cfg)
}
