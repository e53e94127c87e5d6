package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioSummary provides the projection of one named scenario plus key metrics
type ScenarioSummary struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	BirthDate   *time.Time       `json:"birth_date,omitempty"`
	Input       ProjectionInput  `json:"input"`
	Projection  ProjectionResult `json:"projection"`

	PeakAssets         decimal.Decimal `json:"peak_assets"`
	PeakYear           int             `json:"peak_year"`
	DepletionYear      int             `json:"depletion_year"` // 0 when assets never run out
	FinalAssets        decimal.Decimal `json:"final_assets"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalWithdrawals   decimal.Decimal `json:"total_withdrawals"`
	TotalGrowth        decimal.Decimal `json:"total_growth"`
}

// Depleted reports whether the recorded balance hit zero at some point.
func (s ScenarioSummary) Depleted() bool {
	return s.DepletionYear != 0
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	GeneratedAt         time.Time         `json:"generated_at"`
	Scenarios           []ScenarioSummary `json:"scenarios"`
	RecommendedScenario string            `json:"recommended_scenario"` // highest daily budget
	LongestLasting      string            `json:"longest_lasting"`
	Assumptions         []string          `json:"assumptions"`
}

// Find returns the scenario with the given name.
func (c *ScenarioComparison) Find(name string) (*ScenarioSummary, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
