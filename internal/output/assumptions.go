package output

import "github.com/lifecount/countdown-calculator/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when the comparison carries none of its own.
var DefaultAssumptions = []string{
	"Net savings are added every year up to and including the retirement age",
	"After retirement an equal share of the remaining balance is withdrawn each year",
	"Growth is applied every year in both phases",
	"Days are counted as 365 per year",
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
