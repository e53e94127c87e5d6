package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
	"github.com/lifecount/countdown-calculator/pkg/dateutil"
	moneyutil "github.com/lifecount/countdown-calculator/pkg/decimal"
)

// maxPreallocYears caps the capacity reserved up front for the points slice.
const maxPreallocYears = 1024

// balancePlaces bounds the running balance's fractional digits; unbounded
// multiplication would grow them every year.
var balancePlaces = int32(decimal.DivisionPrecision)

// ProjectionEngine runs the year-by-year asset projection.
// It holds no state between calls other than its logger.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine that logs to l (nil means no logging).
func NewProjectionEngine(l Logger) *ProjectionEngine {
	return &ProjectionEngine{Logger: orNop(l)}
}

// Project runs the projection without logging.
func Project(in domain.ProjectionInput) domain.ProjectionResult {
	return (&ProjectionEngine{Logger: NopLogger{}}).Project(in)
}

// Project simulates every year from CurrentAge to LifeExpectancy inclusive.
//
// Years up to and including RetireAge add the net yearly savings; later years
// withdraw balance/yearsRemaining so the balance reaches zero in the final year.
// Growth applies in both phases and the grown balance is rounded to
// decimal.DivisionPrecision places. Recorded points are clamped at zero but the
// running balance carries on unclamped into the next year.
func (pe *ProjectionEngine) Project(in domain.ProjectionInput) domain.ProjectionResult {
	return pe.ProjectWithRates(in, nil)
}

// ProjectWithRates is Project with a growth percentage per simulated year:
// rates[i] applies to age CurrentAge+i and in.AnnualGrowthPercent covers any
// year past the end of rates.
func (pe *ProjectionEngine) ProjectWithRates(in domain.ProjectionInput, rates []decimal.Decimal) domain.ProjectionResult {
	log := orNop(pe.Logger)
	if in.LifeExpectancy < in.CurrentAge {
		log.Warnf("life expectancy %d is below current age %d; no years to project", in.LifeExpectancy, in.CurrentAge)
	}

	span := in.YearSpan() + 1
	if span < 0 {
		span = 0
	}
	points := make([]domain.YearPoint, 0, min(span, maxPreallocYears))

	savings := in.AnnualSavings()
	baseFactor := moneyutil.GrowthFactor(in.AnnualGrowthPercent)
	balance := in.StartingAssets

	for year := in.CurrentAge; year <= in.LifeExpectancy; year++ {
		pt := domain.YearPoint{Year: year, Contribution: decimal.Zero, Withdrawal: decimal.Zero}
		factor := baseFactor
		if i := year - in.CurrentAge; i < len(rates) {
			factor = moneyutil.GrowthFactor(rates[i])
		}

		if year <= in.RetireAge {
			pt.Phase = domain.PhaseAccumulation
			pt.Contribution = savings
			balance = balance.Add(savings)
		} else {
			pt.Phase = domain.PhaseDrawdown
			yearsRemaining := decimal.NewFromInt(int64(in.LifeExpectancy - year + 1))
			pt.Withdrawal = balance.Div(yearsRemaining)
			balance = balance.Sub(pt.Withdrawal)
		}

		grown := balance.Mul(factor).Round(balancePlaces)
		pt.Growth = grown.Sub(balance)
		balance = grown

		pt.Assets = moneyutil.NewMoneyFromDecimal(balance).ClampZero().Decimal
		points = append(points, pt)

		log.Debugf("age %d %s: contribution=%s withdrawal=%s growth=%s balance=%s",
			year, pt.Phase, pt.Contribution.StringFixed(2), pt.Withdrawal.StringFixed(2),
			pt.Growth.StringFixed(2), balance.StringFixed(2))
	}

	result := domain.ProjectionResult{
		Points:        points,
		DaysRemaining: dateutil.DaysForYears(in.YearSpan()),
		FinalBalance:  balance,
	}

	result.RetirementAssets = balance
	if p, ok := result.PointAt(in.RetireAge); ok {
		result.RetirementAssets = p.Assets
	} else {
		log.Debugf("retire age %d outside %d..%d; daily budget uses final balance", in.RetireAge, in.CurrentAge, in.LifeExpectancy)
	}

	result.DailyBudget = decimal.Zero
	if days := dateutil.DaysForYears(in.RetirementSpan()); days > 0 {
		result.DailyBudget = result.RetirementAssets.Div(decimal.NewFromInt(int64(days)))
	}

	return result
}
