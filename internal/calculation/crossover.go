package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/domain"
)

// CrossoverResult describes where scenario B's assets overtake scenario A's.
type CrossoverResult struct {
	// Year of the point at which B is first at or above A
	Year int `json:"year"`

	// Fractional year of the crossing, interpolated linearly (e.g. 57.4)
	FractionalYear float64 `json:"fractional_year"`

	// Fraction (0..1) of the way from Year-1 to Year where the lines cross
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Interpolated assets of both scenarios at the crossing
	Assets decimal.Decimal `json:"assets"`
}

// Crossover finds the first year in which projection B's recorded assets
// move from below A's to at-or-above A's. The series are aligned by year and
// only the overlapping years are compared. It returns nil, nil when B never
// overtakes A.
func Crossover(a, b []domain.YearPoint) (*CrossoverResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	byYear := make(map[int]decimal.Decimal, len(b))
	for _, p := range b {
		byYear[p.Year] = p.Assets
	}

	type pair struct {
		year int
		a, b decimal.Decimal
	}
	var aligned []pair
	for _, p := range a {
		if bv, ok := byYear[p.Year]; ok {
			aligned = append(aligned, pair{p.Year, p.Assets, bv})
		}
	}
	if len(aligned) == 0 {
		return nil, fmt.Errorf("projections share no years")
	}

	// B must start strictly below A for an overtake to be meaningful.
	if aligned[0].b.GreaterThanOrEqual(aligned[0].a) {
		return nil, nil
	}

	one := decimal.NewFromInt(1)
	for i := 1; i < len(aligned); i++ {
		prev, curr := aligned[i-1], aligned[i]
		prevDiff := prev.b.Sub(prev.a)
		currDiff := curr.b.Sub(curr.a)
		if currDiff.IsNegative() {
			continue
		}

		// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0
		t := one
		if denom := currDiff.Sub(prevDiff); !denom.IsZero() {
			t = prevDiff.Neg().Div(denom)
		}
		if t.LessThan(decimal.Zero) {
			t = decimal.Zero
		} else if t.GreaterThan(one) {
			t = one
		}

		assets := prev.a.Add(curr.a.Sub(prev.a).Mul(t))
		return &CrossoverResult{
			Year:           curr.year,
			FractionalYear: float64(prev.year) + t.InexactFloat64()*float64(curr.year-prev.year),
			Fraction:       t,
			Assets:         assets,
		}, nil
	}

	return nil, nil
}
