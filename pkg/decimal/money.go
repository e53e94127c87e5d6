package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MaxWholeYears is the largest magnitude ParseIntOrZero accepts.
const MaxWholeYears = 100000

var maxWholeYears = decimal.NewFromInt(MaxWholeYears)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses a decimal string; unlike ParseOrZero it reports bad input.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseOrZero coerces free-form numeric text into a decimal.
// Empty or non-numeric text yields zero, the same way a number field
// treats input it cannot read. Grouping separators are not numeric, so
// "1,000" is zero.
func ParseOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseIntOrZero coerces text into a whole number of years, truncating toward zero.
// Magnitudes above MaxWholeYears are not a usable year count and yield zero.
func ParseIntOrZero(s string) int {
	d := ParseOrZero(s).Truncate(0)
	if d.Abs().GreaterThan(maxWholeYears) {
		return 0
	}
	return int(d.IntPart())
}

// GrowthFactor turns a percentage (3 means 3%) into a multiplier (1.03).
func GrowthFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(percent.Div(hundred))
}

// Round rounds the money amount to two places
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Floor drops the fractional part toward negative infinity
func (m Money) Floor() Money {
	return Money{m.Decimal.Floor()}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// ClampZero returns the amount, or zero when it is negative.
func (m Money) ClampZero() Money {
	if m.Decimal.IsNegative() {
		return Zero()
	}
	return m
}

// Max returns the larger of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Min returns the smaller of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatGrouped renders the amount with a currency symbol, thousands separators
// and the given number of decimal places, e.g. "¥1,234,567" or "-$12.50".
func (m Money) FormatGrouped(symbol string, places int32) string {
	raw := m.Decimal.Abs().StringFixed(places)
	intPart, frac, hasFrac := strings.Cut(raw, ".")

	var b strings.Builder
	if m.Decimal.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
