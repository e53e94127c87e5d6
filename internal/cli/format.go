// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	moneyutil "github.com/lifecount/countdown-calculator/pkg/decimal"
)

// DefaultCurrencySymbol is used when preferences leave the symbol empty.
const DefaultCurrencySymbol = "¥"

// FormatMoney formats a whole-unit amount with thousands separators.
// e.g., 43402056.84 -> "¥43,402,057"
func FormatMoney(d decimal.Decimal, symbol string) string {
	return moneyutil.NewMoneyFromDecimal(d).FormatGrouped(symbol, 0)
}

// FormatMoneyCents formats an amount with two decimal places.
func FormatMoneyCents(d decimal.Decimal, symbol string) string {
	return moneyutil.NewMoneyFromDecimal(d).FormatGrouped(symbol, 2)
}

// FormatDailyBudget formats the floored daily budget shown to users.
func FormatDailyBudget(d decimal.Decimal, symbol string) string {
	return FormatMoney(d.Floor(), symbol) + "/day"
}

// FormatCompact formats a value with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M", 1234567890 -> "1.2B"
func FormatCompact(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDays formats a day count, e.g. 20075 -> "20,075 days".
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return FormatNumber(int64(days)) + " days"
}

// FormatPercent formats a percentage value as entered, e.g. 3 -> "3%", 2.5 -> "2.5%".
func FormatPercent(p decimal.Decimal) string {
	return p.String() + "%"
}

// FormatYear formats an age, with "-" for zero (never reached).
func FormatYear(age int) string {
	if age == 0 {
		return "-"
	}
	return strconv.Itoa(age)
}
