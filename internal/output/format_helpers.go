package output

import (
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lifecount/countdown-calculator/internal/cli"
)

var (
	symbolMu       sync.RWMutex
	currencySymbol = cli.DefaultCurrencySymbol
)

// SetCurrencySymbol sets the symbol used by every formatter. An empty symbol restores the default.
func SetCurrencySymbol(s string) {
	if s == "" {
		s = cli.DefaultCurrencySymbol
	}
	symbolMu.Lock()
	currencySymbol = s
	symbolMu.Unlock()
}

// CurrencySymbol returns the symbol currently used by formatters.
func CurrencySymbol() string {
	symbolMu.RLock()
	defer symbolMu.RUnlock()
	return currencySymbol
}

// FormatCurrency formats a decimal as whole currency units with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return cli.FormatMoney(amount, CurrencySymbol()) }

// FormatCurrencyCents formats a decimal as currency with 2 decimals.
func FormatCurrencyCents(amount decimal.Decimal) string {
	return cli.FormatMoneyCents(amount, CurrencySymbol())
}

// FormatDailyBudget formats the floored daily budget.
func FormatDailyBudget(amount decimal.Decimal) string {
	return cli.FormatDailyBudget(amount, CurrencySymbol())
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

// yearOrEmpty renders an age for CSV, empty when zero (never reached).
func yearOrEmpty(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}
