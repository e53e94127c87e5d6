//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234567.5)
	got := FormatCurrency(v)
	want := "¥1,234,568"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestSetCurrencySymbol(t *testing.T) {
	t.Cleanup(func() { SetCurrencySymbol("") })

	SetCurrencySymbol("$")
	if got := FormatDailyBudget(decimal.RequireFromString("4756.99")); got != "$4,756/day" {
		t.Errorf("FormatDailyBudget = %q", got)
	}
	if got := FormatCurrencyCents(decimal.RequireFromString("1234.5")); got != "$1,234.50" {
		t.Errorf("FormatCurrencyCents = %q", got)
	}

	SetCurrencySymbol("")
	if got := CurrencySymbol(); got != "¥" {
		t.Errorf("CurrencySymbol after reset = %q", got)
	}
}

func TestYearOrEmpty(t *testing.T) {
	if got := yearOrEmpty(0); got != "" {
		t.Errorf("yearOrEmpty(0) = %q", got)
	}
	if got := yearOrEmpty(85); got != "85" {
		t.Errorf("yearOrEmpty(85) = %q", got)
	}
}
