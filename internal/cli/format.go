// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount in major units using the currency's
// symbol, separators and fraction digits. Whole amounts drop the fraction.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	s := money.New(minor, cur.Code).Display()

	if amount.IsInteger() && cur.Fraction > 0 {
		// "€100,000.00" -> "€100,000"
		frac := cur.Decimal + strings.Repeat("0", cur.Fraction)
		if i := strings.LastIndex(s, frac); i >= 0 {
			s = s[:i] + s[i+len(frac):]
		}
	}
	return s
}

// FormatSignedMoney prefixes positive amounts with "+".
func FormatSignedMoney(amount decimal.Decimal, currency string) string {
	if amount.IsPositive() {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}

// FormatCompact formats a value with k/M suffixes for axis labels.
// e.g., 1500 -> "1.5k", 2000000 -> "2M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case abs >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case abs >= 1 || abs == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
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

// FormatMonths formats a month count, e.g. 1 -> "1 month", 24 -> "24 months".
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}

// BreakEvenNote is the one-line outcome shown under every projection.
func BreakEvenNote(label string, found bool, months int) string {
	if !found {
		return fmt.Sprintf("No break-even within %s", FormatMonths(months))
	}
	return "Break-Even Point: " + label
}
