// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with thousands separators and the currency
// code. e.g., 1234567.89 DKK -> "1,234,568 DKK". Fractions are rounded;
// statement-level output uses FormatDecimal instead.
func FormatMoney(amount float64, currency string) string {
	s := FormatNumber(int64(math.Round(amount)))
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatCompact formats an amount with human-readable suffixes.
// e.g., 1234567 -> "1.2M", -45000 -> "-45.0K"
func FormatCompact(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", amount/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", amount/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", amount/1_000)
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}

// FormatDecimal formats a statement amount with two decimals and thousands
// separators. e.g., -1697 -> "-1,697.00"
func FormatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err == nil {
		intPart = FormatNumber(n)
	}

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
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

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatYear formats a projection year offset as a label. Year 0 is the
// starting position, not a projected year.
func FormatYear(year int) string {
	if year == 0 {
		return "Start"
	}
	return fmt.Sprintf("Year %d", year)
}
