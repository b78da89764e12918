package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as "$1,100,000.00".
func FormatCurrency(amount decimal.Decimal) string {
	return formatDollars(amount.StringFixed(2))
}

// FormatCurrencyFloat renders a float64 dollar amount the same way.
func FormatCurrencyFloat(amount float64) string {
	return formatDollars(fmt.Sprintf("%.2f", amount))
}

func formatDollars(fixed string) string {
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart := fixed
	decPart := "00"
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		decPart = fixed[idx+1:]
	}

	if len(intPart) > 3 {
		var parts []string
		for len(intPart) > 3 {
			parts = append([]string{intPart[len(intPart)-3:]}, parts...)
			intPart = intPart[:len(intPart)-3]
		}
		parts = append([]string{intPart}, parts...)
		intPart = strings.Join(parts, ",")
	}

	result := fmt.Sprintf("$%s.%s", intPart, decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a share as "12.34%". Not-applicable values (ok=false)
// render as "n/a" instead of a division artifact.
func FormatPercent(pct float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", pct)
}
