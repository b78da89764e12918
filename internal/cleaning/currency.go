package cleaning

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrency converts a currency-formatted field like "$1,100,000.00" into
// an exact decimal amount. Only '$' and ',' are stripped; anything else left
// over must parse as a number or the whole load fails.
func ParseCurrency(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty currency value %q", value)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid currency value %q: %w", value, err)
	}

	return amount, nil
}
