package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1100000", "$1,100,000.00"},
		{"425000000", "$425,000,000.00"},
		{"999", "$999.00"},
		{"1000", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"-50000", "-$50,000.00"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("fixture %q: %v", tt.in, err)
		}
		if got := FormatCurrency(d); got != tt.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrencyFloat(t *testing.T) {
	if got := FormatCurrencyFloat(150_000_000); got != "$150,000,000.00" {
		t.Errorf("got %q", got)
	}
	if got := FormatCurrencyFloat(-1234.567); got != "-$1,234.57" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.3456, true); got != "12.35%" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(0, false); got != "n/a" {
		t.Errorf("not-applicable must render n/a, got %q", got)
	}
}
