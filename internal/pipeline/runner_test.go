package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filmstats/internal/config"
)

// Four films: Beta is the only zero-domestic-gross row, Delta is released
// after the 2018-05-01 cutoff. The three pre-cutoff films sit exactly on
// gross = 2*budget, so the fitted slope proves Delta was excluded.
const endToEndCSV = `Movie_Title,Release_Date,USD_Production_Budget,USD_Domestic_Gross,USD_Worldwide_Gross
Alpha,1/1/2000,"$100","$150","$200"
Beta,1/1/2005,"$200","$0","$400"
Gamma,1/1/2010,"$300","$350","$600"
Delta,1/1/2020,"$400","$10","$20"
`

func runPipeline(t *testing.T, csv string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "films.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var buf bytes.Buffer
	runner := NewRunner(config.Default(), &buf)
	if err := runner.Run(path); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return buf.String()
}

func TestRunEndToEnd(t *testing.T) {
	out := runPipeline(t, endToEndCSV)

	// fixed section order
	sections := []string{
		"DATASET OVERVIEW",
		"BOTTOM 25% PROFITABILITY",
		"EXTREMES: BUDGET & REVENUE",
		"LINEAR REGRESSION: BUDGET -> REVENUE",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("missing section %q in output:\n%s", s, out)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}

	// overview: shape, means and minimums over all four rows
	for _, want := range []string{
		"(4, 5)",
		"Average Production Budget   : $250.00",
		"Average Worldwide Gross     : $305.00",
		"Minimum Worldwide Gross     : $20.00",
		"Minimum Domestic Gross      : $0.00",
		"2000-01-01 -> 2020-01-01",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q", want)
		}
	}

	// bottom quartile: only Delta (gross 20) is at or below q1=155
	for _, want := range []string{
		"Movies in bottom 25% of worldwide gross  : 1",
		"Profitable (Profit > 0)                  : 0",
		"Unprofitable (Profit <= 0)               : 1",
		"Percentage profitable                    : 0.00%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("quartile section missing %q", want)
		}
	}

	// zero-domestic listing holds exactly Beta
	zeroIdx := strings.Index(out, "$0 domestic gross")
	intlIdx := strings.Index(out, "International-only")
	zeroSection := out[zeroIdx:intlIdx]
	if !strings.Contains(zeroSection, "Beta") {
		t.Error("zero-domestic listing must contain Beta")
	}
	for _, absent := range []string{"Alpha", "Gamma", "Delta"} {
		if strings.Contains(zeroSection, absent) {
			t.Errorf("zero-domestic listing must not contain %s", absent)
		}
	}

	// cutoff: Delta excluded, nobody lost money pre-cutoff
	if !strings.Contains(out, "Unreleased films (past cutoff): 1") {
		t.Error("expected one unreleased film")
	}
	if !strings.Contains(out, "Percentage of films that lost money: 0.00%") {
		t.Error("expected zero loss share")
	}

	// regression over Alpha/Beta/Gamma only: gross = 2*budget exactly
	for _, want := range []string{
		"Intercept (theta0): $0.00",
		"Slope     (theta1): 2.00",
		"Estimated Worldwide Gross for $150,000,000.00 budget: $300,000,000.00",
		"Estimated Worldwide Gross for $350,000,000.00 budget: $700,000,000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("regression section missing %q", want)
		}
	}
}

func TestRunMissingDateStaysInRegression(t *testing.T) {
	// NoDate has an unparseable release date. Fitted over all three points
	// the slope is -0.5; if NoDate were wrongly excluded by the cutoff, the
	// two remaining points would give slope 1.
	csv := `Movie_Title,Release_Date,USD_Production_Budget,USD_Domestic_Gross,USD_Worldwide_Gross
Alpha,1/1/2000,"$100","$10","$300"
Beta,1/1/2010,"$300","$10","$500"
NoDate,someday,"$500","$10","$100"
`
	out := runPipeline(t, csv)

	if !strings.Contains(out, "Unreleased films (past cutoff): 0") {
		t.Error("missing-date row must not be counted as unreleased")
	}
	if !strings.Contains(out, "Slope     (theta1): -0.50") {
		t.Error("expected slope -0.50 over all three rows, including the missing-date one")
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(config.Default(), &buf)
	if err := runner.Run(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
