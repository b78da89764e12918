package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"filmstats/internal/cleaning"
)

// Film is one row of the budget/revenue dataset after cleaning. Currency
// fields are exact decimals; Profit is derived once at load time and no field
// is mutated afterwards.
type Film struct {
	Title            string
	ReleaseDate      cleaning.ReleaseDate
	ProductionBudget decimal.Decimal
	DomesticGross    decimal.Decimal
	WorldwideGross   decimal.Decimal
	Profit           decimal.Decimal
}

// Column names the input file must carry. Order is not significant.
const (
	ColTitle            = "Movie_Title"
	ColReleaseDate      = "Release_Date"
	ColProductionBudget = "USD_Production_Budget"
	ColDomesticGross    = "USD_Domestic_Gross"
	ColWorldwideGross   = "USD_Worldwide_Gross"
)

var requiredColumns = []string{
	ColTitle,
	ColReleaseDate,
	ColProductionBudget,
	ColDomesticGross,
	ColWorldwideGross,
}

type CSVReader struct {
	filename string
}

func NewCSVReader(filename string) *CSVReader {
	return &CSVReader{filename: filename}
}

// LoadFilms reads and cleans the whole dataset. Currency parse failures are
// fatal; date parse failures coerce to a missing value and the row is kept.
func (cr *CSVReader) LoadFilms() ([]Film, error) {
	file, err := os.Open(cr.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("file %s has no header row", cr.filename)
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	films := make([]Film, 0, len(records)-1)
	for i, record := range records[1:] {
		film, err := parseFilm(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		films = append(films, film)
	}

	return films, nil
}

func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return cols, nil
}

func parseFilm(record []string, cols map[string]int) (Film, error) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	budget, err := cleaning.ParseCurrency(field(ColProductionBudget))
	if err != nil {
		return Film{}, fmt.Errorf("%s: %w", ColProductionBudget, err)
	}

	domestic, err := cleaning.ParseCurrency(field(ColDomesticGross))
	if err != nil {
		return Film{}, fmt.Errorf("%s: %w", ColDomesticGross, err)
	}

	worldwide, err := cleaning.ParseCurrency(field(ColWorldwideGross))
	if err != nil {
		return Film{}, fmt.Errorf("%s: %w", ColWorldwideGross, err)
	}

	return Film{
		Title:            strings.TrimSpace(field(ColTitle)),
		ReleaseDate:      cleaning.ParseReleaseDate(field(ColReleaseDate)),
		ProductionBudget: budget,
		DomesticGross:    domestic,
		WorldwideGross:   worldwide,
		Profit:           worldwide.Sub(budget),
	}, nil
}

// Budgets extracts production budgets as float64 for the numeric stages.
func Budgets(films []Film) []float64 {
	out := make([]float64, len(films))
	for i, f := range films {
		out[i], _ = f.ProductionBudget.Float64()
	}
	return out
}

// WorldwideGrosses extracts worldwide grosses as float64.
func WorldwideGrosses(films []Film) []float64 {
	out := make([]float64, len(films))
	for i, f := range films {
		out[i], _ = f.WorldwideGross.Float64()
	}
	return out
}

// DomesticGrosses extracts domestic grosses as float64.
func DomesticGrosses(films []Film) []float64 {
	out := make([]float64, len(films))
	for i, f := range films {
		out[i], _ = f.DomesticGross.Float64()
	}
	return out
}

// Profits extracts derived profits as float64.
func Profits(films []Film) []float64 {
	out := make([]float64, len(films))
	for i, f := range films {
		out[i], _ = f.Profit.Float64()
	}
	return out
}
