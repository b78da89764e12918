package analysis

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"filmstats/internal/data"
)

// Summary holds the whole-table overview statistics. Everything is computed
// over the cleaned table with no filtering applied.
type Summary struct {
	Rows              int
	Columns           int
	EarliestRelease   time.Time
	LatestRelease     time.Time
	HasDateRange      bool
	MeanBudget        float64
	MeanWorldwide     float64
	MinWorldwideGross float64
	MinDomesticGross  float64
}

// Summarize computes the dataset overview. Missing release dates are ignored
// for the date range; HasDateRange is false when no row has a parsed date.
func Summarize(films []data.Film) Summary {
	s := Summary{
		Rows:    len(films),
		Columns: 5, // the source columns; Profit is derived, not loaded
	}
	if len(films) == 0 {
		return s
	}

	s.MeanBudget = stat.Mean(data.Budgets(films), nil)
	s.MeanWorldwide = stat.Mean(data.WorldwideGrosses(films), nil)
	s.MinWorldwideGross = floats.Min(data.WorldwideGrosses(films))
	s.MinDomesticGross = floats.Min(data.DomesticGrosses(films))

	for _, f := range films {
		if !f.ReleaseDate.Valid {
			continue
		}
		if !s.HasDateRange {
			s.EarliestRelease = f.ReleaseDate.Time
			s.LatestRelease = f.ReleaseDate.Time
			s.HasDateRange = true
			continue
		}
		if f.ReleaseDate.Time.Before(s.EarliestRelease) {
			s.EarliestRelease = f.ReleaseDate.Time
		}
		if f.ReleaseDate.Time.After(s.LatestRelease) {
			s.LatestRelease = f.ReleaseDate.Time
		}
	}

	return s
}
