package analysis

import (
	"sort"

	"filmstats/internal/data"
)

// Extremes identifies the films at the edges of the budget and revenue
// distributions.
type Extremes struct {
	MaxBudget    data.Film
	MaxWorldwide data.Film
	MinBudget    data.Film
	Found        bool
}

// FindExtremes scans in table order with strict comparisons, so ties are
// broken by first occurrence.
func FindExtremes(films []data.Film) Extremes {
	if len(films) == 0 {
		return Extremes{}
	}

	ex := Extremes{
		MaxBudget:    films[0],
		MaxWorldwide: films[0],
		MinBudget:    films[0],
		Found:        true,
	}

	for _, f := range films[1:] {
		if f.ProductionBudget.GreaterThan(ex.MaxBudget.ProductionBudget) {
			ex.MaxBudget = f
		}
		if f.WorldwideGross.GreaterThan(ex.MaxWorldwide.WorldwideGross) {
			ex.MaxWorldwide = f
		}
		if f.ProductionBudget.LessThan(ex.MinBudget.ProductionBudget) {
			ex.MinBudget = f
		}
	}

	return ex
}

// ZeroDomestic lists films with no reported domestic gross, highest budget
// first, truncated to topN. The sort is stable so equal budgets keep their
// table order.
func ZeroDomestic(films []data.Film, topN int) []data.Film {
	return topByBudget(filterFilms(films, func(f data.Film) bool {
		return f.DomesticGross.IsZero()
	}), topN)
}

// ZeroWorldwide lists films with no reported worldwide gross, highest budget
// first, truncated to topN.
func ZeroWorldwide(films []data.Film, topN int) []data.Film {
	return topByBudget(filterFilms(films, func(f data.Film) bool {
		return f.WorldwideGross.IsZero()
	}), topN)
}

// InternationalOnly lists films that grossed abroad but never domestically.
// The first topN rows are returned in table order, unsorted.
func InternationalOnly(films []data.Film, topN int) []data.Film {
	matched := filterFilms(films, func(f data.Film) bool {
		return f.WorldwideGross.IsPositive() && f.DomesticGross.IsZero()
	})
	if len(matched) > topN {
		matched = matched[:topN]
	}
	return matched
}

func filterFilms(films []data.Film, keep func(data.Film) bool) []data.Film {
	var out []data.Film
	for _, f := range films {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

func topByBudget(films []data.Film, topN int) []data.Film {
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].ProductionBudget.GreaterThan(films[j].ProductionBudget)
	})
	if len(films) > topN {
		films = films[:topN]
	}
	return films
}
