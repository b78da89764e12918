package analysis

import (
	"time"

	"filmstats/internal/data"
)

// DefaultCutoff is the release date past which box-office numbers are treated
// as not yet realized.
var DefaultCutoff = time.Date(2018, time.May, 1, 0, 0, 0, 0, time.UTC)

// ReleaseSplit separates films whose financial outcome is realized from films
// released after the cutoff.
type ReleaseSplit struct {
	Released   []data.Film
	Unreleased []data.Film
}

// SplitByCutoff drops films released strictly after the cutoff. Films with a
// missing release date are never strictly after it, so they stay in Released;
// see cleaning.ReleaseDate.After for why that behavior is preserved.
func SplitByCutoff(films []data.Film, cutoff time.Time) ReleaseSplit {
	var split ReleaseSplit
	for _, f := range films {
		if f.ReleaseDate.After(cutoff) {
			split.Unreleased = append(split.Unreleased, f)
		} else {
			split.Released = append(split.Released, f)
		}
	}
	return split
}

// LossShare returns the percentage of films whose budget exceeded their
// worldwide gross. ok is false for an empty input.
func LossShare(films []data.Film) (pct float64, ok bool) {
	if len(films) == 0 {
		return 0, false
	}

	losses := 0
	for _, f := range films {
		if f.ProductionBudget.GreaterThan(f.WorldwideGross) {
			losses++
		}
	}

	return float64(losses) / float64(len(films)) * 100, true
}
