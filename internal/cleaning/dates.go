package cleaning

import (
	"strings"
	"time"
)

// ReleaseDate is a date with an explicit missing state. Parsing failures
// produce Valid=false rather than an error; the dirty source data is expected
// to contain unparseable dates.
type ReleaseDate struct {
	Time  time.Time
	Valid bool
}

// Month-first layouts, matching the dataset's US-style dates. No day-first
// fallback: "3/4/2016" is always March 4th.
var releaseDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseReleaseDate parses a release date under the fixed month-first
// convention. Anything that does not match becomes a missing value.
func ParseReleaseDate(value string) ReleaseDate {
	v := strings.TrimSpace(value)
	if v == "" {
		return ReleaseDate{}
	}

	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return ReleaseDate{Time: t, Valid: true}
		}
	}

	return ReleaseDate{}
}

// After reports whether the date is strictly after t. A missing date is never
// after anything: rows with unparseable dates therefore survive the release
// cutoff filter. That mirrors the source analysis this tool replaces
// (comparisons against missing values are false there too) and is kept on
// purpose, even though it arguably lets unknown releases into the regression.
func (d ReleaseDate) After(t time.Time) bool {
	return d.Valid && d.Time.After(t)
}

// Before reports whether the date is strictly before t, false when missing.
func (d ReleaseDate) Before(t time.Time) bool {
	return d.Valid && d.Time.Before(t)
}

func (d ReleaseDate) String() string {
	if !d.Valid {
		return "NaT"
	}
	return d.Time.Format("2006-01-02")
}
