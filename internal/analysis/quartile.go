package analysis

import (
	"math"
	"sort"

	"filmstats/internal/data"
)

// QuartileSegment is the bottom slice of the table by worldwide gross,
// boundary inclusive, with its profitability split. Break-even counts as a
// loss.
type QuartileSegment struct {
	Threshold  float64
	Films      []data.Film
	Profitable int
	Losing     int
}

// Percentile computes the p-quantile (0 <= p <= 1) with linear interpolation
// between closest ranks: h = (n-1)*p, interpolating between the surrounding
// order statistics. This is the convention the gross threshold is defined
// under; gonum's Quantile cumulant kinds compute different estimators.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// BottomQuartile selects every film whose worldwide gross is at or below the
// 25th percentile of the full table (ties at the threshold are included) and
// splits the subset into profitable and losing films.
func BottomQuartile(films []data.Film) QuartileSegment {
	seg := QuartileSegment{
		Threshold: Percentile(data.WorldwideGrosses(films), 0.25),
	}
	if len(films) == 0 {
		return seg
	}

	for _, f := range films {
		gross, _ := f.WorldwideGross.Float64()
		if gross > seg.Threshold {
			continue
		}
		seg.Films = append(seg.Films, f)
		if f.Profit.IsPositive() {
			seg.Profitable++
		} else {
			seg.Losing++
		}
	}

	return seg
}

// PercentProfitable returns the profitable share of the segment in percent.
// ok is false for an empty segment; callers report that as not applicable
// instead of dividing by zero.
func (s QuartileSegment) PercentProfitable() (pct float64, ok bool) {
	if len(s.Films) == 0 {
		return 0, false
	}
	return float64(s.Profitable) / float64(len(s.Films)) * 100, true
}
