package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat"
)

// Bin is a half-open histogram interval [Low, High); the last bin is closed.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram is a binned distribution with a Gaussian kernel density estimate
// evaluated at each bin center, for terminal display.
type Histogram struct {
	Bins      []Bin
	BinWidth  float64
	Total     int
	Density   []float64
	Bandwidth float64
}

// BuildHistogram bins values into binCount equal-width bins and overlays a
// Gaussian KDE with Silverman's bandwidth. Returns nil for empty input.
func BuildHistogram(values []float64, binCount int) *Histogram {
	if len(values) == 0 {
		return nil
	}
	if binCount <= 0 {
		binCount = 30
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(binCount)
	if width == 0 {
		// all values identical: one degenerate bin holds everything
		width = 1
		binCount = 1
	}

	h := &Histogram{
		Bins:     make([]Bin, binCount),
		BinWidth: width,
		Total:    len(values),
	}
	for i := range h.Bins {
		h.Bins[i].Low = min + float64(i)*width
		h.Bins[i].High = h.Bins[i].Low + width
	}

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		h.Bins[idx].Count++
	}

	h.Bandwidth = silvermanBandwidth(values)
	h.Density = make([]float64, binCount)
	for i, bin := range h.Bins {
		center := (bin.Low + bin.High) / 2
		h.Density[i] = kdeAt(values, center, h.Bandwidth)
	}

	return h
}

func silvermanBandwidth(values []float64) float64 {
	sigma := stat.StdDev(values, nil)
	if sigma == 0 || math.IsNaN(sigma) {
		return 1
	}
	return 1.06 * sigma * math.Pow(float64(len(values)), -0.2)
}

func kdeAt(values []float64, x, bandwidth float64) float64 {
	var sum float64
	for _, v := range values {
		u := (x - v) / bandwidth
		sum += math.Exp(-0.5 * u * u)
	}
	return sum / (float64(len(values)) * bandwidth * math.Sqrt(2*math.Pi))
}

// Render draws the histogram sideways: one row per bin, bar length scaled to
// barWidth, a '*' marking the KDE level, and the row spanning zero flagged in
// red. Output goes to the terminal; nothing is written to disk.
func (h *Histogram) Render(w io.Writer, barWidth int) {
	if h == nil || len(h.Bins) == 0 {
		return
	}
	if barWidth <= 0 {
		barWidth = 40
	}

	maxCount := 0
	maxDensity := 0.0
	for i, bin := range h.Bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
		if h.Density[i] > maxDensity {
			maxDensity = h.Density[i]
		}
	}
	if maxCount == 0 {
		return
	}

	red := color.New(color.FgRed).SprintFunc()

	for i, bin := range h.Bins {
		barLen := int(math.Round(float64(bin.Count) / float64(maxCount) * float64(barWidth)))
		row := []byte(strings.Repeat("#", barLen) + strings.Repeat(" ", barWidth-barLen))

		if maxDensity > 0 {
			pos := int(math.Round(h.Density[i] / maxDensity * float64(barWidth-1)))
			row[pos] = '*'
		}

		label := fmt.Sprintf("%14.0f ", bin.Low)
		zeroMark := "  "
		if bin.Low <= 0 && 0 < bin.High {
			zeroMark = red(" <- 0")
		}
		fmt.Fprintf(w, "%s|%s| %d%s\n", label, string(row), bin.Count, zeroMark)
	}
	fmt.Fprintf(w, "%15s bar = count, * = density\n", "")
}
