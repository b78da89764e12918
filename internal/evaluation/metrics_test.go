package evaluation

import (
	"math"
	"strings"
	"testing"
)

func TestCalculateMetricsPerfectFit(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	m := CalculateMetrics(y, y)
	if m == nil {
		t.Fatal("nil metrics")
	}
	if m.RMSE != 0 || m.MAE != 0 {
		t.Errorf("perfect fit should have zero error, got RMSE=%v MAE=%v", m.RMSE, m.MAE)
	}
	if math.Abs(m.RSquared-1) > 1e-12 {
		t.Errorf("r-squared = %v, want 1", m.RSquared)
	}
	if m.NumSamples != 4 {
		t.Errorf("num samples = %d", m.NumSamples)
	}
}

func TestCalculateMetricsKnownResiduals(t *testing.T) {
	yTrue := []float64{0, 0, 0, 0}
	yPred := []float64{1, -1, 1, -1}
	m := CalculateMetrics(yTrue, yPred)
	if m.RMSE != 1 {
		t.Errorf("RMSE = %v, want 1", m.RMSE)
	}
	if m.MAE != 1 {
		t.Errorf("MAE = %v, want 1", m.MAE)
	}
}

func TestCalculateMetricsBadInput(t *testing.T) {
	if CalculateMetrics([]float64{1}, []float64{1, 2}) != nil {
		t.Error("mismatched lengths must yield nil")
	}
	if CalculateMetrics(nil, nil) != nil {
		t.Error("empty input must yield nil")
	}
}

func TestFormatMetrics(t *testing.T) {
	m := CalculateMetrics([]float64{1, 2, 3}, []float64{1, 2, 3})
	out := m.FormatMetrics()
	for _, want := range []string{"R-squared", "RMSE", "MAE"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatMetrics missing %q: %q", want, out)
		}
	}
}
