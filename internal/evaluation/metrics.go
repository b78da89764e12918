package evaluation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// RegressionMetrics summarizes how well a fitted line describes its inputs.
// There is no holdout set; these are in-sample diagnostics.
type RegressionMetrics struct {
	RSquared   float64 `json:"r_squared"`
	RMSE       float64 `json:"rmse"`
	MAE        float64 `json:"mae"`
	NumSamples int     `json:"num_samples"`
}

// CalculateMetrics computes R², RMSE and MAE for predictions against observed
// values. Returns nil on mismatched input lengths.
func CalculateMetrics(yTrue, yPred []float64) *RegressionMetrics {
	if len(yTrue) != len(yPred) || len(yTrue) == 0 {
		return nil
	}

	n := len(yTrue)
	var sse, sae float64
	for i := range yTrue {
		diff := yPred[i] - yTrue[i]
		sse += diff * diff
		sae += math.Abs(diff)
	}

	meanY := stat.Mean(yTrue, nil)
	var sst float64
	for _, y := range yTrue {
		d := y - meanY
		sst += d * d
	}

	return &RegressionMetrics{
		RSquared:   1 - safeDivide(sse, sst),
		RMSE:       math.Sqrt(sse / float64(n)),
		MAE:        sae / float64(n),
		NumSamples: n,
	}
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0.0
	}
	return result
}

func (m *RegressionMetrics) FormatMetrics() string {
	result := fmt.Sprintf("R-squared: %.4f\n", m.RSquared)
	result += fmt.Sprintf("RMSE: %.2f\n", m.RMSE)
	result += fmt.Sprintf("MAE: %.2f\n", m.MAE)
	return result
}
