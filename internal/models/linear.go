package models

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LinearRegression is a univariate ordinary least squares fit
// y = Intercept + Slope*x, minimizing summed squared residuals. No
// regularization and no train/test split: the model is fitted on, and
// describes, the full input.
type LinearRegression struct {
	BaseModel
	Intercept float64
	Slope     float64
	RSquared  float64
	IsFitted  bool
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{
		BaseModel: BaseModel{
			Name:   "ols",
			Params: map[string]any{},
		},
	}
}

func (lr *LinearRegression) Fit(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x and y must have the same length: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("need at least 2 samples to fit, got %d", len(x))
	}

	lr.Intercept, lr.Slope = stat.LinearRegression(x, y, nil, false)
	lr.RSquared = stat.RSquared(x, y, nil, lr.Intercept, lr.Slope)
	lr.IsFitted = true
	lr.Params["intercept"] = lr.Intercept
	lr.Params["slope"] = lr.Slope

	return nil
}

func (lr *LinearRegression) Predict(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = lr.PredictOne(v)
	}
	return out
}

func (lr *LinearRegression) PredictOne(x float64) float64 {
	return lr.Intercept + lr.Slope*x
}

func (lr *LinearRegression) Reset() {
	lr.Intercept = 0
	lr.Slope = 0
	lr.RSquared = 0
	lr.IsFitted = false
	lr.Params = map[string]any{}
}
