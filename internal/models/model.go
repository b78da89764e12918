package models

// Model is a fitted statistical model over paired samples. Implementations
// must reject fitting on mismatched or empty inputs.
type Model interface {
	Fit(x, y []float64) error
	Predict(x []float64) []float64
	PredictOne(x float64) float64
	GetName() string
	GetParams() map[string]any
	Reset()
}

type BaseModel struct {
	Name   string
	Params map[string]any
}

func (bm *BaseModel) GetName() string {
	return bm.Name
}

func (bm *BaseModel) GetParams() map[string]any {
	return bm.Params
}
