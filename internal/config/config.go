package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig drives one run of the report pipeline. A missing config file
// is not an error; defaults describe the standard analysis.
type AnalysisConfig struct {
	Dataset           string    `yaml:"dataset"`
	CutoffDate        string    `yaml:"cutoff_date"`
	TopN              int       `yaml:"top_n"`
	HistogramBins     int       `yaml:"histogram_bins"`
	PredictionBudgets []float64 `yaml:"prediction_budgets"`
}

func Default() *AnalysisConfig {
	return &AnalysisConfig{
		Dataset:           "data/cost_revenue_dirty.csv",
		CutoffDate:        "2018-05-01",
		TopN:              5,
		HistogramBins:     30,
		PredictionBudgets: []float64{150_000_000, 350_000_000},
	}
}

// Load reads a YAML config, falling back to defaults for the file itself and
// for any field left unset.
func Load(filename string) *AnalysisConfig {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err == nil {
		var loaded AnalysisConfig
		if yaml.Unmarshal(data, &loaded) == nil {
			cfg.merge(&loaded)
		}
	}

	return cfg
}

func (c *AnalysisConfig) merge(o *AnalysisConfig) {
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.CutoffDate != "" {
		c.CutoffDate = o.CutoffDate
	}
	if o.TopN > 0 {
		c.TopN = o.TopN
	}
	if o.HistogramBins > 0 {
		c.HistogramBins = o.HistogramBins
	}
	if len(o.PredictionBudgets) > 0 {
		c.PredictionBudgets = o.PredictionBudgets
	}
}

// Cutoff parses the configured cutoff date.
func (c *AnalysisConfig) Cutoff() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.CutoffDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff_date %q: %w", c.CutoffDate, err)
	}
	return t, nil
}
