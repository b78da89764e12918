package pipeline

import (
	"fmt"
	"io"

	"filmstats/internal/analysis"
	"filmstats/internal/chart"
	"filmstats/internal/config"
	"filmstats/internal/data"
	"filmstats/internal/evaluation"
	"filmstats/internal/models"
	"filmstats/internal/report"
)

// Runner executes the full analysis in its fixed order: load, clean, validate,
// overview, bottom-quartile segmentation, extremes and zero-revenue reports,
// release-cutoff filtering, then the budget->gross regression. Every stage
// reads the cleaned table or a derived snapshot; nothing mutates the base
// table after cleaning.
type Runner struct {
	Config    *config.AnalysisConfig
	Out       io.Writer
	ShowChart bool
}

func NewRunner(cfg *config.AnalysisConfig, out io.Writer) *Runner {
	return &Runner{Config: cfg, Out: out, ShowChart: true}
}

// Run performs the one-shot analysis of the dataset at path. Errors from
// loading, validation or fitting are unrecoverable.
func (r *Runner) Run(path string) error {
	films, err := data.NewCSVReader(path).LoadFilms()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	if err := data.NewDataValidator().ValidateFilms(films); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}

	rep := report.NewReporter(r.Out)

	rep.Overview(analysis.Summarize(films))

	segment := analysis.BottomQuartile(films)
	rep.Quartile(segment)
	if r.ShowChart {
		if hist := chart.BuildHistogram(data.Profits(segment.Films), r.Config.HistogramBins); hist != nil {
			fmt.Fprintf(r.Out, "\nProfit Distribution - Bottom 25%% Movies\n")
			hist.Render(r.Out, 40)
		}
	}

	rep.Extremes(analysis.FindExtremes(films))
	rep.Listing(fmt.Sprintf("Top %d highest-budget films with $0 domestic gross:", r.Config.TopN),
		analysis.ZeroDomestic(films, r.Config.TopN))
	rep.Listing(fmt.Sprintf("Top %d highest-budget films with $0 worldwide gross:", r.Config.TopN),
		analysis.ZeroWorldwide(films, r.Config.TopN))
	rep.InternationalListing("International-only releases:",
		analysis.InternationalOnly(films, r.Config.TopN))

	cutoff, err := r.Config.Cutoff()
	if err != nil {
		return err
	}
	split := analysis.SplitByCutoff(films, cutoff)
	rep.Cutoff(split)

	model := models.NewLinearRegression()
	x := data.Budgets(split.Released)
	y := data.WorldwideGrosses(split.Released)
	if err := model.Fit(x, y); err != nil {
		return fmt.Errorf("fit regression: %w", err)
	}

	metrics := evaluation.CalculateMetrics(y, model.Predict(x))
	rep.Regression(model, metrics, r.Config.PredictionBudgets)

	return nil
}
