package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"filmstats/internal/analysis"
	"filmstats/internal/data"
	"filmstats/internal/evaluation"
	"filmstats/internal/models"
)

// Reporter prints the fixed console report sections. Sections always print,
// even when a filter matched nothing; only the percentage lines degrade to
// "n/a".
type Reporter struct {
	out io.Writer

	cyan   func(a ...any) string
	yellow func(a ...any) string
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		cyan:   color.New(color.FgCyan).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

func (r *Reporter) Banner(title string) {
	line := strings.Repeat("-", 50)
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", line, r.cyan(title), line)
}

func (r *Reporter) Overview(s analysis.Summary) {
	r.Banner("DATASET OVERVIEW")
	fmt.Fprintf(r.out, "Rows, columns               : (%d, %d)\n", s.Rows, s.Columns)
	if s.HasDateRange {
		fmt.Fprintf(r.out, "Release date range          : %s -> %s\n",
			s.EarliestRelease.Format("2006-01-02"), s.LatestRelease.Format("2006-01-02"))
	} else {
		fmt.Fprintf(r.out, "Release date range          : n/a\n")
	}
	fmt.Fprintf(r.out, "Average Production Budget   : %s\n", FormatCurrencyFloat(s.MeanBudget))
	fmt.Fprintf(r.out, "Average Worldwide Gross     : %s\n", FormatCurrencyFloat(s.MeanWorldwide))
	fmt.Fprintf(r.out, "Minimum Worldwide Gross     : %s\n", FormatCurrencyFloat(s.MinWorldwideGross))
	fmt.Fprintf(r.out, "Minimum Domestic Gross      : %s\n", FormatCurrencyFloat(s.MinDomesticGross))
}

func (r *Reporter) Quartile(seg analysis.QuartileSegment) {
	r.Banner("BOTTOM 25% PROFITABILITY")
	fmt.Fprintf(r.out, "Worldwide gross threshold (q1)           : %s\n", FormatCurrencyFloat(seg.Threshold))
	fmt.Fprintf(r.out, "Movies in bottom 25%% of worldwide gross  : %d\n", len(seg.Films))
	fmt.Fprintf(r.out, "Profitable (Profit > 0)                  : %d\n", seg.Profitable)
	fmt.Fprintf(r.out, "Unprofitable (Profit <= 0)               : %d\n", seg.Losing)
	pct, ok := seg.PercentProfitable()
	fmt.Fprintf(r.out, "Percentage profitable                    : %s\n", FormatPercent(pct, ok))
}

func (r *Reporter) Extremes(ex analysis.Extremes) {
	r.Banner("EXTREMES: BUDGET & REVENUE")
	if !ex.Found {
		return
	}
	fmt.Fprintf(r.out, "Highest Production Budget : %s -> %s\n",
		FormatCurrency(ex.MaxBudget.ProductionBudget), ex.MaxBudget.Title)
	fmt.Fprintf(r.out, "  Worldwide Gross         : %s\n", FormatCurrency(ex.MaxBudget.WorldwideGross))
	fmt.Fprintf(r.out, "Highest Worldwide Gross   : %s -> %s\n",
		FormatCurrency(ex.MaxWorldwide.WorldwideGross), ex.MaxWorldwide.Title)
	fmt.Fprintf(r.out, "  Budget                  : %s\n", FormatCurrency(ex.MaxWorldwide.ProductionBudget))
	fmt.Fprintf(r.out, "Lowest Production Budget  : %s -> %s\n",
		FormatCurrency(ex.MinBudget.ProductionBudget), ex.MinBudget.Title)
	fmt.Fprintf(r.out, "  Worldwide Gross         : %s\n", FormatCurrency(ex.MinBudget.WorldwideGross))
}

// Listing prints a titled table of films with their budgets. An empty film
// list still prints the title, with no rows under it.
func (r *Reporter) Listing(title string, films []data.Film) {
	fmt.Fprintf(r.out, "\n%s\n", r.yellow(title))
	if len(films) == 0 {
		return
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Movie Title", "Production Budget"})
	for _, f := range films {
		table.Append([]string{f.Title, FormatCurrency(f.ProductionBudget)})
	}
	table.Render()
}

// InternationalListing includes the worldwide gross column.
func (r *Reporter) InternationalListing(title string, films []data.Film) {
	fmt.Fprintf(r.out, "\n%s\n", r.yellow(title))
	if len(films) == 0 {
		return
	}

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Movie Title", "Production Budget", "Worldwide Gross"})
	for _, f := range films {
		table.Append([]string{f.Title, FormatCurrency(f.ProductionBudget), FormatCurrency(f.WorldwideGross)})
	}
	table.Render()
}

func (r *Reporter) Cutoff(split analysis.ReleaseSplit) {
	fmt.Fprintf(r.out, "\nUnreleased films (past cutoff): %d\n", len(split.Unreleased))
	pct, ok := analysis.LossShare(split.Released)
	fmt.Fprintf(r.out, "Percentage of films that lost money: %s\n", FormatPercent(pct, ok))
}

func (r *Reporter) Regression(model *models.LinearRegression, metrics *evaluation.RegressionMetrics, budgets []float64) {
	r.Banner("LINEAR REGRESSION: BUDGET -> REVENUE")
	fmt.Fprintf(r.out, "Intercept (theta0): %s\n", FormatCurrencyFloat(model.Intercept))
	fmt.Fprintf(r.out, "Slope     (theta1): %.2f (revenue per $1 budget)\n", model.Slope)
	if metrics != nil {
		fmt.Fprint(r.out, metrics.FormatMetrics())
	}
	for _, budget := range budgets {
		pred := model.PredictOne(budget)
		fmt.Fprintf(r.out, "Estimated Worldwide Gross for %s budget: %s\n",
			FormatCurrencyFloat(budget), FormatCurrencyFloat(pred))
	}
}
