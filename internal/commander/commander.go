package commander

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"filmstats/internal/analysis"
	"filmstats/internal/chart"
	"filmstats/internal/config"
	"filmstats/internal/data"
	"filmstats/internal/evaluation"
	"filmstats/internal/models"
	"filmstats/internal/pipeline"
	"filmstats/internal/report"
)

// Commander is the interactive shell around the analysis stages. State is a
// single loaded table plus the last fitted regression.
type Commander struct {
	cfg        *config.AnalysisConfig
	films      []data.Film
	sourceFile string
	model      *models.LinearRegression
	reporter   *report.Reporter

	green  func(a ...any) string
	red    func(a ...any) string
	yellow func(a ...any) string
	cyan   func(a ...any) string
}

func NewCommander(cfg *config.AnalysisConfig) *Commander {
	return &Commander{
		cfg:      cfg,
		reporter: report.NewReporter(os.Stdout),
		green:    color.New(color.FgGreen).SprintFunc(),
		red:      color.New(color.FgRed).SprintFunc(),
		yellow:   color.New(color.FgYellow).SprintFunc(),
		cyan:     color.New(color.FgCyan).SprintFunc(),
	}
}

func (c *Commander) Start() {
	c.printWelcome()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(c.yellow("\nfilmstats> "))
		if !scanner.Scan() {
			if scanner.Err() != nil {
				fmt.Printf("\n%s Scanner error: %v\n", c.red("x"), scanner.Err())
			}
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		if command == "exit" || command == "quit" {
			fmt.Println(c.green("Bye."))
			return
		}

		c.ExecuteCommand(command, args)
	}
}

func (c *Commander) ExecuteCommand(command string, args []string) {
	switch command {
	case "help", "h":
		c.showHelp()
	case "load":
		if len(args) > 0 {
			c.loadData(args[0])
		} else {
			fmt.Println(c.red("Usage: load <filename>"))
		}
	case "run":
		c.runPipeline(args)
	case "overview":
		c.withData(func() {
			c.reporter.Overview(analysis.Summarize(c.films))
		})
	case "quartile":
		c.withData(func() {
			c.reporter.Quartile(analysis.BottomQuartile(c.films))
		})
	case "chart":
		c.withData(c.showChart)
	case "extremes":
		c.withData(func() {
			c.reporter.Extremes(analysis.FindExtremes(c.films))
		})
	case "zero":
		c.withData(func() {
			c.reporter.Listing(fmt.Sprintf("Top %d highest-budget films with $0 domestic gross:", c.cfg.TopN),
				analysis.ZeroDomestic(c.films, c.cfg.TopN))
			c.reporter.Listing(fmt.Sprintf("Top %d highest-budget films with $0 worldwide gross:", c.cfg.TopN),
				analysis.ZeroWorldwide(c.films, c.cfg.TopN))
		})
	case "intl":
		c.withData(func() {
			c.reporter.InternationalListing("International-only releases:",
				analysis.InternationalOnly(c.films, c.cfg.TopN))
		})
	case "regress":
		c.withData(c.regress)
	case "info":
		c.showDataInfo()
	default:
		fmt.Printf("%s Unknown command: %s (try 'help')\n", c.red("x"), command)
	}
}

func (c *Commander) printWelcome() {
	fmt.Println(c.cyan("filmstats - movie budget & revenue analysis"))
	fmt.Println("Type 'help' for commands, 'exit' to quit.")
}

func (c *Commander) showHelp() {
	fmt.Println(c.cyan("Commands:"))
	fmt.Println("  load <file>   Load and clean a movie dataset CSV")
	fmt.Println("  run [file]    Run the full report pipeline")
	fmt.Println("  overview      Dataset shape, date range, means and minimums")
	fmt.Println("  quartile      Bottom 25% profitability split")
	fmt.Println("  chart         Profit histogram for the bottom quartile")
	fmt.Println("  extremes      Highest/lowest budget and revenue films")
	fmt.Println("  zero          Zero domestic/worldwide gross listings")
	fmt.Println("  intl          International-only releases")
	fmt.Println("  regress       Fit budget -> worldwide gross OLS")
	fmt.Println("  info          Loaded dataset details")
	fmt.Println("  exit          Quit")
}

func (c *Commander) withData(fn func()) {
	if c.films == nil {
		fmt.Println(c.red("No data loaded. Use: load <filename>"))
		return
	}
	fn()
}

func (c *Commander) loadData(filename string) {
	films, err := data.NewCSVReader(filename).LoadFilms()
	if err != nil {
		fmt.Printf("%s Failed to load data: %v\n", c.red("x"), err)
		return
	}

	if err := data.NewDataValidator().ValidateFilms(films); err != nil {
		fmt.Printf("%s Data validation failed: %v\n", c.red("x"), err)
		return
	}

	c.films = films
	c.sourceFile = filename
	c.model = nil
	fmt.Printf("%s Loaded %d films from %s\n", c.green("ok"), len(films), filename)
}

func (c *Commander) runPipeline(args []string) {
	path := c.sourceFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = c.cfg.Dataset
	}

	runner := pipeline.NewRunner(c.cfg, os.Stdout)
	if err := runner.Run(path); err != nil {
		fmt.Printf("%s Pipeline failed: %v\n", c.red("x"), err)
	}
}

func (c *Commander) showChart() {
	segment := analysis.BottomQuartile(c.films)
	hist := chart.BuildHistogram(data.Profits(segment.Films), c.cfg.HistogramBins)
	if hist == nil {
		fmt.Println(c.yellow("Bottom quartile is empty; nothing to plot."))
		return
	}
	fmt.Println("Profit Distribution - Bottom 25% Movies")
	hist.Render(os.Stdout, 40)
}

func (c *Commander) regress() {
	cutoff, err := c.cfg.Cutoff()
	if err != nil {
		fmt.Printf("%s %v\n", c.red("x"), err)
		return
	}

	split := analysis.SplitByCutoff(c.films, cutoff)
	x := data.Budgets(split.Released)
	y := data.WorldwideGrosses(split.Released)

	model := models.NewLinearRegression()
	if err := model.Fit(x, y); err != nil {
		fmt.Printf("%s Regression failed: %v\n", c.red("x"), err)
		return
	}
	c.model = model

	metrics := evaluation.CalculateMetrics(y, model.Predict(x))
	c.reporter.Cutoff(split)
	c.reporter.Regression(model, metrics, c.cfg.PredictionBudgets)
}

func (c *Commander) showDataInfo() {
	if c.films == nil {
		fmt.Println(c.yellow("No data loaded."))
		return
	}
	fmt.Printf("Source file : %s\n", c.sourceFile)
	fmt.Printf("Films       : %d\n", len(c.films))
	if c.model != nil && c.model.IsFitted {
		fmt.Printf("Model       : %s (slope %.4f, intercept %.2f)\n",
			c.model.GetName(), c.model.Slope, c.model.Intercept)
	}
}
