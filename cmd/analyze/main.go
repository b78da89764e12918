package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"filmstats/internal/config"
	"filmstats/internal/pipeline"
)

func main() {
	dataFile := flag.String("data", "", "Path to the movie budget/revenue CSV file")
	configFile := flag.String("config", "config/config.yaml", "Path to configuration file")
	showChart := flag.Bool("chart", true, "Render the profit histogram")
	topN := flag.Int("top", 0, "Override top-N for the zero-revenue listings")
	bins := flag.Int("bins", 0, "Override histogram bin count")

	flag.Parse()

	cfg := config.Load(*configFile)
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if *bins > 0 {
		cfg.HistogramBins = *bins
	}

	path := cfg.Dataset
	if *dataFile != "" {
		path = *dataFile
	}
	if path == "" {
		fmt.Println("Usage:")
		fmt.Println("  go run cmd/analyze/main.go -data data/cost_revenue_dirty.csv")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	runner := pipeline.NewRunner(cfg, os.Stdout)
	runner.ShowChart = *showChart
	if err := runner.Run(path); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}
