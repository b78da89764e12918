package main

import (
	"flag"

	"filmstats/internal/commander"
	"filmstats/internal/config"
)

func main() {
	configFile := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg := config.Load(*configFile)
	cmd := commander.NewCommander(cfg)
	cmd.Start()
}
