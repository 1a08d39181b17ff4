// Package main provides the extractor command-line tool, which prints the
// endpoints of an exported API collection that deal with customers.
package main

import (
	"flag"
	"fmt"
	"os"

	"apiextract/internal/config"
	"apiextract/internal/logger"
	"apiextract/internal/report"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: "+config.DefaultConfigPath+" if present)")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.ResolveOrDefault(*configFile)
	log := logger.NewLogger(cfg.Logging.Level).With("tool", "extractor")

	if err != nil {
		log.Warn("failed to load config, proceeding with defaults", "error", err)
	}

	log.Debug("starting", "config", cfg.String())

	report.NewRunner(log).Matches(os.Stdout, cfg.Input.Path)
}

func printUsage() {
	fmt.Println("Usage: ./bin/extractor [OPTIONS]")
	fmt.Println()
	fmt.Println("Prints every record of the collection whose url or title mentions \"clientes\".")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
