// Package main provides the headers command-line tool, which lists the request
// headers documented for each endpoint of an exported API collection.
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
	formatFlag := flag.String("format", string(report.FormatLines), "Output format: lines or table")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.ResolveOrDefault(*configFile)
	log := logger.NewLogger(cfg.Logging.Level).With("tool", "headers")

	if err != nil {
		log.Warn("failed to load config, proceeding with defaults", "error", err)
	}

	log.Debug("starting", "config", cfg.String(), "format", format)

	report.NewRunner(log).Headers(os.Stdout, cfg.Input.Path, format)
}

func printUsage() {
	fmt.Println("Usage: ./bin/headers [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/headers")
	fmt.Println("  ./bin/headers -format table -config configs/apiextract.yaml")
}
