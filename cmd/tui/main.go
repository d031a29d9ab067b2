package main

import (
	"flag"
	"fmt"
	"os"

	"anchor-sim/internal/config"
	"anchor-sim/internal/logger"
	"anchor-sim/internal/pricemodel"
	"anchor-sim/internal/simulation"
	"anchor-sim/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	seed := flag.Int64("seed", 0, "Noise seed (0 = time-based)")
	exportDir := flag.String("export-dir", ".", "Directory for exported CSV files")
	logFile := flag.String("log", "", "Optional log file; the terminal is owned by the UI")
	flag.Parse()

	cfg := &config.Config{}
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}

	lg, err := logger.New(logger.Config{Level: "debug", File: *logFile, MaxSize: 10, MaxBackups: 1})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	pm, err := pricemodel.Build(cfg.PriceModel.Name, cfg.PriceModel.Params, pricemodel.NewSeeded(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "price model: %v\n", err)
		os.Exit(1)
	}
	s, err := simulation.New(cfg.ToModelConfig(),
		simulation.WithLogger(lg),
		simulation.WithPriceModel(pm),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	p := tea.NewProgram(tui.NewModel(s, *exportDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
