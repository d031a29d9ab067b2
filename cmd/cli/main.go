package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"anchor-sim/internal/analysis"
	"anchor-sim/internal/config"
	"anchor-sim/internal/data"
	"anchor-sim/internal/logger"
	"anchor-sim/internal/model"
	"anchor-sim/internal/pricemodel"
	"anchor-sim/internal/simulation"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "replay":
		cmdReplay(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config examples/config.yaml --ticks 500 --out results/balance.csv [--seed 42]")
	fmt.Println("  cli replay --tape examples/tapes/scenario.json --anchor 100 --out results/replay.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - ticks are applied back to back; the trade interval only matters for live sessions")
	fmt.Println("  - output CSV has one row per cash balance change (BUYING/SELLING)")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	ticks := fs.Int("ticks", 100, "Number of ticks to simulate")
	outPath := fs.String("out", "results/balance.csv", "Output CSV path")
	seed := fs.Int64("seed", 0, "Noise seed (0 = time-based)")
	verbose := fs.Bool("v", false, "Log every tick")
	_ = fs.Parse(args)

	cfg := &config.Config{}
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
	}

	pm, err := pricemodel.Build(cfg.PriceModel.Name, cfg.PriceModel.Params, pricemodel.NewSeeded(*seed))
	if err != nil {
		fatal(err)
	}
	run(cfg.ToModelConfig(), pm, *ticks, *outPath, *verbose)
}

func cmdReplay(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	tapePath := fs.String("tape", "", "Path to JSON price tape")
	anchor := fs.Float64("anchor", 0, "Anchor price (default: first tape price)")
	amount := fs.Float64("amount", 0, "Micro-trade amount in USD (default 1)")
	cash := fs.Float64("cash", 0, "Initial cash in USD (default 1000)")
	outPath := fs.String("out", "results/replay.csv", "Output CSV path")
	verbose := fs.Bool("v", false, "Log every tick")
	_ = fs.Parse(args)

	if *tapePath == "" {
		fmt.Println("--tape is required")
		os.Exit(2)
	}
	tape, err := data.LoadPriceTape(*tapePath)
	if err != nil {
		fatal(err)
	}

	asset := config.AssetConfig{
		Name:             tape.Asset,
		AnchorPrice:      *anchor,
		MicroTradeAmount: *amount,
		InitialCash:      *cash,
	}
	if asset.AnchorPrice == 0 {
		asset.AnchorPrice = tape.Prices[0]
	}
	run(asset.ToModelConfig(), &pricemodel.Replay{Prices: tape.Prices}, len(tape.Prices), *outPath, *verbose)
}

func run(cfg model.SimulationConfig, pm pricemodel.Model, ticks int, outPath string, verbose bool) {
	level := "info"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Console: true, Development: true})
	if err != nil {
		fatal(err)
	}
	defer func() { _ = log.Sync() }()

	// Nothing fires the manual ticker; Step drives the session.
	s, err := simulation.New(cfg,
		simulation.WithLogger(log),
		simulation.WithPriceModel(pm),
		simulation.WithTickerFactory((&simulation.ManualTickers{}).New),
	)
	if err != nil {
		fatal(err)
	}
	defer s.Close()

	if err := s.Start(); err != nil {
		fatal(err)
	}
	for i := 0; i < ticks; i++ {
		if _, err := s.Step(); err != nil {
			fatal(err)
		}
	}
	if err := s.Pause(); err != nil {
		fatal(err)
	}

	sum := analysis.Summarize(s.Snapshot())
	if err := writeCSV(s, outPath); err != nil {
		if !errors.Is(err, simulation.ErrExportUnavailable) {
			fatal(err)
		}
		log.Warn("no trades executed; CSV not written")
	} else {
		fmt.Printf("Wrote %d balance events to %s\n", sum.Buys+sum.Sells+1, outPath)
	}
	fmt.Printf("Ticks=%d Buys=%d Sells=%d\n", sum.Ticks, sum.Buys, sum.Sells)
	fmt.Printf("Cash=$%.2f Shares=%.6f Total=$%.2f PnL=$%.2f\n", sum.CashBalance, sum.SharesHeld, sum.TotalValue, sum.PNL)
	fmt.Printf("Window prices: min=%.2f p05=%.2f mean=%.2f p95=%.2f max=%.2f\n",
		sum.Prices.Min, sum.Prices.P05, sum.Prices.Mean, sum.Prices.P95, sum.Prices.Max)
	log.Debug("run finished", zap.Int("ticks", sum.Ticks))
}

func writeCSV(s *simulation.Session, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := s.ExportCSV(f); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
