package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"anchor-sim/internal/data"
	"anchor-sim/internal/model"
	"anchor-sim/internal/pricemodel"
	"anchor-sim/internal/simulation"
)

// Demo:
// - Load a price tape (or use the built-in 100, 90, 110, 100 walk)
// - Run the anchor rule tick by tick
// - Print what happened and the resulting CSV
func main() {
	tapePath := flag.String("tape", "", "Path to JSON price tape (optional)")
	anchor := flag.Float64("anchor", 100, "Anchor price")
	amount := flag.Float64("amount", 1, "Micro-trade amount in USD")
	flag.Parse()

	prices := []float64{100, 90, 110, 100}
	asset := "ACME"
	if *tapePath != "" {
		tape, err := data.LoadPriceTape(*tapePath)
		if err != nil {
			panic(err)
		}
		prices, asset = tape.Prices, tape.Asset
	}

	cfg := model.DefaultConfig()
	cfg.AssetName = asset
	cfg.AnchorPrice = *anchor
	cfg.MicroTradeAmount = *amount

	s, err := simulation.New(cfg,
		simulation.WithPriceModel(&pricemodel.Replay{Prices: prices}),
		simulation.WithTickerFactory((&simulation.ManualTickers{}).New),
	)
	if err != nil {
		panic(err)
	}
	defer s.Close()
	if err := s.Start(); err != nil {
		panic(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "tick\tprice\tzone\tstatus\tshares\tcash\tvalue\treason")
	for range prices {
		res, err := s.Step()
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\t%.6f\t%.2f\t%.2f\t%s\n",
			res.Point.Time,
			res.Point.Price,
			model.ZoneFor(res.Point.Price, cfg.AnchorPrice),
			res.Trade.Status,
			res.State.SharesHeld,
			res.State.CashBalance,
			res.State.TotalValue(),
			res.Trade.Reason,
		)
	}
	_ = w.Flush()

	if err := s.Pause(); err != nil {
		panic(err)
	}
	fmt.Println()
	if err := s.ExportCSV(os.Stdout); err != nil {
		fmt.Println("export:", err)
		return
	}
	fmt.Println()
}
