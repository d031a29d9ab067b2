package analysis

import (
	"math"
	"sort"

	"anchor-sim/internal/model"
	"anchor-sim/internal/simulation"
)

// PriceStats summarizes the retained price window.
type PriceStats struct {
	Count int

	Min  float64
	Max  float64
	Mean float64
	P05  float64
	P95  float64

	// BelowAnchor is the share of points in the buy zone, 0..1.
	BelowAnchor float64
}

// Summary is a portfolio-level view of a session snapshot.
type Summary struct {
	Ticks int

	Buys  int
	Sells int

	CashBalance float64
	SharesHeld  float64
	TotalValue  float64
	// PNL is TotalValue minus the initial cash.
	PNL float64

	// CashSpent and CashReceived are gross flows across the balance log.
	CashSpent    float64
	CashReceived float64

	Prices PriceStats
}

func Summarize(snap simulation.Snapshot) Summary {
	s := Summary{
		Ticks:       snap.State.TickCount,
		CashBalance: snap.State.CashBalance,
		SharesHeld:  snap.State.SharesHeld,
		TotalValue:  snap.TotalValue,
		PNL:         snap.TotalValue - snap.Config.InitialCash,
		Prices:      ComputePriceStats(snap.Prices, snap.Config.AnchorPrice),
	}
	for _, ev := range snap.Balances {
		switch ev.Action {
		case model.ActionBuying:
			s.Buys++
			s.CashSpent += -ev.Change
		case model.ActionSelling:
			s.Sells++
			s.CashReceived += ev.Change
		}
	}
	return s
}

func ComputePriceStats(points []model.PricePoint, anchor float64) PriceStats {
	p := PriceStats{}
	if len(points) == 0 {
		return p
	}
	p.Count = len(points)

	sum := 0.0
	below := 0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(points))
	for _, pt := range points {
		v := pt.Price
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
		if v < anchor {
			below++
		}
	}
	sort.Float64s(vals)
	p.Min = minv
	p.Max = maxv
	p.Mean = sum / float64(len(vals))
	p.P05 = percentileSorted(vals, 0.05)
	p.P95 = percentileSorted(vals, 0.95)
	p.BelowAnchor = float64(below) / float64(len(vals))
	return p
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
