package handlers

import (
	"anchor-sim/internal/analysis"
	"anchor-sim/internal/api/models"
	"anchor-sim/internal/simulation"
)

func toSnapshotResponse(s simulation.Snapshot) models.SnapshotResponse {
	out := models.SnapshotResponse{
		ID:    s.ID,
		Model: s.Model,
		Config: models.ConfigResponse{
			AssetName:        s.Config.AssetName,
			AnchorPrice:      s.Config.AnchorPrice,
			MicroTradeAmount: s.Config.MicroTradeAmount,
			TradeInterval:    s.Config.IntervalSeconds(),
			GrowthRate:       s.Config.GrowthRate,
			InitialCash:      s.Config.InitialCash,
		},
		State: models.StateResponse{
			CurrentPrice: s.State.CurrentPrice,
			CashBalance:  s.State.CashBalance,
			SharesHeld:   s.State.SharesHeld,
			TradeStatus:  string(s.State.TradeStatus),
			Tick:         s.State.TickCount,
		},
		RunState:   string(s.RunState),
		Zone:       string(s.Zone),
		TotalValue: s.TotalValue,
		Prices:     make([]models.PricePoint, 0, len(s.Prices)),
		Balances:   make([]models.BalanceEvent, 0, len(s.Balances)),
		Version:    s.Version,
		CanExport:  s.CanExport,
		Closed:     s.Closed,
	}
	for _, p := range s.Prices {
		out.Prices = append(out.Prices, models.PricePoint{Time: p.Time, Price: p.Price})
	}
	for _, ev := range s.Balances {
		out.Balances = append(out.Balances, models.BalanceEvent{
			Time:    ev.Time,
			Balance: ev.Balance,
			Change:  ev.Change,
			Action:  string(ev.Action),
			Price:   ev.Price,
		})
	}
	return out
}

func toSummaryResponse(s analysis.Summary) models.SummaryResponse {
	return models.SummaryResponse{
		Ticks:        s.Ticks,
		Buys:         s.Buys,
		Sells:        s.Sells,
		CashBalance:  s.CashBalance,
		SharesHeld:   s.SharesHeld,
		TotalValue:   s.TotalValue,
		PNL:          s.PNL,
		CashSpent:    s.CashSpent,
		CashReceived: s.CashReceived,
		MinPrice:     s.Prices.Min,
		MaxPrice:     s.Prices.Max,
		MeanPrice:    s.Prices.Mean,
		P05Price:     s.Prices.P05,
		P95Price:     s.Prices.P95,
		BelowAnchor:  s.Prices.BelowAnchor,
	}
}
