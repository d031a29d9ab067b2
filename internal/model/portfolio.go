package model

import "math"

// SimulationState captures the mutable portfolio and price state.
type SimulationState struct {
	CurrentPrice float64
	CashBalance  float64
	SharesHeld   float64
	TradeStatus  TradeStatus
	TickCount    int
}

// InitialState is the state a run starts from and returns to on reset.
func InitialState(cfg SimulationConfig) SimulationState {
	return SimulationState{
		CurrentPrice: cfg.AnchorPrice,
		CashBalance:  cfg.InitialCash,
		SharesHeld:   0,
		TradeStatus:  StatusIdle,
		TickCount:    0,
	}
}

// TotalValue is the marked-to-market portfolio value.
func (s SimulationState) TotalValue() float64 {
	return s.SharesHeld*s.CurrentPrice + s.CashBalance
}

// Skip reasons for ticks that end IDLE.
const (
	ReasonAtAnchor         = "AT_ANCHOR"
	ReasonInsufficientCash = "INSUFFICIENT_CASH"
	ReasonNoShares         = "NO_SHARES"
	ReasonNonPositivePrice = "NON_POSITIVE_PRICE"
)

// Trade captures what the rule did in one tick.
type Trade struct {
	Status     TradeStatus
	Price      float64
	Shares     float64 // shares bought (>0) or sold (<0)
	CashChange float64
	// Reason is set when Status is IDLE.
	Reason string
}

// ApplyTrade prices the tick at newPrice and executes at most one
// micro-trade against the anchor:
// - below the anchor with enough cash: buy amount/newPrice shares
// - above the anchor with shares held: sell min(held, amount/newPrice)
// - otherwise IDLE and the balances are unchanged
//
// A price at or below zero never trades, so SharesHeld stays finite and >= 0.
//
// The returned state carries the new price and status; TickCount is left to
// the caller.
func ApplyTrade(s SimulationState, newPrice, anchor, amount float64) (SimulationState, Trade) {
	next := s
	next.CurrentPrice = newPrice
	tr := Trade{Price: newPrice}

	switch {
	case newPrice <= 0 || math.IsNaN(newPrice):
		tr.Status = StatusIdle
		tr.Reason = ReasonNonPositivePrice
	case newPrice < anchor:
		if s.CashBalance < amount {
			tr.Status = StatusIdle
			tr.Reason = ReasonInsufficientCash
			break
		}
		bought := amount / newPrice
		next.SharesHeld += bought
		next.CashBalance -= amount
		tr.Status = StatusBuying
		tr.Shares = bought
		tr.CashChange = -amount
	case newPrice > anchor:
		if s.SharesHeld <= 0 {
			tr.Status = StatusIdle
			tr.Reason = ReasonNoShares
			break
		}
		sold := math.Min(s.SharesHeld, amount/newPrice)
		proceeds := sold * newPrice
		next.CashBalance += proceeds
		next.SharesHeld -= sold
		tr.Status = StatusSelling
		tr.Shares = -sold
		tr.CashChange = proceeds
	default:
		tr.Status = StatusIdle
		tr.Reason = ReasonAtAnchor
	}

	next.TradeStatus = tr.Status
	return next, tr
}
