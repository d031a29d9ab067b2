package simulation

import "anchor-sim/internal/model"

// Snapshot is a read-only copy of a session. This is what views render and
// what the API serves.
type Snapshot struct {
	ID    string
	Model string

	Config   model.SimulationConfig
	State    model.SimulationState
	RunState model.RunState
	Zone     model.Zone

	TotalValue float64

	Prices   []model.PricePoint
	Balances []model.BalanceEvent

	// Version increases on every mutation; equal versions mean equal snapshots.
	Version   uint64
	CanExport bool
	Closed    bool
}

// TickResult is what happened in one tick.
type TickResult struct {
	Point model.PricePoint
	Trade model.Trade
	State model.SimulationState
	// Event is nil when the cash balance did not change.
	Event *model.BalanceEvent
}
