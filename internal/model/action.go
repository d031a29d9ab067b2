package model

// Action classifies a balance event. Keep these values stable; they are
// written verbatim to CSV exports.
type Action string

const (
	ActionInitial Action = "INITIAL"
	ActionBuying  Action = "BUYING"
	ActionSelling Action = "SELLING"
	ActionIdle    Action = "IDLE"
)

// TradeStatus is the classification of the last tick.
type TradeStatus string

const (
	StatusIdle    TradeStatus = "IDLE"
	StatusBuying  TradeStatus = "BUYING"
	StatusSelling TradeStatus = "SELLING"
	StatusPaused  TradeStatus = "PAUSED"
)

// RunState is the control loop state.
type RunState string

const (
	RunStopped RunState = "STOPPED"
	RunRunning RunState = "RUNNING"
	RunPaused  RunState = "PAUSED"
)

// Zone is the decision region the current price sits in.
type Zone string

const (
	ZoneBuy  Zone = "BUY"
	ZoneSell Zone = "SELL"
)

func ActionFromStatus(s TradeStatus) Action {
	switch s {
	case StatusBuying:
		return ActionBuying
	case StatusSelling:
		return ActionSelling
	default:
		return ActionIdle
	}
}

// ZoneFor returns BUY when price is below the anchor and SELL otherwise.
func ZoneFor(price, anchor float64) Zone {
	if price < anchor {
		return ZoneBuy
	}
	return ZoneSell
}
