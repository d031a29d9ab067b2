package models

import "time"

// SessionResponse is returned when a session is created or fetched.
type SessionResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Snapshot  SnapshotResponse `json:"snapshot"`
	Summary   *SummaryResponse `json:"summary,omitempty"`
}

// SnapshotResponse is the JSON view of a session.
type SnapshotResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Config     ConfigResponse `json:"config"`
	State      StateResponse  `json:"state"`
	RunState   string         `json:"run_state"` // "STOPPED", "RUNNING", "PAUSED"
	Zone       string         `json:"zone"`      // "BUY", "SELL"
	TotalValue float64        `json:"total_value"`
	Prices     []PricePoint   `json:"prices"`
	Balances   []BalanceEvent `json:"balances"`
	Version    uint64         `json:"version"`
	CanExport  bool           `json:"can_export"`
	Closed     bool           `json:"closed,omitempty"`
}

type ConfigResponse struct {
	AssetName        string  `json:"asset_name"`
	AnchorPrice      float64 `json:"anchor_price"`
	MicroTradeAmount float64 `json:"micro_trade_amount"`
	TradeInterval    int     `json:"trade_interval"` // seconds
	GrowthRate       float64 `json:"growth_rate"`
	InitialCash      float64 `json:"initial_cash"`
}

type StateResponse struct {
	CurrentPrice float64 `json:"current_price"`
	CashBalance  float64 `json:"cash_balance"`
	SharesHeld   float64 `json:"shares_held"`
	TradeStatus  string  `json:"trade_status"` // "IDLE", "BUYING", "SELLING", "PAUSED"
	Tick         int     `json:"tick"`
}

type PricePoint struct {
	Time  int     `json:"time"`
	Price float64 `json:"price"`
}

type BalanceEvent struct {
	Time    int      `json:"time"`
	Balance float64  `json:"balance"`
	Change  float64  `json:"change"`
	Action  string   `json:"action"`
	Price   *float64 `json:"price"` // null for INITIAL
}

// SummaryResponse contains aggregated session results
type SummaryResponse struct {
	Ticks        int     `json:"ticks"`
	Buys         int     `json:"buys"`
	Sells        int     `json:"sells"`
	CashBalance  float64 `json:"cash_balance"`
	SharesHeld   float64 `json:"shares_held"`
	TotalValue   float64 `json:"total_value"`
	PNL          float64 `json:"pnl"`
	CashSpent    float64 `json:"cash_spent"`
	CashReceived float64 `json:"cash_received"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	MeanPrice    float64 `json:"mean_price"`
	P05Price     float64 `json:"p05_price"`
	P95Price     float64 `json:"p95_price"`
	BelowAnchor  float64 `json:"below_anchor"`
}

// StreamFrame is one websocket message.
type StreamFrame struct {
	Type string            `json:"type"` // "snapshot", "closed"
	Data *SnapshotResponse `json:"data,omitempty"`
}

// AssetInfo represents information about an asset preset
type AssetInfo struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	File             string  `json:"file"`
	AnchorPrice      float64 `json:"anchor_price"`
	MicroTradeAmount float64 `json:"micro_trade_amount"`
	TradeInterval    int     `json:"trade_interval"`
}

// ModelInfo represents information about a price model
type ModelInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a price model parameter
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float", "[]float"
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
