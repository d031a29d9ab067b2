package models

// CreateSessionRequest is the optional body of POST /api/v1/sessions.
// All fields are optional; unset asset fields fall back to defaults.
type CreateSessionRequest struct {
	AssetFile  string           `json:"asset_file,omitempty"` // preset id from GET /assets, e.g. "acme"
	Asset      AssetConfig      `json:"asset,omitempty"`
	PriceModel PriceModelConfig `json:"price_model,omitempty"`
	Seed       int64            `json:"seed,omitempty"` // 0 = time-based noise
}

// AssetConfig defines the operator inputs of a session.
type AssetConfig struct {
	Name             string  `json:"name,omitempty"`
	AnchorPrice      float64 `json:"anchor_price,omitempty"`
	MicroTradeAmount float64 `json:"micro_trade_amount,omitempty"`
	TradeInterval    int     `json:"trade_interval,omitempty"` // seconds
	InitialCash      float64 `json:"initial_cash,omitempty"`
}

// PriceModelConfig selects a price model and its parameters.
type PriceModelConfig struct {
	Name   string         `json:"name,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// UpdateConfigRequest is the body of PATCH /api/v1/sessions/:id/config.
// Omitted fields are left unchanged.
type UpdateConfigRequest struct {
	AssetName        *string  `json:"asset_name"`
	AnchorPrice      *float64 `json:"anchor_price"`
	MicroTradeAmount *float64 `json:"micro_trade_amount"`
	TradeInterval    *int     `json:"trade_interval"` // seconds
}
