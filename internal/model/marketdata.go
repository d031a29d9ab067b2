package model

// PricePoint is one sample of the simulated price path.
type PricePoint struct {
	Time  int     `json:"time"`
	Price float64 `json:"price"`
}

// BalanceEvent records a change of the cash balance.
// Price is nil for the INITIAL event.
type BalanceEvent struct {
	Time    int      `json:"time"`
	Balance float64  `json:"balance"`
	Change  float64  `json:"change"`
	Action  Action   `json:"action"`
	Price   *float64 `json:"price,omitempty"`
}

// PriceTape matches the JSON shape of a recorded price sequence.
//
// Example:
//
//	{
//	  "asset": "ACME",
//	  "prices": [100, 90, 110, 100]
//	}
type PriceTape struct {
	Asset  string    `json:"asset"`
	Prices []float64 `json:"prices"`
}
