package pricemodel

// DefaultLinearVolatility scales the per-tick step as a fraction of the anchor.
const DefaultLinearVolatility = 0.01

// Linear random-walks the previous price:
//
//	next = prev + U(-1,1) * anchor * Volatility
//
// Prices are not bounded and may go negative.
type Linear struct {
	Volatility float64
	Noise      Noise
}

func (m *Linear) Name() string { return "linear" }

func (m *Linear) Next(ctx Context) float64 {
	return ctx.Prev + m.Noise()*(ctx.Anchor*m.Volatility)
}
