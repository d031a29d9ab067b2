package pricemodel

// Replay plays back a fixed price sequence, one value per tick. Once the
// tape is exhausted it holds the previous price.
type Replay struct {
	Prices []float64
}

func (m *Replay) Name() string { return "replay" }

func (m *Replay) Next(ctx Context) float64 {
	i := ctx.Tick - 1
	if i < 0 || i >= len(m.Prices) {
		return ctx.Prev
	}
	return m.Prices[i]
}
