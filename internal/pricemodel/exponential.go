package pricemodel

import "math"

// DefaultExponentialVolatility scales the noise as a fraction of the trend.
const DefaultExponentialVolatility = 0.015

// Exponential samples noise around a compounding trend rather than the
// previous price:
//
//	trend = anchor * (1+GrowthRate)^tick
//	next  = trend + U(-1,1) * trend * Volatility
type Exponential struct {
	Volatility float64
	Noise      Noise
}

func (m *Exponential) Name() string { return "exponential" }

func (m *Exponential) Next(ctx Context) float64 {
	trend := Trend(ctx.Anchor, ctx.GrowthRate, ctx.Tick)
	return trend + m.Noise()*(trend*m.Volatility)
}

// Trend is the noise-free baseline of the exponential model at tick t.
func Trend(anchor, growth float64, t int) float64 {
	return anchor * math.Pow(1+growth, float64(t))
}
