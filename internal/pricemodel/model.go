package pricemodel

// Context is what a model sees when producing the price for one tick.
type Context struct {
	// Tick is the index of the point being produced (first tick is 1).
	Tick int
	// Prev is the price of the previous tick, or the anchor before the first one.
	Prev       float64
	Anchor     float64
	GrowthRate float64
}

type Model interface {
	Name() string
	Next(ctx Context) float64
}
