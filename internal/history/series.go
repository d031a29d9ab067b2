package history

import "anchor-sim/internal/model"

// DefaultPriceWindow is how many price points a series keeps.
const DefaultPriceWindow = 50

// PriceSeries is a fixed-capacity sliding window of price points. Once full,
// each append drops the oldest point.
type PriceSeries struct {
	capacity int
	points   []model.PricePoint
}

func NewPriceSeries(capacity int) *PriceSeries {
	if capacity <= 0 {
		capacity = DefaultPriceWindow
	}
	return &PriceSeries{
		capacity: capacity,
		points:   make([]model.PricePoint, 0, capacity),
	}
}

func (s *PriceSeries) Append(p model.PricePoint) {
	if len(s.points) == s.capacity {
		copy(s.points, s.points[1:])
		s.points = s.points[:len(s.points)-1]
	}
	s.points = append(s.points, p)
}

// Reset replaces the window with a single point.
func (s *PriceSeries) Reset(p model.PricePoint) {
	s.points = append(s.points[:0], p)
}

// Points returns a copy, oldest first.
func (s *PriceSeries) Points() []model.PricePoint {
	out := make([]model.PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

func (s *PriceSeries) Len() int      { return len(s.points) }
func (s *PriceSeries) Capacity() int { return s.capacity }
