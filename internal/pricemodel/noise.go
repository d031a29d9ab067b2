package pricemodel

import (
	"math/rand"
	"time"
)

// Noise returns a uniform sample in [-1, 1).
// Implementations are not safe for concurrent use.
type Noise func() float64

func NewUniform(r *rand.Rand) Noise {
	return func() float64 {
		return r.Float64()*2 - 1
	}
}

// NewSeeded returns uniform noise from a deterministic source. A zero seed
// uses the current time.
func NewSeeded(seed int64) Noise {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewUniform(rand.New(rand.NewSource(seed)))
}
