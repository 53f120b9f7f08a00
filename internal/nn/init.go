package nn

import (
	"fmt"
	"math/rand"
)

// Initializer draws initial parameter values uniformly from [low, high).
//
// It owns a seeded generator, so two initializers built with the same seed
// and range produce the same sequence of values.
type Initializer struct {
	rng       *rand.Rand
	low, high float64
}

// NewUniform creates an initializer sampling U(low, high) from a generator
// seeded with seed.
func NewUniform(seed int64, low, high float64) (*Initializer, error) {
	if !(low < high) {
		return nil, fmt.Errorf("%w: init range [%v, %v) is empty", ErrInvalidConfig, low, high)
	}
	return &Initializer{
		rng:  rand.New(rand.NewSource(seed)), //nolint:gosec // Deterministic seed for reproducible weights
		low:  low,
		high: high,
	}, nil
}

// Next returns the next initial value.
func (i *Initializer) Next() float64 {
	return i.low + i.rng.Float64()*(i.high-i.low)
}
