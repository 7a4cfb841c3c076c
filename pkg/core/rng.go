package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. Values outside [0,1] saturate.
func (r *RNG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// RandomInitializer returns an Initializer that marks each cell alive with
// probability density. The returned function draws from its own RNG, so a
// given seed always produces the same pattern for the same evaluation order.
func RandomInitializer(seed int64, density float64) Initializer {
	rng := NewRNG(seed)
	return func(int, int) bool { return rng.Chance(density) }
}
