package gameplay

import "math/rand"

// Source supplies uniform samples in [0, 1). Spawning draws all of its
// randomness from a Source so runs are reproducible from a seed.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
