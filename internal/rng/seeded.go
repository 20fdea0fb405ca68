package rng

import "math/rand"

// Seeded returns a deterministic generator for tests
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
