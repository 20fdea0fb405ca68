package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from the operating system's entropy source. Live games shuffle
// with it; tests swap in Seeded.
type Crypto struct{}

// Intn returns a uniform random int in [0, n)
func (Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}
