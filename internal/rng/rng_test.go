package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	g := Crypto{}
	for i := 0; i < 100; i++ {
		n := g.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}

	assert.Equal(t, 0, g.Intn(1))
}

func TestShuffle(t *testing.T) {
	shuffled := func(seed int64) []int {
		s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		Shuffle(Seeded(seed), len(s), func(i, j int) {
			s[i], s[j] = s[j], s[i]
		})
		return s
	}

	assert.Equal(t, shuffled(1), shuffled(1))
	assert.NotEqual(t, shuffled(1), shuffled(2))

	// a shuffle is a permutation
	seen := make(map[int]bool)
	for _, v := range shuffled(3) {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}
