package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21pxle/MultiplayerServer/internal/rng"
)

// fixedRNG always picks the same index
type fixedRNG int

func (f fixedRNG) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

func TestOutcome_Flavor(t *testing.T) {
	a := assert.New(t)

	// defender-first template
	a.Equal("bob has to draw the cards because of alice.",
		OutcomeChallengeSucceeded.Flavor(fixedRNG(0), "alice", "bob"))

	// attacker-first template
	a.Equal("Thank you, alice! You just made bob draw the cards.",
		OutcomeChallengeSucceeded.Flavor(fixedRNG(5), "alice", "bob"))

	// a failed challenge only names the challenger
	a.Equal("Would you like a cupcake, alice?",
		OutcomeChallengeFailed.Flavor(fixedRNG(0), "alice", "bob"))

	// an elimination only names the fallen
	a.Equal("bob has unfortunately died...",
		OutcomeEliminated.Flavor(fixedRNG(0), "", "bob"))
}

func TestOutcome_Flavor_namesFilled(t *testing.T) {
	for outcome, pool := range flavorPools {
		for i := range pool {
			text := outcome.Flavor(fixedRNG(i), "alice", "bob")
			assert.NotContains(t, text, "%s", text)
			assert.NotContains(t, text, "%!", text)
		}
	}
}

func TestOutcome_Flavor_random(t *testing.T) {
	g := rng.Seeded(1)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[OutcomeChallengeFailed.Flavor(g, "alice", "bob")] = true
	}

	// with 100 picks over a pool of 10 we should see real variety
	assert.Greater(t, len(seen), 1)
	for text := range seen {
		assert.True(t, strings.Contains(text, "alice"), text)
	}
}
