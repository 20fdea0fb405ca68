package game

import (
	"fmt"

	"github.com/21pxle/MultiplayerServer/internal/rng"
)

// Outcome categorizes a game event that carries flavor text. Each outcome
// owns its template pool, so the success and failure pools can grow
// independently without index coupling.
type Outcome int

// outcome categories
const (
	// OutcomeChallengeSucceeded means the claim was a bluff; the claimant pays
	OutcomeChallengeSucceeded Outcome = iota

	// OutcomeChallengeFailed means the claim was honest; the challenger pays
	OutcomeChallengeFailed

	// OutcomeEliminated means a player's health reached zero
	OutcomeEliminated
)

// template is a flavor format string. Two-name templates take the defender
// first unless attackerFirst is set; one-name templates ignore the flag.
type template struct {
	format        string
	attackerFirst bool
}

var flavorPools = map[Outcome][]template{
	OutcomeChallengeSucceeded: {
		{format: "%s has to draw the cards because of %s."},
		{format: "%s fell victim to %s."},
		{format: "%s, how dare you lie to %s!"},
		{format: "%s, did you just get caught red-handed by %s?"},
		{format: "Resistance is futile, %s, thanks to %s."},
		{format: "Thank you, %s! You just made %s draw the cards.", attackerFirst: true},
		{format: "Go, %s, you can defeat %s!", attackerFirst: true},
		{format: "Congratulations, %s, you mopped the floor with %s!", attackerFirst: true},
		{format: "%s, how did you know that %s was lying?", attackerFirst: true},
		{format: "Good job, %s, you showed %s the true meaning of Baloney Sandwich!", attackerFirst: true},
	},
	OutcomeChallengeFailed: {
		{format: "Would you like a cupcake, %s?"},
		{format: "If you can't convince them, confuse them, %s."},
		{format: "Might as well not call Baloney Sandwich this time, %s."},
		{format: "Don't feel bad, %s. It's only a game..."},
		{format: "Is that your final answer, %s?"},
		{format: "Better luck next time, %s..."},
		{format: "You're over-thinking it, %s."},
		{format: "Well, at least you tried, %s..."},
		{format: "Well yes, but actually no, %s."},
		{format: "What if I told you, %s, you're wrong?"},
	},
	OutcomeEliminated: {
		{format: "%s has unfortunately died..."},
		{format: "%s could have won..."},
		{format: "%s might do better next time..."},
		{format: "%s, you will be missed..."},
		{format: "%s, practice makes perfect."},
		{format: "%s, the times are tough..."},
		{format: "%s, keep calm and carry on."},
		{format: "%s, don't let your hopes down."},
	},
}

// Flavor picks a random template from the outcome's pool.
// For challenge outcomes, attacker is the challenger and defender the
// claimant; the failure and elimination pools only name the one who pays.
func (o Outcome) Flavor(g rng.Generator, attacker, defender string) string {
	pool := flavorPools[o]
	t := pool[g.Intn(len(pool))]

	switch o {
	case OutcomeChallengeSucceeded:
		if t.attackerFirst {
			return fmt.Sprintf(t.format, attacker, defender)
		}

		return fmt.Sprintf(t.format, defender, attacker)
	case OutcomeChallengeFailed:
		return fmt.Sprintf(t.format, attacker)
	default:
		return fmt.Sprintf(t.format, defender)
	}
}
