package game

// Options configure a single game session
type Options struct {
	// MaxHealth is the health every player starts with
	MaxHealth int

	// ChallengeDamage is the health lost per pile card when a challenge resolves
	ChallengeDamage int

	// AttackDamage is the health the next player loses per card played
	AttackDamage int

	// Seed overrides the deck seed. Only tests should set this.
	Seed int64
}

// DefaultOptions returns the standard rule set
func DefaultOptions() Options {
	return Options{
		MaxHealth:       200,
		ChallengeDamage: 4,
		AttackDamage:    3,
	}
}
