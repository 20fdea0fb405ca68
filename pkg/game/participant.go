package game

import "github.com/21pxle/MultiplayerServer/pkg/deck"

// Participant is the server-side record of a player in the game
type Participant struct {
	Username  string
	Hand      deck.Hand
	Health    int
	MaxHealth int

	// ackedHand is set once the player confirmed their dealt hand
	ackedHand bool
}

func newParticipant(username string, maxHealth int) *Participant {
	return &Participant{
		Username:  username,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// ApplyDamage reduces the participant's health, clamped at zero, and returns
// the resulting health
func (p *Participant) ApplyDamage(damage int) int {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}

	return p.Health
}

// Alive returns true if the participant still has health left
func (p *Participant) Alive() bool {
	return p.Health > 0
}
