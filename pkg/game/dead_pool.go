package game

import (
	"github.com/21pxle/MultiplayerServer/internal/rng"
	"github.com/21pxle/MultiplayerServer/pkg/deck"
)

// DeadPool collects the cards of eliminated players for redistribution to
// the survivors
type DeadPool struct {
	cards []*deck.Card
	rng   rng.Generator
}

// NewDeadPool returns an empty pool
func NewDeadPool(g rng.Generator) *DeadPool {
	return &DeadPool{rng: g}
}

// AddHand shuffles an eliminated player's hand into the pool
func (p *DeadPool) AddHand(cards []*deck.Card) {
	p.cards = append(p.cards, cards...)
	rng.Shuffle(p.rng, len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
}

// Draw removes and returns the top card, or nil if the pool is empty
func (p *DeadPool) Draw() *deck.Card {
	if len(p.cards) == 0 {
		return nil
	}

	card := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]

	return card
}

// DrawN removes and returns up to n cards
func (p *DeadPool) DrawN(n int) []*deck.Card {
	if n > len(p.cards) {
		n = len(p.cards)
	}

	cards := make([]*deck.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, p.Draw())
	}

	return cards
}

// Size returns the number of cards in the pool
func (p *DeadPool) Size() int {
	return len(p.cards)
}

// PerSurvivor returns how many cards each of n survivors is owed
func (p *DeadPool) PerSurvivor(n int) int {
	if n == 0 {
		return 0
	}

	return len(p.cards) / n
}
