package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21pxle/MultiplayerServer/internal/rng"
	"github.com/21pxle/MultiplayerServer/pkg/deck"
)

func TestDeadPool(t *testing.T) {
	a := assert.New(t)

	pool := NewDeadPool(rng.Seeded(1))
	a.Equal(0, pool.Size())
	a.Nil(pool.Draw())

	hand := []*deck.Card{
		{Rank: 2, Suit: deck.Clubs},
		{Rank: 3, Suit: deck.Clubs},
		{Rank: 4, Suit: deck.Clubs},
		{Rank: 5, Suit: deck.Clubs},
		{Rank: 6, Suit: deck.Clubs},
	}
	pool.AddHand(hand)
	a.Equal(5, pool.Size())

	a.Equal(2, pool.PerSurvivor(2))
	a.Equal(1, pool.PerSurvivor(3))
	a.Equal(0, pool.PerSurvivor(0))

	cards := pool.DrawN(2)
	a.Len(cards, 2)
	a.Equal(3, pool.Size())

	// DrawN clamps to what remains
	cards = pool.DrawN(10)
	a.Len(cards, 3)
	a.Equal(0, pool.Size())
}

func TestDeadPool_shuffles(t *testing.T) {
	hand := make([]*deck.Card, 0, 13)
	for rank := deck.Ace; rank <= deck.King; rank++ {
		hand = append(hand, &deck.Card{Rank: rank, Suit: deck.Hearts})
	}

	drawOrder := func(seed int64) string {
		pool := NewDeadPool(rng.Seeded(seed))
		pool.AddHand(hand)
		return deck.CardsToString(pool.DrawN(13))
	}

	assert.Equal(t, drawOrder(1), drawOrder(1))
	assert.NotEqual(t, drawOrder(1), drawOrder(2))
}
