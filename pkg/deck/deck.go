package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInsufficientCards is an error when DrawN() asks for more cards than remain.
// The dealing algorithm never requests more cards than exist, so hitting this
// is an invariant violation, not a recoverable condition.
var ErrInsufficientCards = errors.New("not enough cards left in the deck")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new, shuffled 52-card deck
func New() *Deck {
	d := &Deck{}
	d.SetSeed(time.Now().UnixNano())
	d.buildDeck()
	d.shuffle()

	return d
}

// SetSeed will set the seed
// This should only be used by tests; New() seeds from the clock.
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the full 52-card deck and shuffles it
func (d *Deck) Shuffle() {
	d.buildDeck()
	d.shuffle()
}

func (d *Deck) shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN removes and returns the first n cards
func (d *Deck) DrawN(n int) ([]*Card, error) {
	if len(d.Cards) < n {
		return nil, ErrInsufficientCards
	}

	cards := d.Cards[0:n]
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// HasCards returns true if the deck is not exhausted
func (d *Deck) HasCards() bool {
	return len(d.Cards) > 0
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
