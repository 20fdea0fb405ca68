package deck

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddCards adds several cards to the hand
func (h *Hand) AddCards(cards []*Card) {
	*h = append(*h, cards...)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will discard one instance of the specified card and report whether
// the card was found
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// DiscardAll removes every card in cards from the hand. If any card is not
// present the hand is left untouched and false is returned.
func (h *Hand) DiscardAll(cards []*Card) bool {
	newHand := h.Clone()
	for _, card := range cards {
		if !newHand.Discard(card) {
			return false
		}
	}

	*h = newHand
	return true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
