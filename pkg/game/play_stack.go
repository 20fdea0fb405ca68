package game

import "github.com/21pxle/MultiplayerServer/pkg/deck"

// PlayStack holds the face-down cards at stake for the active claim.
//
// The pile accumulates across auto-accepted rounds; selected tracks only the
// most recent play, which is what a challenge scans. A resolved challenge
// hands the whole pile to the loser, so no card ever leaves the table.
type PlayStack struct {
	pile     []*deck.Card
	selected []*deck.Card
}

// Add pushes a play onto the pile and records it as the selected cards
func (s *PlayStack) Add(cards []*deck.Card) {
	s.pile = append(s.pile, cards...)
	s.selected = append(s.selected, cards...)
}

// AddHidden pushes a card onto the pile without marking it selected.
// Used for the opening ace, which is never challengeable.
func (s *PlayStack) AddHidden(card *deck.Card) {
	s.pile = append(s.pile, card)
}

// Selected returns the cards of the most recent play
func (s *PlayStack) Selected() []*deck.Card {
	return s.selected
}

// Pile returns every card currently at stake
func (s *PlayStack) Pile() []*deck.Card {
	return s.pile
}

// Size returns the pile size
func (s *PlayStack) Size() int {
	return len(s.pile)
}

// ClearSelected forgets the most recent play but keeps the pile at stake
func (s *PlayStack) ClearSelected() {
	s.selected = nil
}

// Take drains the stack and returns the pile
func (s *PlayStack) Take() []*deck.Card {
	pile := s.pile
	s.pile = nil
	s.selected = nil

	return pile
}
