package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards. Aces are always low in this game.
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

var rankNames = [...]string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King"}

// AceOfSpades returns the distinguished card that must open every game
func AceOfSpades() *Card {
	return &Card{Rank: Ace, Suit: Spades}
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// RankName returns the spoken name of the card's rank (i.e., "Ace")
func RankName(rank int) string {
	if rank < Ace || rank > King {
		panic(fmt.Sprintf("rank out of range: %d", rank))
	}

	return rankNames[rank-1]
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13
// and suit in [cdhs]. Unlike the deck itself, the input here may come off the
// wire, so a bad token is an error rather than a panic.
func CardFromString(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %q", s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil || rank < Ace {
		return nil, fmt.Errorf("could not parse card: %q", s)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString will return a slice of cards from a comma-delimited list
func CardsFromString(s string) ([]*Card, error) {
	if s == "" {
		return []*Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		c, err := CardFromString(strings.TrimSpace(card))
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// CardToString converts a card (Ace of Spades) to a short code (1s)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
