package game

import (
	"strconv"

	"github.com/21pxle/MultiplayerServer/pkg/deck"
	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

const minPlayCards = 1
const maxPlayCards = 4

// handleTurnProbe answers a "am I current; who is next" probe
func (g *Game) handleTurnProbe(msg *protocol.Message) error {
	if g.state != StateAwaitingOpening && g.state != StateRoundActive {
		return ErrWrongState
	}

	current, err := g.queue.Current()
	if err != nil {
		return err
	}

	if msg.Subject != current || g.inChallengeWindow() {
		return ErrNotYourTurn
	}

	next, err := g.queue.Next()
	if err != nil {
		return err
	}

	// echo the client's tentative selection so it can follow up with a play
	g.broadcast(msg.Subject, next, protocol.OpTurnGrant, msg.Payload)
	return nil
}

// handlePlay processes a play submission (PC), including the mandatory
// opening ace (PAs)
func (g *Game) handlePlay(msg *protocol.Message) error {
	if g.state != StateAwaitingOpening && g.state != StateRoundActive {
		return ErrWrongState
	}

	current, err := g.queue.Current()
	if err != nil {
		return err
	}

	if msg.Subject != current || g.inChallengeWindow() {
		return ErrNotYourTurn
	}

	var cards []*deck.Card
	if msg.Opcode == protocol.OpPlayAce && msg.Payload == "" {
		cards = []*deck.Card{deck.AceOfSpades()}
	} else {
		if cards, err = deck.CardsFromString(msg.Payload); err != nil {
			return ErrInvalidPlay
		}
	}

	if g.state == StateAwaitingOpening {
		return g.playOpening(current, cards)
	}

	return g.playCards(current, cards)
}

// playOpening handles the one legal first play: exactly the ace of spades.
// The ace is a direct 3-point attack on the next player and closes the
// opening phase, so the turn counter advances by two.
func (g *Game) playOpening(current string, cards []*deck.Card) error {
	if len(cards) != 1 || !cards[0].Equal(deck.AceOfSpades()) {
		return ErrInvalidPlay
	}

	p := g.participants[current]
	if !p.Hand.DiscardAll(cards) {
		return ErrInvalidPlay
	}

	g.stack.AddHidden(cards[0])
	g.announce("%s has put down the Ace of Spades.", current)
	g.broadcast(strconv.Itoa(g.stack.Size()), "", protocol.OpPileSize)
	g.broadcast(current, p.Hand.String(), protocol.OpCards)

	g.queue.Advance()
	defender, err := g.queue.Current()
	if err != nil {
		return err
	}

	g.applyDamage(defender, g.opts.AttackDamage)

	g.turns += 2
	g.state = StateRoundActive
	g.broadcast("2", "", protocol.OpTurnDelta)
	g.announce("%s can now put down some cards.", defender)

	g.checkElimination(defender)
	return nil
}

// playCards handles a regular play: 1-4 cards from the hand onto the hidden
// pile, plus the direct attack on the next player
func (g *Game) playCards(current string, cards []*deck.Card) error {
	if len(cards) < minPlayCards || len(cards) > maxPlayCards {
		return ErrInvalidPlay
	}

	p := g.participants[current]
	if !p.Hand.DiscardAll(cards) {
		return ErrInvalidPlay
	}

	g.stack.Add(cards)

	defender, err := g.queue.Next()
	if err != nil {
		return err
	}

	damage := g.opts.AttackDamage * len(cards)
	rank := g.RequestedRank()

	g.turns++
	g.broadcast("1", "", protocol.OpTurnDelta)
	g.broadcast(strconv.Itoa(g.stack.Size()), "", protocol.OpPileSize)
	g.broadcast(current, p.Hand.String(), protocol.OpCards)
	g.applyDamage(defender, damage)
	g.announce("%s attacks %s for %d damage and claims to have put down %d card(s) of %s.",
		current, defender, damage, len(cards), deck.RankName(rank))

	g.checkElimination(defender)
	return nil
}

// closeRound resets the per-round bookkeeping and hands the turn to the next
// player. The pile is only cleared by challenge resolution, never here.
func (g *Game) closeRound() error {
	g.stack.ClearSelected()
	g.passed = make(map[string]bool)
	g.queue.Advance()
	g.turns++
	g.broadcast("1", "", protocol.OpTurnDelta)

	next, err := g.queue.Current()
	if err != nil {
		return err
	}

	g.announce("%s can now put down some cards.", next)
	return nil
}
