package game

import (
	"strconv"
	"strings"

	"github.com/21pxle/MultiplayerServer/pkg/deck"
	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

// checkElimination runs the elimination path if the player is out of health
func (g *Game) checkElimination(username string) {
	if p, ok := g.participants[username]; ok && !p.Alive() {
		g.eliminate(username)
	}
}

// eliminate removes a player from the rotation, moves their hand into the
// dead pool, and either ends the game or starts a redistribution round.
// Eliminating a player twice is a no-op.
func (g *Game) eliminate(username string) {
	if g.state == StateGameOver || !g.queue.Contains(username) {
		return
	}

	p := g.participants[username]
	p.Health = 0

	current, _ := g.queue.Current()
	wasCurrent := current == username

	g.queue.Remove(username)
	delete(g.passed, username)

	g.announce("%s", OutcomeEliminated.Flavor(g.rng, "", username))
	g.broadcast(username, "", protocol.OpDeath)
	g.broadcast(username, "", protocol.OpCards)

	hand := p.Hand
	p.Hand = nil

	// the opener's ace must not disappear into the pool before the opening play
	if g.state == StateAwaitingOpening && username == g.startPlayer {
		hand = g.reassignAce(hand)
	}

	g.deadPool.AddHand(hand)
	g.log.WithField("player", username).Info("player eliminated")

	if g.queue.Size() == 1 {
		winner, _ := g.queue.Current()
		g.announce("Congratulations! %s has won!", winner)
		g.broadcast("", "", protocol.OpGameOver)
		g.state = StateGameOver
		return
	}

	g.deadOwed = g.deadPool.PerSurvivor(g.queue.Size())
	g.deadAcked = make(map[string]bool)
	g.broadcast(strings.Join(g.queue.List(), ","), strconv.Itoa(g.deadOwed), protocol.OpDeadDraw)

	if wasCurrent {
		if g.inChallengeWindow() {
			// the pending claim can no longer be challenged; close it out
			g.stack.ClearSelected()
			g.passed = make(map[string]bool)
			g.turns++
			g.broadcast("1", "", protocol.OpTurnDelta)
		}

		if next, err := g.queue.Current(); err == nil {
			g.announce("%s can now put down some cards.", next)
		}
	} else if err := g.maybeAutoAccept(); err != nil {
		g.log.WithError(err).Error("could not auto-accept after elimination")
	}
}

// reassignAce hands the ace of spades to the next player in the rotation and
// makes them the new start player
func (g *Game) reassignAce(hand deck.Hand) deck.Hand {
	ace := deck.AceOfSpades()
	if !hand.Discard(ace) {
		return hand
	}

	next, err := g.queue.Current()
	if err != nil {
		return hand
	}

	np := g.participants[next]
	np.Hand.AddCard(ace)
	g.startPlayer = next
	g.broadcast(next, deck.CardToString(ace), protocol.OpDrawCard)
	g.broadcast(next, np.Hand.String(), protocol.OpCards)
	g.announce("%s now has the Ace of Spades and can therefore go first.", next)

	return hand
}

// handleDeathAck processes an inbound RD. The server eliminates players on
// its own, so this is an idempotent acknowledgment.
func (g *Game) handleDeathAck(msg *protocol.Message) error {
	p, ok := g.participants[msg.Subject]
	if !ok {
		return ErrUnknownPlayer
	}

	if p.Health == 0 {
		g.eliminate(msg.Subject)
	}

	return nil
}

// handleDeadDraw serves a survivor's claim for their share of the dead pool.
// Once every survivor has claimed, any leftover cards drain one at a time to
// random survivors.
func (g *Game) handleDeadDraw(msg *protocol.Message) error {
	if g.state != StateRoundActive && g.state != StateAwaitingOpening {
		return ErrWrongState
	}

	sender := msg.Subject
	if !g.queue.Contains(sender) || g.deadAcked[sender] {
		return nil
	}
	g.deadAcked[sender] = true

	if g.deadOwed > 0 {
		cards := g.deadPool.DrawN(g.deadOwed)
		p := g.participants[sender]
		p.Hand.AddCards(cards)
		g.broadcast(sender, deck.CardsToString(cards), protocol.OpDrawCards)
		g.broadcast(sender, p.Hand.String(), protocol.OpCards)
	}

	if len(g.deadAcked) == g.queue.Size() {
		g.drainDeadPool()
	}

	return nil
}

// drainDeadPool hands any leftover pool cards to random survivors
func (g *Game) drainDeadPool() {
	survivors := g.queue.List()
	for g.deadPool.Size() > 0 {
		card := g.deadPool.Draw()
		username := survivors[g.rng.Intn(len(survivors))]
		p := g.participants[username]
		p.Hand.AddCard(card)
		g.broadcast(username, deck.CardToString(card), protocol.OpDrawCard)
		g.broadcast(username, p.Hand.String(), protocol.OpCards)
	}

	g.deadOwed = 0
	g.deadAcked = make(map[string]bool)
}

// handleStateSync answers an MH/MC display sync with the server's own record
// rather than echoing whatever the client reported
func (g *Game) handleStateSync(msg *protocol.Message) error {
	p, ok := g.participants[msg.Subject]
	if !ok {
		return ErrUnknownPlayer
	}

	if msg.Opcode == protocol.OpHealth {
		g.broadcast(msg.Subject, strconv.Itoa(p.Health), protocol.OpHealth)
	} else {
		g.broadcast(msg.Subject, p.Hand.String(), protocol.OpCards)
	}

	return nil
}
