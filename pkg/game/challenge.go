package game

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/21pxle/MultiplayerServer/pkg/deck"
	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

// handleChallenge resolves a Baloney Sandwich call against the current
// claim. Resolution is computed entirely from the server's own state; the
// clients only receive the outcome.
func (g *Game) handleChallenge(msg *protocol.Message) error {
	if g.state != StateRoundActive || !g.inChallengeWindow() {
		return ErrNotYourTurn
	}

	challenger := msg.Subject
	if !g.queue.Contains(challenger) {
		return ErrUnknownPlayer
	}

	claimant, err := g.queue.Current()
	if err != nil {
		return err
	}

	if challenger == claimant {
		return ErrNotYourTurn
	}

	g.announce("%s chose to call Baloney Sandwich on %s.", challenger, claimant)
	g.broadcast("", "", protocol.OpFreeze)

	outcome := OutcomeChallengeFailed
	loser := challenger
	if mismatchRank(g.stack.Selected(), g.RequestedRank()) {
		outcome = OutcomeChallengeSucceeded
		loser = claimant
	}

	selected := deck.CardsToString(g.stack.Selected())
	pile := g.stack.Take()
	flavor := outcome.Flavor(g.rng, challenger, claimant)

	g.broadcast(challenger, claimant, protocol.OpChallengeResult,
		strconv.FormatBool(outcome == OutcomeChallengeSucceeded), flavor,
		deck.CardsToString(pile), selected)

	// the loser draws the entire pile and takes damage for every card in it
	damage := g.opts.ChallengeDamage * len(pile)
	g.lastChallengeDamage = damage

	lp := g.participants[loser]
	lp.Hand.AddCards(pile)
	g.broadcast(loser, lp.Hand.String(), protocol.OpCards)
	g.applyDamage(loser, damage)

	g.broadcast("0", "", protocol.OpPileSize)
	if err := g.closeRound(); err != nil {
		return err
	}
	g.broadcast("", "", protocol.OpUnfreeze)

	g.checkElimination(loser)
	return nil
}

// mismatchRank scans a play from the most recently added card backward and
// reports whether any card disproves the claim
func mismatchRank(selected []*deck.Card, requested int) bool {
	for i := len(selected) - 1; i >= 0; i-- {
		if selected[i].Rank != requested {
			return true
		}
	}

	return false
}

// handlePass records an explicit refusal to challenge. Once every other live
// player has passed, the claim is auto-accepted with no reveal and no damage.
func (g *Game) handlePass(msg *protocol.Message) error {
	if g.state != StateRoundActive || !g.inChallengeWindow() {
		return ErrNotYourTurn
	}

	sender := msg.Subject
	if !g.queue.Contains(sender) {
		return ErrUnknownPlayer
	}

	current, err := g.queue.Current()
	if err != nil {
		return err
	}

	if sender == current {
		return ErrNotYourTurn
	}

	if g.passed[sender] {
		return nil
	}
	g.passed[sender] = true

	g.announce("%s chose not to call Baloney Sandwich on %s.", sender, current)
	return g.maybeAutoAccept()
}

// maybeAutoAccept closes the round once every live player but the claimant
// has declined to challenge
func (g *Game) maybeAutoAccept() error {
	if !g.inChallengeWindow() || len(g.passed) < g.queue.Size()-1 {
		return nil
	}

	return g.closeRound()
}

// handleSettlement accepts the legacy client-computed BSS/BSF settlement.
// The server already settled the challenge itself, so the reported figures
// are advisory only; a disagreement is logged and discarded.
func (g *Game) handleSettlement(msg *protocol.Message) error {
	if _, ok := g.participants[msg.Subject]; !ok {
		return ErrUnknownPlayer
	}

	reported, err := strconv.Atoi(msg.Arg(0))
	if err != nil || reported != g.lastChallengeDamage {
		g.log.WithFields(logrus.Fields{
			"player":   msg.Subject,
			"reported": msg.Arg(0),
			"applied":  g.lastChallengeDamage,
		}).Warn("client-reported settlement differs from the server's")
	}

	return nil
}
