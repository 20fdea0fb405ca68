package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/21pxle/MultiplayerServer/internal/rng"
	"github.com/21pxle/MultiplayerServer/pkg/deck"
	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

// Game is the authoritative engine for a Baloney Sandwich session. It owns
// the deck, hands, health, turn order, and the hidden pile; clients only ever
// see what it broadcasts.
//
// Game is not safe for concurrent use. Every method must be called from a
// single goroutine; the room's run loop is that serialization point.
type Game struct {
	id   string
	opts Options
	log  *logrus.Entry
	rng  rng.Generator

	state        State
	deck         *deck.Deck
	participants map[string]*Participant
	joinOrder    []string
	queue        TurnQueue
	stack        PlayStack
	deadPool     *DeadPool

	startPlayer string

	// turns is even during a play phase and odd while a challenge window is open
	turns int

	// passed holds the players who declined to challenge this round
	passed map[string]bool

	// deadOwed and deadAcked track an in-flight dead-pool distribution
	deadOwed  int
	deadAcked map[string]bool

	// lastChallengeDamage is what the server applied at the last resolution;
	// advisory client settlements are compared against it
	lastChallengeDamage int

	out []*protocol.Message
}

// NewGame returns a new game in the forming state
func NewGame(opts Options) *Game {
	id := uuid.New().String()
	d := deck.New()
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
		d.Shuffle()
	}

	return &Game{
		id:           id,
		opts:         opts,
		log:          logrus.WithField("game", id),
		rng:          rng.Crypto{},
		state:        StateForming,
		deck:         d,
		participants: make(map[string]*Participant),
		deadPool:     NewDeadPool(rng.Crypto{}),
		passed:       make(map[string]bool),
		deadAcked:    make(map[string]bool),
	}
}

// State returns the current lifecycle stage
func (g *Game) State() State {
	return g.state
}

// HasPlayer reports whether the username belongs to this game
func (g *Game) HasPlayer(username string) bool {
	_, ok := g.participants[username]
	return ok
}

// PlayerCount returns the number of registered participants
func (g *Game) PlayerCount() int {
	return len(g.participants)
}

// RequestedRank is the rank all claims in the current round must match.
// It is a pure function of the turn counter.
func (g *Game) RequestedRank() int {
	return 1 + (g.turns/2)%13
}

func (g *Game) inChallengeWindow() bool {
	return g.turns%2 == 1
}

// AddPlayer registers a new participant while the game is forming
func (g *Game) AddPlayer(username string) error {
	if g.state != StateForming {
		return ErrWrongState
	}

	if _, ok := g.participants[username]; ok {
		return ErrDuplicateUsername
	}

	g.participants[username] = newParticipant(username, g.opts.MaxHealth)
	g.joinOrder = append(g.joinOrder, username)

	return nil
}

// RemovePlayer handles a participant leaving, at any stage. Mid-game, a
// disconnect is equivalent to the player's health reaching zero.
func (g *Game) RemovePlayer(username string) []*protocol.Message {
	if _, ok := g.participants[username]; !ok {
		return nil
	}

	switch g.state {
	case StateForming:
		delete(g.participants, username)
		for i, name := range g.joinOrder {
			if name == username {
				g.joinOrder = append(g.joinOrder[:i], g.joinOrder[i+1:]...)
				break
			}
		}
	case StateDealing:
		g.removeDuringDealing(username)
	case StateGameOver:
		// nothing left to settle
	default:
		g.eliminate(username)
	}

	return g.drain()
}

// Start deals the initial hands and announces the ace holder. It is triggered
// by the registry once all expected participants have joined.
func (g *Game) Start() ([]*protocol.Message, error) {
	if g.state != StateForming {
		return nil, ErrWrongState
	}

	n := len(g.joinOrder)
	if n < 2 {
		return nil, ErrNotEnoughPlayers
	}

	g.state = StateDealing
	g.broadcast(strconv.Itoa(n), "", protocol.OpReady)

	base := 52 / n
	for _, username := range g.joinOrder {
		cards, err := g.deck.DrawN(base)
		if err != nil {
			return nil, err
		}

		g.participants[username].Hand.AddCards(cards)
		g.broadcast(username, deck.CardsToString(cards), protocol.OpDealt)
	}

	// the player count rarely divides 52; hand out the remainder one at a
	// time so the deck always ends up empty
	for g.deck.HasCards() {
		card, err := g.deck.Draw()
		if err != nil {
			return nil, err
		}

		username := g.joinOrder[g.rng.Intn(n)]
		g.participants[username].Hand.AddCard(card)
		g.broadcast(username, deck.CardToString(card), protocol.OpDrawCard)
	}

	g.startPlayer = g.aceHolder()
	g.announce("%s has the Ace of Spades and can therefore go first.", g.startPlayer)
	g.log.WithField("startPlayer", g.startPlayer).Info("hands dealt")

	return g.drain(), nil
}

func (g *Game) aceHolder() string {
	ace := deck.AceOfSpades()
	for _, username := range g.joinOrder {
		if g.participants[username].Hand.HasCard(ace) {
			return username
		}
	}

	// the full deck was just dealt out
	panic("no player holds the ace of spades")
}

// handleHandAck processes an "I" message confirming a dealt hand. The
// reported hand and health are display hints; the broadcasts carry the
// server's own records.
func (g *Game) handleHandAck(msg *protocol.Message) error {
	if g.state != StateDealing {
		return ErrWrongState
	}

	p, ok := g.participants[msg.Subject]
	if !ok {
		return ErrUnknownPlayer
	}

	if p.ackedHand {
		return nil
	}
	p.ackedHand = true

	if hasAce, _ := strconv.ParseBool(msg.Payload); hasAce != (msg.Subject == g.startPlayer) {
		g.log.WithField("player", msg.Subject).Warn("client disagrees about the ace holder")
	}

	g.broadcast(msg.Subject, p.Hand.String(), protocol.OpCards)
	g.broadcast(msg.Subject, strconv.Itoa(p.Health), protocol.OpHealth)

	g.maybeFinishDealing()
	return nil
}

func (g *Game) maybeFinishDealing() {
	for _, p := range g.participants {
		if !p.ackedHand {
			return
		}
	}

	order := make([]string, len(g.joinOrder))
	copy(order, g.joinOrder)
	rng.Shuffle(g.rng, len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	// start player is forced to the front, remainder stays random
	for i, name := range order {
		if name == g.startPlayer {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}
	order = append([]string{g.startPlayer}, order...)

	g.queue.Init(order)
	g.state = StateAwaitingOpening
	g.broadcast(g.startPlayer, strings.Join(order, ","), protocol.OpStartPlay)
	g.announce("%s can now put down some cards.", g.startPlayer)
}

// removeDuringDealing hands a leaver's cards back out to the remaining
// players so the table still holds all 52 cards
func (g *Game) removeDuringDealing(username string) {
	p := g.participants[username]
	delete(g.participants, username)
	for i, name := range g.joinOrder {
		if name == username {
			g.joinOrder = append(g.joinOrder[:i], g.joinOrder[i+1:]...)
			break
		}
	}

	if len(g.joinOrder) == 0 {
		g.state = StateGameOver
		return
	}

	for _, card := range p.Hand {
		recipient := g.joinOrder[g.rng.Intn(len(g.joinOrder))]
		g.participants[recipient].Hand.AddCard(card)
		g.broadcast(recipient, deck.CardToString(card), protocol.OpDrawCard)
	}

	// a lone survivor wins on the spot; there is no one left to deal against
	if len(g.joinOrder) == 1 {
		winner := g.joinOrder[0]
		g.queue.Init(g.joinOrder)
		g.announce("Congratulations! %s has won!", winner)
		g.broadcast("", "", protocol.OpGameOver)
		g.state = StateGameOver
		return
	}

	if g.startPlayer == username {
		g.startPlayer = g.aceHolder()
		g.announce("%s now has the Ace of Spades and can therefore go first.", g.startPlayer)
	}

	g.maybeFinishDealing()
}

// applyDamage hurts a player and broadcasts the resulting health
func (g *Game) applyDamage(username string, damage int) {
	p := g.participants[username]
	health := p.ApplyDamage(damage)
	g.broadcast(username, strconv.Itoa(health), protocol.OpHealth)
}

func (g *Game) broadcast(subject, payload, opcode string, args ...string) {
	g.out = append(g.out, protocol.New(subject, payload, opcode, args...))
}

// announce broadcasts a "[Game]" chat line visible to everyone
func (g *Game) announce(format string, a ...interface{}) {
	g.broadcast("[Game]", fmt.Sprintf(format, a...), protocol.OpChat)
}

func (g *Game) drain() []*protocol.Message {
	out := g.out
	g.out = nil

	return out
}
