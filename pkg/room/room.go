// Package room connects websocket clients to a single game engine. The room
// owns the only goroutine allowed to touch the engine, so every inbound
// record, join, and disconnect is funneled through its run loop.
package room

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/21pxle/MultiplayerServer/pkg/game"
	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

// Room is a table of connected clients sharing one game
type Room struct {
	id       string
	log      *logrus.Entry
	expected int
	game     *game.Game

	clients map[*Client]bool
	byName  map[string]*Client
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewRoom creates a new room that starts its game once expected players join.
// This is called from a blocking state, so it needs to return quickly.
func NewRoom(opts game.Options, expected int) *Room {
	id := uuid.New().String()

	return &Room{
		id:            id,
		log:           logrus.WithField("room", id),
		expected:      expected,
		game:          game.NewGame(opts),
		clients:       make(map[*Client]bool),
		byName:        make(map[string]*Client),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

// EndShift is called when the room is no longer needed
func (r *Room) EndShift() {
	close(r.close)
}

func (r *Room) runLoop() {
	r.log.Debug("creating room run loop")
	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			// run whatever was already queued, typically the final leave
			for {
				select {
				case fn := <-r.execInRunLoop:
					fn()
				default:
					r.log.Debug("terminating room run loop")
					return
				}
			}
		}
	}
}

// Clients returns a slice of connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client
// This method must return quickly
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients[client] = true
	r.lock.Unlock()
}

// RemoveClient removes a client. A mid-game disconnect runs the same
// elimination path as the player's health reaching zero.
// This method must return quickly
func (r *Room) RemoveClient(client *Client) (lastClient bool) {
	r.lock.Lock()
	delete(r.clients, client)
	nClients := len(r.clients)
	r.lock.Unlock()

	r.execInRunLoop <- func() {
		r.handleLeave(client)
	}

	return nClients == 0
}

// ReceivedRecord is called when a client sends a record to the server
func (r *Room) ReceivedRecord(c *Client, line string) {
	msg, err := protocol.Parse(line)
	if err != nil {
		r.log.WithField("client", c.String()).WithError(err).Warn("could not parse record")
		return
	}

	r.execInRunLoop <- func() {
		r.handleRecord(c, msg)
	}
}

// NOTE: must only be called from the run loop
func (r *Room) handleRecord(c *Client, msg *protocol.Message) {
	switch msg.Opcode {
	case protocol.OpIdentify:
		taken := r.game.HasPlayer(msg.Payload)
		c.Send(protocol.New(msg.Payload, strconv.FormatBool(taken), protocol.OpIdentify))
	case protocol.OpConnect:
		r.handleJoin(c, msg.Subject)
	case protocol.OpDisconnect:
		r.handleLeave(c)
	case protocol.OpChat:
		r.broadcast(msg)
	default:
		if c.Username == "" {
			r.log.WithFields(logrus.Fields{
				"client": c.String(),
				"opcode": msg.Opcode,
			}).Warn("record from a client that has not joined")
			return
		}

		// the sender cannot act on another player's behalf
		msg.Subject = c.Username

		out, err := r.game.Dispatch(msg)
		r.fanout(out)
		if err != nil {
			r.sendError(c, msg, err)
		}
	}
}

// NOTE: must only be called from the run loop
func (r *Room) handleJoin(c *Client, username string) {
	if c.Username != "" || username == "" {
		return
	}

	if err := r.game.AddPlayer(username); err != nil {
		// the client retries from the identify step
		c.Send(protocol.New(username, strconv.FormatBool(true), protocol.OpIdentify))
		return
	}

	c.Username = username

	r.lock.Lock()
	r.byName[username] = c
	r.lock.Unlock()

	// the newcomer gets the existing roster before their own join notice
	for _, other := range r.Clients() {
		if other != c && other.Username != "" {
			c.Send(protocol.New(other.Username, "", protocol.OpConnect))
		}
	}
	c.Send(protocol.New("Server", username, protocol.OpRoster))

	r.broadcast(protocol.New(username, "", protocol.OpConnect))
	r.broadcast(protocol.New("[Game]", fmt.Sprintf("%s has joined the game.", username), protocol.OpChat))
	r.log.WithField("player", username).Info("player joined")

	if r.game.PlayerCount() == r.expected {
		out, err := r.game.Start()
		if err != nil {
			r.log.WithError(err).Error("could not start the game")
			return
		}

		r.fanout(out)
	}
}

// NOTE: must only be called from the run loop
func (r *Room) handleLeave(c *Client) {
	username := c.Username
	if username == "" {
		return
	}
	c.Username = ""

	r.lock.Lock()
	if r.byName[username] == c {
		delete(r.byName, username)
	}
	r.lock.Unlock()

	r.broadcast(protocol.New(username, "", protocol.OpDisconnect))
	r.broadcast(protocol.New("[Game]", fmt.Sprintf("%s has left the game.", username), protocol.OpChat))
	r.log.WithField("player", username).Info("player left")

	r.fanout(r.game.RemovePlayer(username))
}

// sendError reports a rejected action back to the offender only
func (r *Room) sendError(c *Client, msg *protocol.Message, err error) {
	switch {
	case errors.Is(err, game.ErrNotYourTurn):
		c.Send(protocol.New(c.Username, "", protocol.OpNotYourTurn))
	case errors.Is(err, game.ErrInvalidPlay):
		c.Send(protocol.New(c.Username, "", protocol.OpInvalidCards))
	default:
		r.log.WithFields(logrus.Fields{
			"client": c.String(),
			"opcode": msg.Opcode,
		}).WithError(err).Warn("could not handle record")
	}
}

func (r *Room) fanout(msgs []*protocol.Message) {
	for _, msg := range msgs {
		r.broadcast(msg)
	}
}

func (r *Room) broadcast(msg *protocol.Message) {
	for _, client := range r.Clients() {
		if !client.Send(msg) {
			r.log.WithField("client", client.String()).Warn("send buffer full, dropping message")
		}
	}
}
