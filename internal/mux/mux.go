// Package mux provides the HTTP surface of the server: a health endpoint and
// the websocket endpoint game clients connect through.
package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"

	"github.com/21pxle/MultiplayerServer/internal/config"
	"github.com/21pxle/MultiplayerServer/pkg/game"
	"github.com/21pxle/MultiplayerServer/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string

	// one session runs at a time; a new room forms once the previous one empties
	lock        sync.Mutex
	currentRoom *room.Room
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())

	return this
}

// room returns the active room, forming a new one if none exists
func (m *Mux) room() *room.Room {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.currentRoom == nil {
		c := config.Instance()
		opts := game.Options{
			MaxHealth:       c.Game.MaxHealth,
			ChallengeDamage: c.Game.ChallengeDamage,
			AttackDamage:    c.Game.AttackDamage,
		}

		m.currentRoom = room.NewRoom(opts, c.Game.Players)
		m.currentRoom.StartShift()
	}

	return m.currentRoom
}

// clientDisconnected tears the room down once its last client leaves
func (m *Mux) clientDisconnected(r *room.Room, client *room.Client) {
	lastClient := r.RemoveClient(client)

	m.lock.Lock()
	defer m.lock.Unlock()

	if lastClient && m.currentRoom == r {
		m.currentRoom.EndShift()
		m.currentRoom = nil
	}
}
