package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/21pxle/MultiplayerServer/pkg/protocol"
)

// Client is a participant connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Username is set once the client joins the room with a C record. It is
	// only ever written from the room's run loop.
	Username string

	// send is a channel for sending messages to the client
	send chan *protocol.Message

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send:  make(chan *protocol.Message, 256),
		Close: make(chan string),
		Conn:  conn,
	}
}

// Send enqueues a message for the web client without blocking. A full buffer
// means the client cannot keep up and the message is dropped.
func (c *Client) Send(msg *protocol.Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan *protocol.Message {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.Username != "" {
		return c.Username
	}

	if c.Conn != nil {
		return fmt.Sprintf("anon:%s", c.Conn.RemoteAddr())
	}

	return "anon"
}

// ReceivedRecord is called when the server receives a record from a connected client
func (c *Client) ReceivedRecord(line string) {
	if c.room == nil {
		logrus.WithField("line", line).Warn("received record, but room not found")
		return
	}

	c.room.ReceivedRecord(c, line)
}
