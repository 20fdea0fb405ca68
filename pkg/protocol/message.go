// Package protocol implements the tab-separated text records spoken between
// the server and game clients.
//
// A record is a single line of at least three tab-separated fields:
//
//	subject \t payload \t opcode [\t args...]
//
// Subject is conventionally the acting or subject username, payload is an
// opcode-specific value (often a card list or a count), and the remaining
// fields are opcode-specific arguments.
package protocol

import (
	"errors"
	"strings"
)

// ErrMalformed is returned by Parse when a record has fewer than three fields
var ErrMalformed = errors.New("malformed record")

// Message is a single decoded protocol record
type Message struct {
	Subject string
	Payload string
	Opcode  string
	Args    []string
}

// New returns a new message
func New(subject, payload, opcode string, args ...string) *Message {
	return &Message{
		Subject: subject,
		Payload: payload,
		Opcode:  opcode,
		Args:    args,
	}
}

// Parse decodes a single record
// The trailing newline, if any, is stripped before splitting.
func Parse(line string) (*Message, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return nil, ErrMalformed
	}

	return &Message{
		Subject: fields[0],
		Payload: fields[1],
		Opcode:  fields[2],
		Args:    fields[3:],
	}, nil
}

// Arg returns the i-th opcode-specific argument, or "" if it was not sent
func (m *Message) Arg(i int) string {
	if i < 0 || i >= len(m.Args) {
		return ""
	}

	return m.Args[i]
}

func (m *Message) String() string {
	fields := make([]string, 0, 3+len(m.Args))
	fields = append(fields, m.Subject, m.Payload, m.Opcode)
	fields = append(fields, m.Args...)

	return strings.Join(fields, "\t")
}
