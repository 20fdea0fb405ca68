package game

import "errors"

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrInvalidPlay is returned for an illegal card selection
var ErrInvalidPlay = errors.New("invalid play")

// ErrDuplicateUsername is returned when a joining username is already taken
var ErrDuplicateUsername = errors.New("username is already taken")

// ErrUnknownPlayer is returned when the sender is not part of this game
var ErrUnknownPlayer = errors.New("player is not in this game")

// ErrWrongState is returned for an opcode that is not valid in the current state
var ErrWrongState = errors.New("not allowed in the current game state")

// ErrNotEnoughPlayers is returned when a game is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("game requires at least two players")

// ErrEmptyQueue is returned when the turn queue is consulted after the game ended
var ErrEmptyQueue = errors.New("turn queue is empty")

// ErrUnknownOpcode is returned for an opcode the dispatcher does not know
var ErrUnknownOpcode = errors.New("unknown opcode")
