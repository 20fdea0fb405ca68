package game

// State is the lifecycle stage of a session. Opcodes that are not valid in
// the current state are rejected rather than inferred from field counts.
type State int

// session lifecycle
const (
	// StateForming means players are still joining
	StateForming State = iota

	// StateDealing means hands have been dealt and the server is waiting on acks
	StateDealing

	// StateAwaitingOpening means the start player must play exactly the ace of spades
	StateAwaitingOpening

	// StateRoundActive covers the play and challenge-or-pass phases
	StateRoundActive

	// StateGameOver means a single player remains
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateForming:
		return "forming"
	case StateDealing:
		return "dealing"
	case StateAwaitingOpening:
		return "awaiting-opening"
	case StateRoundActive:
		return "round-active"
	case StateGameOver:
		return "game-over"
	}

	return "unknown"
}
