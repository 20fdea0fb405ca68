package game

// TurnQueue is the circular order of players still alive in the game.
// It is built once at game start and thereafter only rotated or shrunk.
type TurnQueue struct {
	order []string
}

// Init performs the one-time set of the queue, start player first
func (q *TurnQueue) Init(usernames []string) {
	q.order = make([]string, len(usernames))
	copy(q.order, usernames)
}

// Current peeks at the front of the queue
func (q *TurnQueue) Current() (string, error) {
	if len(q.order) == 0 {
		return "", ErrEmptyQueue
	}

	return q.order[0], nil
}

// Next returns the player after the current one
func (q *TurnQueue) Next() (string, error) {
	if len(q.order) == 0 {
		return "", ErrEmptyQueue
	}

	return q.order[1%len(q.order)], nil
}

// Advance moves the current player to the back
func (q *TurnQueue) Advance() {
	if len(q.order) < 2 {
		return
	}

	current := q.order[0]
	q.order = append(q.order[1:], current)
}

// Remove eliminates a player. Removing an absent player is a no-op.
func (q *TurnQueue) Remove(username string) {
	for i, name := range q.order {
		if name == username {
			q.order = append(q.order[:i], q.order[i+1:]...)
			return
		}
	}
}

// Contains reports whether the player is still in the rotation
func (q *TurnQueue) Contains(username string) bool {
	for _, name := range q.order {
		if name == username {
			return true
		}
	}

	return false
}

// Size returns the number of players in the rotation
func (q *TurnQueue) Size() int {
	return len(q.order)
}

// List returns a copy of the rotation, current player first
func (q *TurnQueue) List() []string {
	list := make([]string, len(q.order))
	copy(list, q.order)

	return list
}
