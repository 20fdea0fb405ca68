package protocol

// Opcodes understood by the server. The comment gives the payload convention.
const (
	// OpIdentify is a duplicate-username probe; payload is the candidate name
	OpIdentify = "ID"

	// OpConnect is a join notice and roster entry
	OpConnect = "C"

	// OpDisconnect is a leave notice
	OpDisconnect = "D"

	// OpRoster marks the end of a roster; payload is the newly joined user
	OpRoster = "F"

	// OpChat is a chat relay; payload is the message text
	OpChat = "M"

	// OpReady announces that all expected participants joined; subject is the count
	OpReady = "R"

	// OpDealt grants a batch of dealt cards; payload is a card list
	OpDealt = "G"

	// OpDrawCard grants a single card; payload is one card code
	OpDrawCard = "DC"

	// OpDrawCards grants several cards; payload is a card list
	OpDrawCards = "DCs"

	// OpInitHand acknowledges a dealt hand; payload reports ace ownership
	OpInitHand = "I"

	// OpStartPlay announces the finalized turn order; payload is a username list
	OpStartPlay = "SP"

	// OpTurnDelta advances the turn counter; subject is the delta
	OpTurnDelta = "T"

	// OpTurnProbe asks whether the sender is the current player
	OpTurnProbe = "CCP"

	// OpTurnGrant answers a probe; payload is the next player
	OpTurnGrant = "TURN"

	// OpPlay submits a play; payload is a card list
	OpPlay = "PC"

	// OpPlayAce submits the mandatory opening ace of spades
	OpPlayAce = "PAs"

	// OpChallenge calls Baloney Sandwich on the current player
	OpChallenge = "CNCP"

	// OpPass declines to challenge the current claim
	OpPass = "NBS"

	// OpChallengeResult announces a resolved challenge for client-side reveal
	OpChallengeResult = "BS"

	// OpSettleSuccess is the advisory client settlement after a successful challenge
	OpSettleSuccess = "BSS"

	// OpSettleFailure is the advisory client settlement after a failed challenge
	OpSettleFailure = "BSF"

	// OpDeath is an elimination notice and acknowledgment
	OpDeath = "RD"

	// OpDeadDraw offers or claims cards from the dead pool
	OpDeadDraw = "DCD"

	// OpPileSize reports the hidden pile size; subject is the size
	OpPileSize = "DPM"

	// OpHealth syncs a player's health; payload is the value
	OpHealth = "MH"

	// OpCards syncs a player's hand; payload is a card list
	OpCards = "MC"

	// OpGameOver signals the end of the game
	OpGameOver = "E"

	// OpFreeze tells clients to disable play and challenge controls
	OpFreeze = "DB"

	// OpUnfreeze tells clients to re-enable play and challenge controls
	OpUnfreeze = "EB"

	// OpNotYourTurn rejects an action from a player who is not current
	OpNotYourTurn = "NOT-YOUR-TURN"

	// OpInvalidCards rejects a play with an illegal card selection
	OpInvalidCards = "INVALID-CARDS"
)
