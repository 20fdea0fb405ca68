package game

import "github.com/21pxle/MultiplayerServer/pkg/protocol"

// Dispatch routes one inbound message through the engine and returns the
// resulting broadcasts. Messages are handled to completion, one at a time;
// the caller is responsible for serializing calls.
func (g *Game) Dispatch(msg *protocol.Message) ([]*protocol.Message, error) {
	var err error

	switch msg.Opcode {
	case protocol.OpInitHand:
		err = g.handleHandAck(msg)
	case protocol.OpTurnProbe:
		err = g.handleTurnProbe(msg)
	case protocol.OpPlay, protocol.OpPlayAce:
		err = g.handlePlay(msg)
	case protocol.OpChallenge:
		err = g.handleChallenge(msg)
	case protocol.OpPass:
		err = g.handlePass(msg)
	case protocol.OpDeath:
		err = g.handleDeathAck(msg)
	case protocol.OpDeadDraw:
		err = g.handleDeadDraw(msg)
	case protocol.OpSettleSuccess, protocol.OpSettleFailure:
		err = g.handleSettlement(msg)
	case protocol.OpHealth, protocol.OpCards:
		err = g.handleStateSync(msg)
	default:
		err = ErrUnknownOpcode
	}

	return g.drain(), err
}
