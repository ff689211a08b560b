package protocol

import "jedna/game"

// Message types the game master sends.
const (
	TypeRequestAction = "request_action"
	TypeGameEnd       = "game_end"
)

// Message is one inbound line from the game master. State is only set on
// request_action messages.
type Message struct {
	Type  string      `json:"type"`
	State *game.State `json:"state,omitempty"`
}
