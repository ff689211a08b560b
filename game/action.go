package game

// ActionType identifies the kind of reply the agent sends.
type ActionType string

const (
	PlayAction ActionType = "play"
	DrawAction ActionType = "draw"
	PassAction ActionType = "pass"
)

// Action is the agent's reply to one action request. Card is set only for
// plays; WildColor only when the played card is wild.
type Action struct {
	Action    ActionType `json:"action"`
	Card      Card       `json:"card,omitempty"`
	WildColor Color      `json:"wild_color,omitempty"`
}
