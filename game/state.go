package game

import "jedna/utils"

// State is the snapshot the game master sends with every action request.
// Fields absent from the wire decode to nil slices and behave as empty.
type State struct {
	PlayableCards    []Card   `json:"playable_cards"`
	Hand             []Card   `json:"hand"`
	AvailableActions []string `json:"available_actions"`
}

// Allows reports whether the game master listed the named action as
// currently available.
func (s State) Allows(name string) bool {
	return utils.FindIndex(s.AvailableActions, name) >= 0
}
