package strategy

import "jedna/game"

// FirstCard plays the first card the game master lists as playable. It
// is the default strategy.
type FirstCard struct{}

func NewFirstCard() FirstCard {
	return FirstCard{}
}

func (FirstCard) Decide(state game.State) game.Action {
	if len(state.PlayableCards) > 0 {
		return play(state.PlayableCards[0], state.Hand)
	}
	return fallback(state)
}
