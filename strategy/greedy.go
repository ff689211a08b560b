package strategy

import "jedna/game"

// Greedy scores every playable card and plays the best one: cards in the
// color we hold most come first, then other colored cards, with wilds
// held back for when nothing else goes.
type Greedy struct{}

func NewGreedy() Greedy {
	return Greedy{}
}

func (Greedy) Decide(state game.State) game.Action {
	if len(state.PlayableCards) == 0 {
		return fallback(state)
	}

	dominant := MostCommonColor(state.Hand)
	best := state.PlayableCards[0]
	bestScore := score(best, dominant)
	for _, card := range state.PlayableCards[1:] {
		if s := score(card, dominant); s > bestScore {
			best, bestScore = card, s
		}
	}
	return play(best, state.Hand)
}

// score ranks a playable card: 3 for the dominant hand color, 2 for any
// other colored card, 1 for a plain wild, 0 for a wild draw.
func score(card game.Card, dominant game.Color) int {
	if card.IsWild() {
		if card == "w" {
			return 1
		}
		return 0
	}
	if color, ok := card.Color(); ok && color == dominant {
		return 3
	}
	return 2
}
