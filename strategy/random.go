package strategy

import (
	"golang.org/x/exp/rand"

	"jedna/game"
)

// Random plays a uniformly random playable card. The color declared for a
// wild stays deterministic: identical states always color wilds the same
// way regardless of the seed.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Decide(state game.State) game.Action {
	if len(state.PlayableCards) > 0 {
		card := state.PlayableCards[r.rng.Intn(len(state.PlayableCards))]
		return play(card, state.Hand)
	}
	return fallback(state)
}
