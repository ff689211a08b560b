package strategy

import (
	"fmt"

	"jedna/game"
)

// Strategy decides the agent's reply to a single action request.
type Strategy interface {
	Decide(state game.State) game.Action
}

// Names lists the built-in strategies.
var Names = []string{"first", "random", "greedy"}

type Option func(s *settings)

type settings struct {
	seed uint64
}

// WithSeed fixes the random strategy's seed.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		if seed > 0 {
			s.seed = seed
		}
	}
}

// New builds a strategy by name.
func New(name string, options ...Option) (Strategy, error) {
	s := settings{seed: 1} // Default values
	for _, option := range options {
		option(&s)
	}

	switch name {
	case "first":
		return NewFirstCard(), nil
	case "random":
		return NewRandom(s.seed), nil
	case "greedy":
		return NewGreedy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// play builds the action for playing card, declaring a color chosen from
// hand when the card is wild.
func play(card game.Card, hand []game.Card) game.Action {
	action := game.Action{Action: game.PlayAction, Card: card}
	if card.IsWild() {
		action.WildColor = MostCommonColor(hand)
	}
	return action
}

// fallback is the reply when nothing is playable: draw when the game
// master offers it, otherwise pass.
func fallback(state game.State) game.Action {
	if state.Allows(string(game.DrawAction)) {
		return game.Action{Action: game.DrawAction}
	}
	return game.Action{Action: game.PassAction}
}
