package strategy

import (
	"jedna/game"
	"jedna/utils"
)

// MostCommonColor picks the color to declare for a wild: the color
// appearing most often among the hand's colored cards, ties going to the
// color seen first in hand order. A hand without colored cards defaults
// to red.
func MostCommonColor(hand []game.Card) game.Color {
	var colors []game.Color
	for _, card := range hand {
		if color, ok := card.Color(); ok {
			colors = append(colors, color)
		}
	}
	if len(colors) == 0 {
		return game.Red
	}

	tally := utils.Tally(colors)
	best := colors[0]
	for _, color := range colors[1:] {
		if tally[color] > tally[best] {
			best = color
		}
	}
	return best
}
