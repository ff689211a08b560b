package game

import "strings"

// Color is a full color name, spelled the way the game master expects it
// in actions.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
)

// colorNames maps the color letter leading a card code to its full name.
var colorNames = map[byte]Color{
	'r': Red,
	'b': Blue,
	'g': Green,
	'y': Yellow,
}

// Card is a raw card code as exchanged with the game master, e.g. "r5",
// "gs", "w", "wd4".
type Card string

// IsWild reports whether playing the card requires declaring a color:
// the plain wild "w" and the wild-draw family "wd...".
func (c Card) IsWild() bool {
	return c == "w" || strings.HasPrefix(string(c), "wd")
}

// Color returns the card's own color from the leading letter of its code.
// Wilds, empty codes and codes without a recognized color letter have none.
func (c Card) Color() (Color, bool) {
	if len(c) == 0 {
		return "", false
	}
	color, ok := colorNames[c[0]]
	return color, ok
}
