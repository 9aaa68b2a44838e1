package common

import "slices"

// Step is relative move, DI along files and DJ along ranks.
type Step struct {
	DI, DJ int
}

var KnightRelMoves = []Step{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// UnicornRelLongMoves are long leaps of Unicorn (and Centaur, Shaman),
// all steps with |DI| + |DJ| = 5 that are not straight.
var UnicornRelLongMoves = []Step{
	{4, 1}, {3, 2}, {2, 3}, {1, 4},
	{-1, 4}, {-2, 3}, {-3, 2}, {-4, 1},
	{-4, -1}, {-3, -2}, {-2, -3}, {-1, -4},
	{1, -4}, {2, -3}, {3, -2}, {4, -1},
}

func IsUnicornLongStep(s Step) bool {
	return slices.Contains(UnicornRelLongMoves, s)
}

// Cycle returns generator repeating steps in order, forever.
func Cycle(steps ...Step) func() Step {
	var index = 0
	return func() Step {
		var s = steps[index]
		index = (index + 1) % len(steps)
		return s
	}
}
