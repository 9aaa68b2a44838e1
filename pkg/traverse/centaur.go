package traverse

import (
	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

// Rank reach near opponent's initial positions: 2 default ranks (figures and
// Pawns) plus vertical span of the step just made.
const (
	centaurReachLong   = 2 + 4
	centaurReachKnight = 2 + 1
)

// isCentaurOwnField reports whether Centaur stands on a field of its own color.
func isCentaurOwnField(b *common.Board, pt common.PieceType, p common.Pos) bool {
	return (pt.IsLight() && b.IsLight(p)) || (pt.IsDark() && b.IsDark(p))
}

// centaurSteps returns steps alike step, and steps of the other kind.
func centaurSteps(step common.Step) (same, other []common.Step) {
	if common.IsUnicornLongStep(step) {
		return common.UnicornRelLongMoves, common.KnightRelMoves
	}
	return common.KnightRelMoves, common.UnicornRelLongMoves
}

// Centaur alternates knight and unicorn long steps. Each pair of first and
// second step gets its own scene, kept only if path ends with a capture or
// leaves the board close to opponent's initial positions.
func Centaur(sc *scene.Scene, pt common.PieceType, start common.Pos) ([]*scene.Scene, error) {
	if err := checkStart(sc, pt, common.Centaur, start); err != nil {
		return nil, err
	}

	var firsts, seconds = common.KnightRelMoves, common.UnicornRelLongMoves
	if !isCentaurOwnField(sc.Board, pt, start) {
		firsts, seconds = seconds, firsts
	}

	var result []*scene.Scene
	for _, rel1 := range firsts {
		for _, rel2 := range seconds {
			var path = scene.NewWithBoard(sc.Name, sc.Board)
			if traverseCentaurPath(path, pt, start, common.Cycle(rel1, rel2)) {
				result = append(result, path)
			}
		}
	}
	return result, nil
}

func traverseCentaurPath(sc *scene.Scene, pt common.PieceType, start common.Pos, nextStep func() common.Step) bool {
	var b = sc.Board
	var current = start
	var hasPrevious = false
	var relPrevious common.Step

	for {
		var rel = nextStep()
		var next = current.Add(rel)
		var same, other = centaurSteps(rel)

		if !b.IsOnBoard(next) {
			var reach = centaurReachKnight
			if common.IsUnicornLongStep(rel) {
				reach = centaurReachLong
			}
			if !isNearOpponent(b, pt, current, reach) {
				return false
			}
			if hasPrevious {
				labelSteps(sc, b, pt, current.Sub(relPrevious), other, true)
			}
			markSteps(sc, b, pt, current, same)
			return true
		}

		switch CheckField(b, pt, next) {
		case Friend:
			return false
		case Foe:
			labelSteps(sc, b, pt, current, same, true)
			sc.AppendArrow(current, next, captureMark(b, pt, next))
			markSteps(sc, b, pt, next, other)
			return true
		}

		sc.AppendArrow(current, next, scene.Legal)
		hasPrevious = true
		relPrevious = rel
		current = next
	}
}
