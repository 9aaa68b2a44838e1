package traverse

import (
	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

// rank distance from own figure rank at which Shaman is considered
// close to opponent's initial positions
const shamanReach = 5

// shamanSteps returns move and capture steps; light Shaman moves like Knight
// and captures like Unicorn, dark Shaman the other way around.
func shamanSteps(pt common.PieceType) (moves, captures []common.Step) {
	if pt.IsLight() {
		return common.KnightRelMoves, common.UnicornRelLongMoves
	}
	return common.UnicornRelLongMoves, common.KnightRelMoves
}

// Shaman repeats its move step in each direction; on opponent's piece,
// or when leaving the board near opponent's initial positions,
// it shows capture chains.
func Shaman(sc *scene.Scene, pt common.PieceType, start common.Pos) ([]*scene.Scene, error) {
	if err := checkStart(sc, pt, common.Shaman, start); err != nil {
		return nil, err
	}
	var b = sc.Board
	var moves, captures = shamanSteps(pt)

	for _, rel := range moves {
		var previous, current = start, start
		for b.IsOnBoard(current) {
			var next = current.Add(rel)

			var field = CheckField(b, pt, next)
			if field == Friend {
				break
			}
			if field == Foe {
				labelSteps(sc, b, pt, previous, captures, true)
				captureChains(sc, b, pt, current, captures)
				break
			}
			if b.IsOnBoard(next) {
				sc.AppendArrow(current, next, scene.Legal)
			} else if isNearOpponent(b, pt, current, shamanReach) {
				labelSteps(sc, b, pt, previous, captures, false)
				captureChains(sc, b, pt, current, captures)
			}
			previous = current
			current = next
		}
	}

	return []*scene.Scene{sc}, nil
}

// captureChains follows each capture step from p, over consecutive
// opponent's pieces, and marks the first field which ends the chain.
func captureChains(sc *scene.Scene, b *common.Board, pt common.PieceType, p common.Pos, captures []common.Step) {
	for _, rel := range captures {
		var c = p
		for b.IsOnBoard(c) {
			var n = c.Add(rel)
			if CheckField(b, pt, n) != Foe {
				sc.AppendFieldMarker(n, scene.Action)
				break
			}
			sc.AppendArrow(c, n, captureMark(b, pt, n))
			c = n
		}
	}
}

// isNearOpponent reports whether p is within reach ranks of
// opponent's side of the board.
func isNearOpponent(b *common.Board, pt common.PieceType, p common.Pos, reach int) bool {
	return (pt.IsDark() && p.J < reach) ||
		(pt.IsLight() && p.J > b.Height()-reach)
}
