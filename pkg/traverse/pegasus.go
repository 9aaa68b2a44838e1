package traverse

import (
	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

// Pegasus repeats knight steps in each direction, until it leaves the board,
// is blocked by own piece or captures opponent's piece.
func Pegasus(sc *scene.Scene, pt common.PieceType, start common.Pos) ([]*scene.Scene, error) {
	if err := checkStart(sc, pt, common.Pegasus, start); err != nil {
		return nil, err
	}
	var b = sc.Board

	for _, rel := range common.KnightRelMoves {
		var current = start
		for b.IsOnBoard(current) {
			var next = current.Add(rel)

			var field = CheckField(b, pt, next)
			if field == Friend {
				break
			}
			if field == Foe {
				labelSteps(sc, b, pt, current, common.KnightRelMoves, true)
				sc.AppendArrow(current, next, captureMark(b, pt, next))
				markSteps(sc, b, pt, next, common.KnightRelMoves)
				break
			}
			if b.IsOnBoard(next) {
				sc.AppendArrow(current, next, scene.Legal)
			}
			current = next
		}
	}

	return []*scene.Scene{sc}, nil
}
