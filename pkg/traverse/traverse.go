// Package traverse walks move paths of Pegasus, Shaman and Centaur
// over a board and annotates scenes with what the piece can do.
package traverse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

var ErrPieceType = errors.New("unexpected piece type")

// Field is what a piece finds on a field.
type Field int

const (
	Empty Field = iota
	Friend
	Foe
)

func (f Field) String() string {
	switch f {
	case Friend:
		return "friend"
	case Foe:
		return "foe"
	}
	return "empty"
}

// Func traverses moves of a piece standing at start and returns
// annotated scenes.
type Func func(sc *scene.Scene, pt common.PieceType, start common.Pos) ([]*scene.Scene, error)

// ForPiece returns traversal of the piece kind, or nil.
func ForPiece(pt common.PieceType) Func {
	switch pt.Abs() {
	case common.Pegasus:
		return Pegasus
	case common.Shaman:
		return Shaman
	case common.Centaur:
		return Centaur
	}
	return nil
}

// FindPiece searches figure rank, light one if searchLight, dark one
// otherwise, from Queen-side or King-side, for exactly pt.
func FindPiece(b *common.Board, pt common.PieceType, searchLight, searchQueenSide bool) (common.Pos, bool) {
	var lo, hi = b.PositionLimits()
	var rank = hi.J
	if searchLight {
		rank = lo.J
	}
	var result = common.PosNone
	for _, p := range b.Find(pt) {
		if p.J != rank {
			continue
		}
		result = p
		if searchQueenSide {
			break
		}
	}
	return result, result != common.PosNone
}

// CheckField classifies field p as seen by pt; fields off board are Empty.
func CheckField(b *common.Board, pt common.PieceType, p common.Pos) Field {
	var other = b.Get(p)
	if pt.IsFriend(other) {
		return Friend
	}
	if pt.IsFoe(other) {
		return Foe
	}
	return Empty
}

func IsOpponentsKing(b *common.Board, pt common.PieceType, p common.Pos) bool {
	var other = b.Get(p)
	return pt.IsFoe(other) && other.Is(common.King)
}

func checkStart(sc *scene.Scene, pt, kind common.PieceType, start common.Pos) error {
	if !pt.Is(kind) {
		return fmt.Errorf("%v traversal of %v: %w", kind.Name(), pt, ErrPieceType)
	}
	if !sc.Board.IsOnBoard(start) {
		return fmt.Errorf("%v traversal from %v: %w", kind.Name(), start, common.ErrOffBoard)
	}
	return nil
}

func captureMark(b *common.Board, pt common.PieceType, p common.Pos) scene.MarkType {
	if IsOpponentsKing(b, pt, p) {
		return scene.Illegal
	}
	return scene.Action
}

// labelSteps numbers fields reachable from p by steps, starting from 1.
// Opponent's King cannot be captured, so its field is also marked.
func labelSteps(sc *scene.Scene, b *common.Board, pt common.PieceType, p common.Pos, steps []common.Step, markKing bool) {
	for index, step := range steps {
		var c = p.Add(step)
		var label = strconv.Itoa(index + 1)
		if IsOpponentsKing(b, pt, c) {
			sc.AppendText(label, c, scene.UpperLeft, scene.Illegal)
			if markKing {
				sc.AppendFieldMarker(c, scene.Illegal)
			}
		} else {
			sc.AppendText(label, c, scene.UpperLeft, scene.Legal)
		}
	}
}

// markSteps marks fields reachable from p by steps as capture targets.
func markSteps(sc *scene.Scene, b *common.Board, pt common.PieceType, p common.Pos, steps []common.Step) {
	for _, step := range steps {
		var c = p.Add(step)
		sc.AppendFieldMarker(c, captureMark(b, pt, c))
	}
}
