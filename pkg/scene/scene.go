// Package scene holds annotated board diagrams.
package scene

import (
	"fmt"

	"github.com/crochess/scenes/pkg/common"
)

type MarkType int

const (
	MarkNone MarkType = iota
	Legal
	Illegal
	Action
)

var markNames = [...]string{"none", "legal", "illegal", "action"}

func (mt MarkType) String() string {
	if mt < MarkNone || mt > Action {
		return fmt.Sprintf("mark(%d)", int(mt))
	}
	return markNames[mt]
}

// Corner is where text is placed within its field.
type Corner int

const (
	UpperLeft Corner = iota
	UpperRight
	LowerLeft
	LowerRight
	Center
)

type Annotation interface {
	Mark() MarkType
	// Fields returns all fields annotation refers to.
	Fields() []common.Pos
}

type Arrow struct {
	Start, End common.Pos
	MarkType   MarkType
}

type FieldMarker struct {
	Field    common.Pos
	MarkType MarkType
}

type Text struct {
	Text     string
	Field    common.Pos
	Corner   Corner
	MarkType MarkType
}

func (a Arrow) Mark() MarkType              { return a.MarkType }
func (a Arrow) Fields() []common.Pos        { return []common.Pos{a.Start, a.End} }
func (fm FieldMarker) Mark() MarkType       { return fm.MarkType }
func (fm FieldMarker) Fields() []common.Pos { return []common.Pos{fm.Field} }
func (t Text) Mark() MarkType               { return t.MarkType }
func (t Text) Fields() []common.Pos         { return []common.Pos{t.Field} }

// Scene is a board snapshot with annotations, in order of appending.
type Scene struct {
	Name     string
	FileName string
	Board    *common.Board

	annotations []Annotation
}

// New returns scene over board in initial setup.
func New(name string, bt common.BoardType) *Scene {
	return &Scene{
		Name:     name,
		FileName: name,
		Board:    common.NewSetupBoard(bt),
	}
}

// NewWithBoard returns scene over a copy of b.
func NewWithBoard(name string, b *common.Board) *Scene {
	return &Scene{
		Name:     name,
		FileName: name,
		Board:    b.Clone(),
	}
}

func (s *Scene) append(a Annotation) bool {
	for _, p := range a.Fields() {
		if !s.Board.IsOnBoard(p) {
			return false
		}
	}
	s.annotations = append(s.annotations, a)
	return true
}

// AppendArrow adds arrow, unless one of its fields is off board.
func (s *Scene) AppendArrow(start, end common.Pos, mt MarkType) bool {
	return s.append(Arrow{Start: start, End: end, MarkType: mt})
}

func (s *Scene) AppendFieldMarker(field common.Pos, mt MarkType) bool {
	return s.append(FieldMarker{Field: field, MarkType: mt})
}

func (s *Scene) AppendText(text string, field common.Pos, corner Corner, mt MarkType) bool {
	return s.append(Text{Text: text, Field: field, Corner: corner, MarkType: mt})
}

func (s *Scene) Annotations() []Annotation {
	return s.annotations
}

func (s *Scene) IsEmpty() bool {
	return len(s.annotations) == 0
}

func (s *Scene) Arrows() []Arrow {
	return filter[Arrow](s.annotations)
}

func (s *Scene) FieldMarkers() []FieldMarker {
	return filter[FieldMarker](s.annotations)
}

func (s *Scene) Texts() []Text {
	return filter[Text](s.annotations)
}

func filter[T Annotation](annotations []Annotation) []T {
	var result []T
	for _, a := range annotations {
		if v, ok := a.(T); ok {
			result = append(result, v)
		}
	}
	return result
}

// Count returns number of annotations with the given mark.
func (s *Scene) Count(mt MarkType) int {
	var result = 0
	for _, a := range s.annotations {
		if a.Mark() == mt {
			result++
		}
	}
	return result
}

// Validate checks all annotations are on board.
func (s *Scene) Validate() error {
	if s.Board == nil {
		return fmt.Errorf("scene %v: no board", s.Name)
	}
	for index, a := range s.annotations {
		for _, p := range a.Fields() {
			if !s.Board.IsOnBoard(p) {
				return fmt.Errorf("scene %v: annotation %v at %v: %w",
					s.Name, index, p, common.ErrOffBoard)
			}
		}
	}
	return nil
}

func (s *Scene) String() string {
	return fmt.Sprintf("%v (%v, %v annotations)", s.FileName, s.Board.Type.Label(), len(s.annotations))
}
