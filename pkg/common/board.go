package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrOffBoard = errors.New("field is off board")

// Board is a grid of pieces, rank 0 is at the light side.
type Board struct {
	Type   BoardType
	width  int
	height int
	pieces []PieceType
}

// NewBoard returns empty board of the given variant.
func NewBoard(bt BoardType) *Board {
	var size = bt.Size()
	return &Board{
		Type:   bt,
		width:  size,
		height: size,
		pieces: make([]PieceType, size*size),
	}
}

// NewSetupBoard returns board in the initial position of the variant.
func NewSetupBoard(bt BoardType) *Board {
	var b = NewBoard(bt)
	b.Setup()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsOnBoard(p Pos) bool {
	return p.I >= 0 && p.I < b.width &&
		p.J >= 0 && p.J < b.height
}

func (b *Board) IsLight(p Pos) bool {
	return b.IsOnBoard(p) && !IsDarkSquare(p)
}

func (b *Board) IsDark(p Pos) bool {
	return b.IsOnBoard(p) && IsDarkSquare(p)
}

// PositionLimits returns the lowest and the highest (inclusive) field.
func (b *Board) PositionLimits() (Pos, Pos) {
	return Pos{0, 0}, Pos{b.width - 1, b.height - 1}
}

// Get returns None for fields off board.
func (b *Board) Get(p Pos) PieceType {
	if !b.IsOnBoard(p) {
		return None
	}
	return b.pieces[p.J*b.width+p.I]
}

func (b *Board) Set(p Pos, pt PieceType) error {
	if !b.IsOnBoard(p) {
		return fmt.Errorf("set %v at %v: %w", pt, p, ErrOffBoard)
	}
	if !pt.IsValid() {
		return fmt.Errorf("set %v: invalid piece", int(pt))
	}
	b.pieces[p.J*b.width+p.I] = pt
	return nil
}

func (b *Board) Clear() {
	for i := range b.pieces {
		b.pieces[i] = None
	}
}

// Setup puts pieces into the initial position of the board variant.
func (b *Board) Setup() {
	var err = b.load(b.Type.InitialSetup())
	if err != nil {
		// initial setups are static data
		panic(err)
	}
}

func (b *Board) Clone() *Board {
	var result = *b
	result.pieces = append([]PieceType(nil), b.pieces...)
	return &result
}

// Find returns fields holding pt, in rank then file order.
func (b *Board) Find(pt PieceType) []Pos {
	var result []Pos
	for j := 0; j < b.height; j++ {
		for i := 0; i < b.width; i++ {
			if b.pieces[j*b.width+i] == pt {
				result = append(result, Pos{i, j})
			}
		}
	}
	return result
}

// NewBoardFromSetup parses setup notation: ranks from the dark side down,
// separated by '/', pieces by symbol, empty fields by count.
func NewBoardFromSetup(bt BoardType, setup string) (*Board, error) {
	if !bt.IsValid() {
		return nil, fmt.Errorf("parse setup failed: %v", bt)
	}
	var b = NewBoard(bt)
	if err := b.load(setup); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) load(setup string) error {
	var ranks = strings.Split(setup, "/")
	if len(ranks) != b.height {
		return fmt.Errorf("parse setup failed, %v ranks expected %v", b.height, setup)
	}
	b.Clear()
	for index, rank := range ranks {
		var j = b.height - 1 - index
		var i = 0
		var digits = 0
		var flush = func() {
			i += digits
			digits = 0
		}
		for _, ch := range rank {
			if unicode.IsDigit(ch) {
				digits = digits*10 + int(ch-'0')
				continue
			}
			flush()
			var pt, err = ParsePieceType(ch)
			if err != nil {
				return err
			}
			if i >= b.width {
				return fmt.Errorf("parse setup failed, rank %v too long", j+1)
			}
			b.pieces[j*b.width+i] = pt
			i++
		}
		flush()
		if i != b.width {
			return fmt.Errorf("parse setup failed, rank %v has %v fields", j+1, i)
		}
	}
	return nil
}

// String returns setup notation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	for j := b.height - 1; j >= 0; j-- {
		var emptyCount = 0
		for i := 0; i < b.width; i++ {
			var pt = b.pieces[j*b.width+i]
			if pt == None {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(pt.Symbol())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if j != 0 {
			sb.WriteString("/")
		}
	}
	return sb.String()
}
