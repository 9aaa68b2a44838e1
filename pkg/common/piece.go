package common

import "fmt"

// PieceType is positive for light pieces, negative for dark ones.
type PieceType int

const None PieceType = 0

const (
	Pawn PieceType = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
	Pegasus
	Pyramid
	Unicorn
	Wave
	Star
	Centaur
	Scout
	Grenadier
	Serpent
	Shaman
	Monolith
	Starchild
)

const pieceSymbols = " PNBRQKEAUWTCOGSHMI"

var pieceNames = [...]string{
	"none",
	"pawn",
	"knight",
	"bishop",
	"rook",
	"queen",
	"king",
	"pegasus",
	"pyramid",
	"unicorn",
	"wave",
	"star",
	"centaur",
	"scout",
	"grenadier",
	"serpent",
	"shaman",
	"monolith",
	"starchild",
}

func (pt PieceType) IsLight() bool {
	return pt > None
}

func (pt PieceType) IsDark() bool {
	return pt < None
}

func (pt PieceType) IsValid() bool {
	return pt.Abs() <= Starchild
}

func (pt PieceType) Abs() PieceType {
	if pt < None {
		return -pt
	}
	return pt
}

func (pt PieceType) Opposite() PieceType {
	return -pt
}

// IsFriend reports whether other is a piece of the same side.
func (pt PieceType) IsFriend(other PieceType) bool {
	return (pt.IsLight() && other.IsLight()) ||
		(pt.IsDark() && other.IsDark())
}

// IsFoe reports whether other is a piece of the opposite side.
func (pt PieceType) IsFoe(other PieceType) bool {
	return (pt.IsLight() && other.IsDark()) ||
		(pt.IsDark() && other.IsLight())
}

// Is reports whether pt is kind, regardless of side.
func (pt PieceType) Is(kind PieceType) bool {
	return pt != None && pt.Abs() == kind.Abs()
}

// Symbol returns upper case letter for light, lower case for dark piece,
// and space for None.
func (pt PieceType) Symbol() rune {
	if !pt.IsValid() {
		return '?'
	}
	var ch = rune(pieceSymbols[pt.Abs()])
	if pt.IsDark() {
		return ch - 'A' + 'a'
	}
	return ch
}

// Label is upper case symbol, used in file names.
func (pt PieceType) Label() string {
	if !pt.IsValid() || pt == None {
		return ""
	}
	return string(pieceSymbols[pt.Abs()])
}

func (pt PieceType) Name() string {
	if !pt.IsValid() {
		return fmt.Sprintf("piece(%d)", int(pt))
	}
	return pieceNames[pt.Abs()]
}

func (pt PieceType) String() string {
	switch {
	case pt.IsLight():
		return "light " + pt.Name()
	case pt.IsDark():
		return "dark " + pt.Name()
	}
	return pt.Name()
}

func ParsePieceType(ch rune) (PieceType, error) {
	var pt = parsePiece(ch)
	if pt == None && ch != ' ' && ch != '.' {
		return None, fmt.Errorf("parse piece failed %q", ch)
	}
	return pt, nil
}
