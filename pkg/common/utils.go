package common

import (
	"strings"
	"unicode"
)

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

func parsePiece(ch rune) PieceType {
	var light = unicode.IsUpper(ch)
	var i = strings.IndexRune(pieceSymbols, unicode.ToUpper(ch))
	if i <= 0 {
		return None
	}
	return PieceType(let(light, i, -i))
}
