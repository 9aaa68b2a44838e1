package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a field on the board: I is the file, J is the rank, both zero based.
type Pos struct {
	I, J int
}

var PosNone = Pos{-1, -1}

func (p Pos) Add(step Step) Pos {
	return Pos{p.I + step.DI, p.J + step.DJ}
}

func (p Pos) Sub(step Step) Pos {
	return Pos{p.I - step.DI, p.J - step.DJ}
}

func IsDarkSquare(p Pos) bool {
	return (p.I & 1) == (p.J & 1)
}

const fileNames = "abcdefghijklmnopqrstuvwxyz"

// String returns field name, e.g. "a1" or "z26".
func (p Pos) String() string {
	if p.I < 0 || p.I >= len(fileNames) || p.J < 0 {
		return "-"
	}
	return string(fileNames[p.I]) + strconv.Itoa(p.J+1)
}

func ParsePos(s string) (Pos, error) {
	if s == "-" {
		return PosNone, nil
	}
	if len(s) < 2 {
		return PosNone, fmt.Errorf("parse field failed %v", s)
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank, err = strconv.Atoi(s[1:])
	if file < 0 || err != nil || rank < 1 {
		return PosNone, fmt.Errorf("parse field failed %v", s)
	}
	return Pos{file, rank - 1}, nil
}
