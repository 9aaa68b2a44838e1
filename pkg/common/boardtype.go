package common

import (
	"fmt"
	"strings"
)

type BoardType int

const (
	BoardNone BoardType = iota
	Classical
	CroatianTies
	MayanAscendancy
	AgeOfAquarius
	MirandasVeil
	Nineteen
	HemerasDawn
	TamoanchanRevisited
	ConquestOfTlalocan
	One
)

type variantInfo struct {
	name  string
	label string
	size  int
	// light figures, from file a; dark ones mirror them on the last rank
	figures string
	// light pawn rank, empty means Pawns only
	pawns string
}

var variants = [...]variantInfo{
	BoardNone:           {name: "none"},
	Classical:           {"Classical Chess", "C", 8, "RNBQKBNR", ""},
	CroatianTies:        {"Croatian Ties", "CT", 10, "RENBQKBNER", ""},
	MayanAscendancy:     {"Mayan Ascendancy", "MA", 12, "RENBAQKABNER", ""},
	AgeOfAquarius:       {"Age of Aquarius", "AOA", 14, "RUENBAQKABNEUR", ""},
	MirandasVeil:        {"Miranda's Veil", "MV", 16, "RWUENBAQKABNEUWR", ""},
	Nineteen:            {"Nineteen", "N", 18, "TRWUENBAQKABNEUWRT", ""},
	HemerasDawn:         {"Hemera's Dawn", "HD", 20, "TRCWUENBAQKABNEUWCRT", ""},
	TamoanchanRevisited: {"Tamoanchan Revisited", "TR", 22, "TRCWUENBANQKNABNEUWCRT", "OGPPPPPPPPPPPPPPPPPPGO"},
	ConquestOfTlalocan:  {"Conquest of Tlalocan", "COT", 24, "TRCSWUHENBAQKABNEHUWSCRT", "OGPPPPPPPPPPPPPPPPPPPPGO"},
	One:                 {"One", "O", 26, "TRCSWUHENBAIQKIABNEHUWSCRT", "OGPPPPPPPPPPPPPPPPPPPPPPGO"},
}

// BoardTypes returns all playable variants, in book order.
func BoardTypes() []BoardType {
	var result []BoardType
	for bt := Classical; bt <= One; bt++ {
		result = append(result, bt)
	}
	return result
}

func (bt BoardType) IsValid() bool {
	return bt > BoardNone && bt <= One
}

// Size is both width and height of the board.
func (bt BoardType) Size() int {
	if !bt.IsValid() {
		return 0
	}
	return variants[bt].size
}

func (bt BoardType) Label() string {
	if !bt.IsValid() {
		return ""
	}
	return variants[bt].label
}

func (bt BoardType) Name() string {
	if !bt.IsValid() {
		return fmt.Sprintf("board(%d)", int(bt))
	}
	return variants[bt].name
}

func (bt BoardType) String() string {
	return bt.Name()
}

// ParseBoardType accepts label ("CT") or name ("Croatian Ties"), case insensitive.
func ParseBoardType(s string) (BoardType, error) {
	for _, bt := range BoardTypes() {
		if strings.EqualFold(s, bt.Label()) || strings.EqualFold(s, bt.Name()) {
			return bt, nil
		}
	}
	return BoardNone, fmt.Errorf("parse board type failed %v", s)
}

// InitialSetup returns initial position of the variant in setup notation.
func (bt BoardType) InitialSetup() string {
	if !bt.IsValid() {
		return ""
	}
	var v = variants[bt]
	var pawns = v.pawns
	if pawns == "" {
		pawns = strings.Repeat("P", v.size)
	}
	var ranks = make([]string, 0, v.size)
	ranks = append(ranks, strings.ToLower(v.figures), strings.ToLower(pawns))
	for j := 2; j < v.size-2; j++ {
		ranks = append(ranks, fmt.Sprint(v.size))
	}
	ranks = append(ranks, pawns, v.figures)
	return strings.Join(ranks, "/")
}
