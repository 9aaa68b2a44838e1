package common

import (
	"errors"
	"testing"
)

func TestInitialSetup(t *testing.T) {
	for _, bt := range BoardTypes() {
		var b = NewSetupBoard(bt)
		if b.Width() != bt.Size() || b.Height() != bt.Size() {
			t.Error(bt, b.Width(), b.Height())
		}
		if b.String() != bt.InitialSetup() {
			t.Error(bt, b.String())
		}
		var lightKings = b.Find(King)
		var darkKings = b.Find(-King)
		if len(lightKings) != 1 || len(darkKings) != 1 {
			t.Error(bt, "kings", lightKings, darkKings)
			continue
		}
		if lightKings[0].I != darkKings[0].I ||
			lightKings[0].J != 0 || darkKings[0].J != bt.Size()-1 {
			t.Error(bt, "kings", lightKings, darkKings)
		}
		for i := 0; i < b.Width(); i++ {
			var light = b.Get(Pos{i, 0})
			var dark = b.Get(Pos{i, b.Height() - 1})
			if light != -dark {
				t.Error(bt, "mirror", i, light, dark)
			}
		}
	}
}

func TestVariantPieces(t *testing.T) {
	var tests = []struct {
		bt    BoardType
		piece PieceType
		count int
	}{
		{Classical, Pegasus, 0},
		{CroatianTies, Pegasus, 2},
		{HemerasDawn, Centaur, 2},
		{HemerasDawn, Shaman, 0},
		{ConquestOfTlalocan, Shaman, 2},
		{ConquestOfTlalocan, Scout, 2},
		{One, Starchild, 2},
	}
	for i, test := range tests {
		var b = NewSetupBoard(test.bt)
		if got := len(b.Find(test.piece)); got != test.count {
			t.Error(i, test, got)
		}
		if got := len(b.Find(-test.piece)); got != test.count {
			t.Error(i, test, got)
		}
	}
}

func TestNewBoardFromSetup(t *testing.T) {
	var setup = "10/10/10/3k6/10/10/4E5/10/10/5K4"
	var b, err = NewBoardFromSetup(CroatianTies, setup)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Get(Pos{3, 6}); got != -King {
		t.Error(got)
	}
	if got := b.Get(Pos{4, 3}); got != Pegasus {
		t.Error(got)
	}
	if got := b.Get(Pos{5, 0}); got != King {
		t.Error(got)
	}
	if b.String() != setup {
		t.Error(b.String())
	}

	for _, bad := range []string{
		"10/10",
		"11/10/10/10/10/10/10/10/10/10",
		"10/10/10/3x6/10/10/10/10/10/10",
	} {
		if _, err := NewBoardFromSetup(CroatianTies, bad); err == nil {
			t.Error("expected error", bad)
		}
	}
}

func TestBoardFields(t *testing.T) {
	var b = NewBoard(Classical)
	var tests = []struct {
		pos   Pos
		on    bool
		light bool
		dark  bool
	}{
		{Pos{0, 0}, true, false, true},
		{Pos{1, 0}, true, true, false},
		{Pos{7, 7}, true, false, true},
		{Pos{8, 0}, false, false, false},
		{Pos{0, -1}, false, false, false},
	}
	for i, test := range tests {
		if b.IsOnBoard(test.pos) != test.on ||
			b.IsLight(test.pos) != test.light ||
			b.IsDark(test.pos) != test.dark {
			t.Error(i, test)
		}
	}
	if b.Get(Pos{-1, 3}) != None {
		t.Error("off board field should be empty")
	}
	if err := b.Set(Pos{8, 8}, Rook); !errors.Is(err, ErrOffBoard) {
		t.Error(err)
	}
	var lo, hi = b.PositionLimits()
	if lo != (Pos{0, 0}) || hi != (Pos{7, 7}) {
		t.Error(lo, hi)
	}
}

func TestClone(t *testing.T) {
	var b = NewSetupBoard(CroatianTies)
	var c = b.Clone()
	if err := c.Set(Pos{0, 0}, None); err != nil {
		t.Fatal(err)
	}
	if b.Get(Pos{0, 0}) != Rook {
		t.Error("clone shares fields")
	}
}

func TestParseBoardType(t *testing.T) {
	for _, bt := range BoardTypes() {
		if got, err := ParseBoardType(bt.Label()); err != nil || got != bt {
			t.Error(bt, got, err)
		}
		if got, err := ParseBoardType(bt.Name()); err != nil || got != bt {
			t.Error(bt, got, err)
		}
	}
	if _, err := ParseBoardType("Fischer"); err == nil {
		t.Error("expected error")
	}
}
