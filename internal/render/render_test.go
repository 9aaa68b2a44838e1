package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	var b = common.NewBoard(common.CroatianTies)
	var start = common.Pos{I: 0, J: 0}
	if err := b.Set(start, common.Pegasus); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(common.Pos{I: 2, J: 1}, -common.King); err != nil {
		t.Fatal(err)
	}
	var sc = scene.NewWithBoard("scn_ct_03_pegasus_king_not_captured", b)
	sc.FileName = sc.Name
	sc.AppendArrow(start, common.Pos{I: 2, J: 1}, scene.Illegal)
	sc.AppendArrow(start, common.Pos{I: 1, J: 2}, scene.Legal)
	sc.AppendFieldMarker(common.Pos{I: 2, J: 1}, scene.Illegal)
	sc.AppendText("1", common.Pos{I: 2, J: 1}, scene.UpperLeft, scene.Illegal)
	sc.AppendText("12", common.Pos{I: 5, J: 5}, scene.LowerRight, scene.Legal)
	return sc
}

func TestCaption(t *testing.T) {
	var tests = []struct {
		name     string
		fileName string
		bt       common.BoardType
		want     string
	}{
		{"scn_ct_01_pegasus_open_board", "scn_ct_01_pegasus_open_board", common.CroatianTies, "Croatian Ties: Ct 01 Pegasus Open Board"},
		{"isa", "HD_06_C_lq_03", common.HemerasDawn, "Hemera's Dawn: Hd 06 C Lq 03"},
		{"isa", "", common.Classical, "Classical Chess: Isa"},
	}
	for i, test := range tests {
		var sc = scene.New(test.name, test.bt)
		sc.FileName = test.fileName
		var got = Caption(sc)
		if got != test.want {
			t.Error(i, test, got)
		}
	}
}

func TestTerminal(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := NewTerminal(&buf).Render(testScene(t)); err != nil {
		t.Fatal(err)
	}
	var lines = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// caption, 10 ranks, file names, 2 arrows
	if len(lines) != 14 {
		t.Fatal(len(lines), buf.String())
	}
	if lines[0] != "Croatian Ties: Ct 03 Pegasus King Not Captured" {
		t.Error(lines[0])
	}
	var tests = []struct {
		line int
		want string
	}{
		{10, "  1  E  .  :  .  :  .  :  .  :  . "},
		{9, "  2  .  :  k  :  .  :  .  :  .  : "},
		{5, "  6  .  :  .  :  . 12  .  :  .  : "},
		{11, "     a  b  c  d  e  f  g  h  i  j "},
		{12, "a1-c2 illegal"},
		{13, "a1-b3 legal"},
	}
	for i, test := range tests {
		if lines[test.line] != test.want {
			t.Errorf("%v %q %q", i, test.want, lines[test.line])
		}
	}
}

func TestPNGEncode(t *testing.T) {
	var r, err = NewPNG(20)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var buf bytes.Buffer
	if err := r.Encode(&buf, testScene(t)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	var bounds = img.Bounds()
	if bounds.Dx() != 240 || bounds.Dy() != 240 {
		t.Error(bounds)
	}
}

func TestPNGSave(t *testing.T) {
	var r, err = NewPNG(DefaultFieldSize)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	var path = filepath.Join(t.TempDir(), "scene.png")
	if err := r.Save(path, testScene(t)); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 12*DefaultFieldSize {
		t.Error(img.Bounds())
	}
	var invalid = &scene.Scene{Name: "no board"}
	var badPath = filepath.Join(t.TempDir(), "bad.png")
	if err := r.Save(badPath, invalid); err == nil {
		t.Error("expected error")
	}
	if _, err := os.Stat(badPath); !os.IsNotExist(err) {
		t.Error("partial file left", err)
	}
}

func TestLayoutField(t *testing.T) {
	var l = layout{fieldSize: 10, height: 8}
	var tests = []struct {
		pos  common.Pos
		want RectPos
	}{
		{common.Pos{I: 0, J: 0}, RectPos{Left: 10, Top: 80, Right: 20, Bottom: 90}},
		{common.Pos{I: 7, J: 7}, RectPos{Left: 80, Top: 10, Right: 90, Bottom: 20}},
		{common.Pos{I: 2, J: 5}, RectPos{Left: 30, Top: 30, Right: 40, Bottom: 40}},
	}
	for i, test := range tests {
		var got = l.field(test.pos)
		if got != test.want {
			t.Error(i, test, got)
		}
		if c := l.center(test.pos); c.X != (got.Left+got.Right)/2 || c.Y != (got.Top+got.Bottom)/2 {
			t.Error(i, test, c)
		}
	}
}

func TestRectCorner(t *testing.T) {
	var rect = RectPos{Left: 10, Top: 20, Right: 30, Bottom: 60}.Inset(2)
	if rect.Width() != 16 || rect.Height() != 36 {
		t.Error(rect)
	}
	var tests = []struct {
		corner scene.Corner
		x, y   float64
		ax, ay float64
	}{
		{scene.UpperLeft, 12, 22, 0, 1},
		{scene.UpperRight, 28, 22, 1, 1},
		{scene.LowerLeft, 12, 58, 0, 0},
		{scene.LowerRight, 28, 58, 1, 0},
		{scene.Center, 20, 40, 0.5, 0.5},
	}
	for i, test := range tests {
		var pt, ax, ay = rect.Corner(test.corner)
		if pt.X != test.x || pt.Y != test.y || ax != test.ax || ay != test.ay {
			t.Error(i, test, pt, ax, ay)
		}
	}
}

func TestPNGFieldSize(t *testing.T) {
	if _, err := NewPNG(MinFieldSize - 1); err == nil {
		t.Error("expected error")
	}
}
