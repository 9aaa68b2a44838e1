// Package render draws scenes as PNG images and as terminal text.
package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

const (
	DefaultFieldSize = 40
	MinFieldSize     = 12
)

var (
	lightFieldColor = gg.Hex("#F0D9B5")
	darkFieldColor  = gg.Hex("#B58863")
	marginColor     = gg.Hex("#404040")
	lightPieceColor = gg.White
	darkPieceColor  = gg.Hex("#101010")
)

var markColors = map[scene.MarkType]gg.RGBA{
	scene.MarkNone: gg.RGBA2(0.5, 0.5, 0.5, 0.8),
	scene.Legal:    gg.RGBA2(0.1, 0.6, 0.1, 0.8),
	scene.Illegal:  gg.RGBA2(0.8, 0.1, 0.1, 0.8),
	scene.Action:   gg.RGBA2(0.1, 0.3, 0.8, 0.8),
}

func markColor(mt scene.MarkType) gg.RGBA {
	if c, found := markColors[mt]; found {
		return c
	}
	return markColors[scene.MarkNone]
}

// PNG renders scenes to PNG images. A PNG is safe for concurrent use.
type PNG struct {
	fieldSize int
	source    *text.FontSource
}

func NewPNG(fieldSize int) (*PNG, error) {
	if fieldSize < MinFieldSize {
		return nil, fmt.Errorf("field size %v less than %v", fieldSize, MinFieldSize)
	}
	var source, err = text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &PNG{fieldSize: fieldSize, source: source}, nil
}

func (r *PNG) Close() error {
	return r.source.Close()
}

// ImageSize returns pixel size of a rendered board, margins included.
func (r *PNG) ImageSize(b *common.Board) (width, height int) {
	return (b.Width() + 2) * r.fieldSize, (b.Height() + 2) * r.fieldSize
}

func (r *PNG) Encode(w io.Writer, sc *scene.Scene) error {
	var dc, err = r.draw(sc)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func (r *PNG) Save(path string, sc *scene.Scene) error {
	var file, err = os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(file, sc); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}

func (r *PNG) draw(sc *scene.Scene) (*gg.Context, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	var width, height = r.ImageSize(sc.Board)
	var l = layout{fieldSize: float64(r.fieldSize), height: sc.Board.Height()}
	var dc = gg.NewContext(width, height)
	dc.ClearWithColor(marginColor)

	var steps = []func(*gg.Context, layout, *scene.Scene) error{
		drawFields,
		r.drawCoordinates,
		drawFieldMarkers,
		r.drawPieces,
		drawArrows,
		r.drawTexts,
	}
	for _, step := range steps {
		if err := step(dc, l, sc); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// layout maps board positions to image coordinates; rank 0 is at the bottom.
type layout struct {
	fieldSize float64
	height    int
}

// field returns rectangle of p, one field of margin around the board.
func (l layout) field(p common.Pos) RectPos {
	var left = float64(p.I+1) * l.fieldSize
	var top = float64(l.height-p.J) * l.fieldSize
	return RectPos{Left: left, Top: top, Right: left + l.fieldSize, Bottom: top + l.fieldSize}
}

func (l layout) center(p common.Pos) gg.Point {
	return l.field(p).Center()
}

// corner returns anchor point and text alignment for corner c of field p.
func (l layout) corner(p common.Pos, c scene.Corner) (pt gg.Point, ax, ay float64) {
	return l.field(p).Inset(l.fieldSize / 10).Corner(c)
}

func drawFields(dc *gg.Context, l layout, sc *scene.Scene) error {
	for i := 0; i < sc.Board.Width(); i++ {
		for j := 0; j < sc.Board.Height(); j++ {
			var p = common.Pos{I: i, J: j}
			var c = lightFieldColor
			if common.IsDarkSquare(p) {
				c = darkFieldColor
			}
			var rect = l.field(p)
			dc.SetColor(c.Color())
			dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *PNG) drawCoordinates(dc *gg.Context, l layout, sc *scene.Scene) error {
	dc.SetFont(r.source.Face(l.fieldSize / 3))
	dc.SetColor(lightFieldColor.Color())
	var bottom = float64(sc.Board.Height()+1) * l.fieldSize
	for i := 0; i < sc.Board.Width(); i++ {
		var x = (float64(i) + 1.5) * l.fieldSize
		var file = common.Pos{I: i, J: 0}.String()[:1]
		dc.DrawStringAnchored(file, x, l.fieldSize/2, 0.5, 0.5)
		dc.DrawStringAnchored(file, x, bottom+l.fieldSize/2, 0.5, 0.5)
	}
	var right = float64(sc.Board.Width()+1) * l.fieldSize
	for j := 0; j < sc.Board.Height(); j++ {
		var y = l.center(common.Pos{I: 0, J: j}).Y
		var rank = fmt.Sprint(j + 1)
		dc.DrawStringAnchored(rank, l.fieldSize/2, y, 0.5, 0.5)
		dc.DrawStringAnchored(rank, right+l.fieldSize/2, y, 0.5, 0.5)
	}
	return nil
}

func drawFieldMarkers(dc *gg.Context, l layout, sc *scene.Scene) error {
	dc.SetLineWidth(math.Max(2, l.fieldSize/12))
	for _, fm := range sc.FieldMarkers() {
		var rect = l.field(fm.Field).Inset(l.fieldSize / 16)
		dc.SetColor(markColor(fm.MarkType).Color())
		dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PNG) drawPieces(dc *gg.Context, l layout, sc *scene.Scene) error {
	dc.SetFont(r.source.Face(l.fieldSize * 0.6))
	for i := 0; i < sc.Board.Width(); i++ {
		for j := 0; j < sc.Board.Height(); j++ {
			var p = common.Pos{I: i, J: j}
			var pt = sc.Board.Get(p)
			if pt == common.None {
				continue
			}
			var c = l.center(p)
			var fill, outline = lightPieceColor, darkPieceColor
			if pt.IsDark() {
				fill, outline = darkPieceColor, lightPieceColor
			}
			dc.SetColor(outline.Color())
			dc.DrawCircle(c.X, c.Y, l.fieldSize*0.38)
			if err := dc.Fill(); err != nil {
				return err
			}
			dc.SetColor(fill.Color())
			dc.DrawCircle(c.X, c.Y, l.fieldSize*0.34)
			if err := dc.Fill(); err != nil {
				return err
			}
			dc.SetColor(outline.Color())
			dc.DrawStringAnchored(pt.Label(), c.X, c.Y, 0.5, 0.5)
		}
	}
	return nil
}

func drawArrows(dc *gg.Context, l layout, sc *scene.Scene) error {
	var width = math.Max(2, l.fieldSize/10)
	var head = l.fieldSize / 4
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(width)
	for _, a := range sc.Arrows() {
		var start, end = l.center(a.Start), l.center(a.End)
		var dir = end.Sub(start)
		var length = math.Hypot(dir.X, dir.Y)
		if length == 0 {
			continue
		}
		var unit = dir.Div(length)
		var normal = gg.Pt(-unit.Y, unit.X)
		var base = end.Sub(unit.Mul(head))

		dc.SetColor(markColor(a.MarkType).Color())
		dc.DrawLine(start.X, start.Y, base.X, base.Y)
		if err := dc.Stroke(); err != nil {
			return err
		}
		var left = base.Add(normal.Mul(head / 2))
		var right = base.Sub(normal.Mul(head / 2))
		dc.MoveTo(end.X, end.Y)
		dc.LineTo(left.X, left.Y)
		dc.LineTo(right.X, right.Y)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PNG) drawTexts(dc *gg.Context, l layout, sc *scene.Scene) error {
	dc.SetFont(r.source.Face(l.fieldSize / 3))
	for _, t := range sc.Texts() {
		var p, ax, ay = l.corner(t.Field, t.Corner)
		dc.SetColor(markColor(t.MarkType).Color())
		dc.DrawStringAnchored(t.Text, p.X, p.Y, ax, ay)
	}
	return nil
}
