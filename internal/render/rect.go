package render

import (
	"github.com/gogpu/gg"

	"github.com/crochess/scenes/pkg/scene"
)

// RectPos is a rectangle in image coordinates; Top is above Bottom, so Top < Bottom.
type RectPos struct {
	Left, Top, Right, Bottom float64
}

func (r RectPos) Width() float64 {
	return r.Right - r.Left
}

func (r RectPos) Height() float64 {
	return r.Bottom - r.Top
}

func (r RectPos) Center() gg.Point {
	return gg.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Inset shrinks r by d on every side.
func (r RectPos) Inset(d float64) RectPos {
	return RectPos{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Corner returns anchor point of corner c and text alignment for DrawStringAnchored.
func (r RectPos) Corner(c scene.Corner) (pt gg.Point, ax, ay float64) {
	switch c {
	case scene.UpperLeft:
		return gg.Pt(r.Left, r.Top), 0, 1
	case scene.UpperRight:
		return gg.Pt(r.Right, r.Top), 1, 1
	case scene.LowerLeft:
		return gg.Pt(r.Left, r.Bottom), 0, 0
	case scene.LowerRight:
		return gg.Pt(r.Right, r.Bottom), 1, 0
	default:
		return r.Center(), 0.5, 0.5
	}
}
