package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

var markBackground = map[scene.MarkType]*color.Color{
	scene.Legal:   color.New(color.BgGreen, color.FgBlack),
	scene.Illegal: color.New(color.BgRed, color.FgWhite),
	scene.Action:  color.New(color.BgBlue, color.FgWhite),
}

var markForeground = map[scene.MarkType]*color.Color{
	scene.MarkNone: color.New(color.FgWhite),
	scene.Legal:    color.New(color.FgGreen),
	scene.Illegal:  color.New(color.FgRed),
	scene.Action:   color.New(color.FgBlue),
}

// Terminal writes scenes as text grids, top rank first.
// Set color.NoColor to get plain output.
type Terminal struct {
	w io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Render(sc *scene.Scene) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	var sb strings.Builder
	fmt.Fprintln(&sb, Caption(sc))
	var markers = make(map[common.Pos]scene.MarkType)
	for _, fm := range sc.FieldMarkers() {
		markers[fm.Field] = fm.MarkType
	}
	var texts = make(map[common.Pos]scene.Text)
	for _, tx := range sc.Texts() {
		if _, found := texts[tx.Field]; !found {
			texts[tx.Field] = tx
		}
	}
	var b = sc.Board
	for j := b.Height() - 1; j >= 0; j-- {
		fmt.Fprintf(&sb, "%3d ", j+1)
		for i := 0; i < b.Width(); i++ {
			var p = common.Pos{I: i, J: j}
			var cell = fieldCell(b, p, texts)
			if c, found := markBackground[markers[p]]; found {
				cell = c.Sprint(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("    ")
	for i := 0; i < b.Width(); i++ {
		fmt.Fprintf(&sb, " %s ", common.Pos{I: i, J: 0}.String()[:1])
	}
	sb.WriteString("\n")
	for _, a := range sc.Arrows() {
		fmt.Fprintln(&sb, markForeground[a.MarkType].Sprintf("%v-%v %v", a.Start, a.End, a.MarkType))
	}
	var _, err = io.WriteString(t.w, sb.String())
	return err
}

// fieldCell is three characters wide: piece symbol, step label or a dot.
func fieldCell(b *common.Board, p common.Pos, texts map[common.Pos]scene.Text) string {
	if pt := b.Get(p); pt != common.None {
		return " " + string(pt.Symbol()) + " "
	}
	if tx, found := texts[p]; found {
		var s = tx.Text
		if len(s) > 2 {
			s = s[:2]
		}
		return markForeground[tx.MarkType].Sprint(fmt.Sprintf("%2s", s)) + " "
	}
	if common.IsDarkSquare(p) {
		return " : "
	}
	return " . "
}
