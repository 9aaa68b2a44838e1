package mix

import (
	"context"
	"fmt"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
	"github.com/crochess/scenes/pkg/traverse"
)

// bookScene is a hand-made position, traversed by the piece at start.
type bookScene struct {
	name   string
	bt     common.BoardType
	pieces map[string]common.PieceType
	start  string
}

var bookScenes = []bookScene{
	{
		name: "scn_ct_01_pegasus_open_board",
		bt:   common.CroatianTies,
		pieces: map[string]common.PieceType{
			"e5":  common.Pegasus,
			"f1":  common.King,
			"f10": -common.King,
		},
		start: "e5",
	},
	{
		name: "scn_ct_02_pegasus_blocked_capture",
		bt:   common.CroatianTies,
		pieces: map[string]common.PieceType{
			"a1": common.Pegasus,
			"c2": common.Pawn,
			"c5": -common.Rook,
			"e3": -common.King,
		},
		start: "a1",
	},
	{
		name: "scn_ct_03_pegasus_king_not_captured",
		bt:   common.CroatianTies,
		pieces: map[string]common.PieceType{
			"a1": common.Pegasus,
			"c2": -common.King,
		},
		start: "a1",
	},
	{
		name: "scn_hd_01_centaur_capture",
		bt:   common.HemerasDawn,
		pieces: map[string]common.PieceType{
			"j10": common.Centaur,
			"n11": -common.Rook,
			"k1":  common.King,
			"k20": -common.King,
		},
		start: "j10",
	},
	{
		name: "scn_cot_01_shaman_capture_chain",
		bt:   common.ConquestOfTlalocan,
		pieces: map[string]common.PieceType{
			"c3":  common.Shaman,
			"d5":  -common.Pawn,
			"h6":  -common.Knight,
			"l1":  common.King,
			"i10": -common.King,
		},
		start: "c3",
	},
	{
		name: "scn_cot_02_dark_shaman_open_board",
		bt:   common.ConquestOfTlalocan,
		pieces: map[string]common.PieceType{
			"l12": -common.Shaman,
			"l1":  common.King,
			"l24": -common.King,
		},
		start: "l12",
	},
}

func (bs bookScene) board() (*common.Board, error) {
	var b = common.NewBoard(bs.bt)
	for field, pt := range bs.pieces {
		var pos, err = common.ParsePos(field)
		if err != nil {
			return nil, err
		}
		if err := b.Set(pos, pt); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (bs bookScene) produce(ctx context.Context) ([]*scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b, err = bs.board()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", bs.name, err)
	}
	start, err := common.ParsePos(bs.start)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", bs.name, err)
	}
	var pt = b.Get(start)
	var traverseFunc = traverse.ForPiece(pt)
	if traverseFunc == nil {
		return nil, fmt.Errorf("%v: no traversal for %v: %w", bs.name, pt, traverse.ErrPieceType)
	}
	scenes, err := traverseFunc(scene.NewWithBoard(bs.name, b), pt, start)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", bs.name, err)
	}

	var result []*scene.Scene
	for _, sc := range scenes {
		if sc.IsEmpty() {
			continue
		}
		sc.FileName = bs.name
		if len(scenes) > 1 {
			sc.FileName = fmt.Sprintf("%s_%02d", bs.name, len(result))
		}
		result = append(result, sc)
	}
	return result, nil
}
