package mix

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
	"github.com/crochess/scenes/pkg/traverse"
)

const IsaOneName = "isa_one"

var isaPieces = []common.PieceType{common.Pegasus, common.Shaman, common.Centaur}

// IsaOne traverses every Pegasus, Shaman and Centaur found on figure ranks
// of initial setups, for light and dark side, from Queen- and King-side.
// Nil boardTypes means all variants.
// File names carry the variant's index in BoardTypes, so they do not depend on boardTypes.
func IsaOne(ctx context.Context, boardTypes []common.BoardType) ([]*scene.Scene, error) {
	var all = common.BoardTypes()
	if boardTypes == nil {
		boardTypes = all
	}
	var result []*scene.Scene
	for _, bt := range boardTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var index = slices.Index(all, bt)
		if index < 0 {
			return nil, fmt.Errorf("isa: bad board type %v", bt)
		}
		for _, kind := range isaPieces {
			for _, searchLight := range []bool{true, false} {
				for _, searchQueenSide := range []bool{true, false} {
					var scenes, err = isaPiece(bt, index, kind, searchLight, searchQueenSide)
					if err != nil {
						return nil, err
					}
					result = append(result, scenes...)
				}
			}
		}
	}
	return result, nil
}

func isaPiece(bt common.BoardType, index int, kind common.PieceType, searchLight, searchQueenSide bool) ([]*scene.Scene, error) {
	var sc = scene.New("isa", bt)
	var pt = kind
	if !searchLight {
		pt = kind.Opposite()
	}
	var start, found = traverse.FindPiece(sc.Board, pt, searchLight, searchQueenSide)
	if !found {
		return nil, nil
	}
	slog.Debug("isa", "board", bt.Label(), "piece", pt, "field", start)

	var scenes, err = traverse.ForPiece(pt)(sc, pt, start)
	if err != nil {
		return nil, err
	}
	var result []*scene.Scene
	for _, s := range scenes {
		if s.IsEmpty() {
			continue
		}
		s.FileName = fmt.Sprintf("%s_%02d_%s_%s%s_%02d",
			bt.Label(), index, pt.Label(),
			sideTag(searchLight), wingTag(searchQueenSide), len(result))
		result = append(result, s)
	}
	return result, nil
}

func sideTag(light bool) string {
	if light {
		return "l"
	}
	return "d"
}

func wingTag(queenSide bool) string {
	if queenSide {
		return "q"
	}
	return "k"
}
