package mix

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/scene"
)

func TestIsaOneCroatianTies(t *testing.T) {
	var scenes, err = IsaOne(context.Background(), []common.BoardType{common.CroatianTies})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, sc := range scenes {
		names = append(names, sc.FileName)
	}
	var want = []string{"CT_01_E_lq_00", "CT_01_E_lk_00", "CT_01_E_dq_00", "CT_01_E_dk_00"}
	if !slices.Equal(names, want) {
		t.Error(names)
	}
}

func TestIsaOneNamesStable(t *testing.T) {
	var all, err = IsaOne(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var tests = []common.BoardType{common.CroatianTies, common.HemerasDawn, common.One}
	for i, bt := range tests {
		var want []string
		for _, sc := range all {
			if sc.Board.Type == bt {
				want = append(want, sc.FileName)
			}
		}
		var scenes, err = IsaOne(context.Background(), []common.BoardType{bt})
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, sc := range scenes {
			got = append(got, sc.FileName)
		}
		if len(want) == 0 || !slices.Equal(got, want) {
			t.Error(i, bt, got, want)
		}
	}
	if _, err := IsaOne(context.Background(), []common.BoardType{common.BoardNone}); err == nil {
		t.Error("expected error")
	}
}

func TestIsaOneAll(t *testing.T) {
	var scenes, err = IsaOne(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 262 {
		t.Error(len(scenes))
	}
	var names = make(map[string]struct{})
	var perBoard = make(map[string]int)
	for _, sc := range scenes {
		if sc.IsEmpty() {
			t.Error("empty scene", sc.FileName)
		}
		if err := sc.Validate(); err != nil {
			t.Error(err)
		}
		if _, found := names[sc.FileName]; found {
			t.Error("duplicate", sc.FileName)
		}
		names[sc.FileName] = struct{}{}
		perBoard[sc.Board.Type.Label()]++
	}
	var tests = []struct {
		label  string
		scenes int
	}{
		{"C", 0},
		{"CT", 4},
		{"HD", 60},
		{"TR", 57},
		{"COT", 64},
		{"O", 61},
	}
	for i, test := range tests {
		if perBoard[test.label] != test.scenes {
			t.Error(i, test, perBoard[test.label])
		}
	}
}

func TestIsaOneCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if _, err := IsaOne(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Error(err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	var r = DefaultRegistry()
	if !slices.Equal(r.Recent(), []string{IsaOneName}) {
		t.Error(r.Recent())
	}
	var all = r.All()
	if len(all) != len(bookScenes) {
		t.Error(all)
	}
	for _, name := range all {
		if !strings.HasPrefix(name, BookScenePrefix) {
			t.Error(name)
		}
	}
	if slices.Contains(all, IsaOneName) {
		t.Error("isa_one is not a book scene")
	}
	if len(r.Names()) != len(all)+1 {
		t.Error(r.Names())
	}
}

func TestBookScenes(t *testing.T) {
	var r = DefaultRegistry()
	for _, name := range r.All() {
		t.Run(name, func(t *testing.T) {
			var scenes, err = r.Produce(context.Background(), []string{name})
			if err != nil {
				t.Fatal(err)
			}
			if len(scenes) == 0 {
				t.Fatal("no scenes")
			}
			for _, sc := range scenes {
				if sc.IsEmpty() {
					t.Error("empty scene")
				}
				if !strings.HasPrefix(sc.FileName, name) {
					t.Error(sc.FileName)
				}
				if err := sc.Validate(); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestBookSceneKing(t *testing.T) {
	var r = DefaultRegistry()
	var scenes, err = r.Produce(context.Background(), []string{"scn_ct_03_pegasus_king_not_captured"})
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 1 {
		t.Fatal(len(scenes))
	}
	var arrows = scenes[0].Arrows()
	var want = scene.Arrow{Start: common.Pos{I: 0, J: 0}, End: common.Pos{I: 2, J: 1}, MarkType: scene.Illegal}
	if !slices.Contains(arrows, want) {
		t.Error(arrows)
	}
}

func TestRegistry(t *testing.T) {
	var r = NewRegistry()
	var calls []string
	r.Register("scn_b", func(ctx context.Context) ([]*scene.Scene, error) {
		calls = append(calls, "scn_b")
		return []*scene.Scene{scene.New("b", common.Classical)}, nil
	})
	r.Register("scn_a", func(ctx context.Context) ([]*scene.Scene, error) {
		calls = append(calls, "scn_a")
		return []*scene.Scene{scene.New("a1", common.Classical), scene.New("a2", common.Classical)}, nil
	})
	if !slices.Equal(r.Names(), []string{"scn_a", "scn_b"}) {
		t.Error(r.Names())
	}
	var scenes, err = r.Produce(context.Background(), []string{"scn_b", "scn_a"})
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 3 || !slices.Equal(calls, []string{"scn_b", "scn_a"}) {
		t.Error(len(scenes), calls)
	}
	if _, err := r.Produce(context.Background(), []string{"scn_c"}); err == nil {
		t.Error("expected error")
	}
	if err := r.SetRecent("scn_c"); err == nil {
		t.Error("expected error")
	}
	if err := r.SetRecent("scn_a"); err != nil || !slices.Equal(r.Recent(), []string{"scn_a"}) {
		t.Error(err, r.Recent())
	}
}
