package config

import (
	"flag"
	"log/slog"
	"path/filepath"
	"slices"
	"testing"

	"github.com/crochess/scenes/pkg/common"
)

func TestLoadDefaults(t *testing.T) {
	var settings, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.OutputFolder != "scenes" || settings.FieldSize != 40 || settings.Threads < 1 {
		t.Errorf("%+v", settings)
	}
	if err := settings.Validate(); err != nil {
		t.Error(err)
	}
	if settings.CatalogFile() != filepath.Join("scenes", "catalog.db") {
		t.Error(settings.CatalogFile())
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CROCHESS_OUTPUT", "out")
	t.Setenv("CROCHESS_THREADS", "3")
	t.Setenv("CROCHESS_LOG_LEVEL", "debug")
	t.Setenv("CROCHESS_BOARD", "hd")
	t.Setenv("CROCHESS_RECENT", "isa_one,scn_ct_01_pegasus_open_board")
	var settings, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.OutputFolder != "out" || settings.Threads != 3 {
		t.Errorf("%+v", settings)
	}
	if !slices.Equal(settings.Recent, []string{"isa_one", "scn_ct_01_pegasus_open_board"}) {
		t.Error(settings.Recent)
	}
	if level, err := settings.Level(); err != nil || level != slog.LevelDebug {
		t.Error(level, err)
	}
	if bt, err := settings.BoardType(); err != nil || bt != common.HemerasDawn {
		t.Error(bt, err)
	}
}

func TestFlagsOverride(t *testing.T) {
	t.Setenv("CROCHESS_OUTPUT", "out")
	var settings, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	var fs = flag.NewFlagSet("test", flag.ContinueOnError)
	settings.Bind(fs)
	err = fs.Parse([]string{"-output", "book", "-catalog", "book.db", "-recent", "scn_a, scn_b", "-size", "20"})
	if err != nil {
		t.Fatal(err)
	}
	if settings.OutputFolder != "book" || settings.CatalogFile() != "book.db" || settings.FieldSize != 20 {
		t.Errorf("%+v", settings)
	}
	if !slices.Equal(settings.Recent, []string{"scn_a", "scn_b"}) {
		t.Error(settings.Recent)
	}
}

func TestValidate(t *testing.T) {
	var valid = Settings{OutputFolder: "scenes", Threads: 1, FieldSize: 40, LogLevel: "info"}
	var tests = []struct {
		modify func(*Settings)
		ok     bool
	}{
		{func(s *Settings) {}, true},
		{func(s *Settings) { s.OutputFolder = "" }, false},
		{func(s *Settings) { s.Threads = 0 }, false},
		{func(s *Settings) { s.FieldSize = 5 }, false},
		{func(s *Settings) { s.LogLevel = "loud" }, false},
		{func(s *Settings) { s.Board = "xx" }, false},
		{func(s *Settings) { s.Board = "Croatian Ties" }, true},
	}
	for i, test := range tests {
		var s = valid
		test.modify(&s)
		var err = s.Validate()
		if (err == nil) != test.ok {
			t.Error(i, s, err)
		}
	}
}
