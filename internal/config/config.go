// Package config holds settings of the scene tools.
// Environment variables (CROCHESS_*) give defaults, command line flags override them.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/crochess/scenes/internal/render"
	"github.com/crochess/scenes/pkg/common"
)

type Settings struct {
	OutputFolder string   `env:"CROCHESS_OUTPUT" envDefault:"scenes"`
	CatalogPath  string   `env:"CROCHESS_CATALOG"`
	Threads      int      `env:"CROCHESS_THREADS"`
	FieldSize    int      `env:"CROCHESS_FIELD_SIZE" envDefault:"40"`
	LogLevel     string   `env:"CROCHESS_LOG_LEVEL" envDefault:"info"`
	Addr         string   `env:"CROCHESS_ADDR" envDefault:"localhost:8080"`
	Board        string   `env:"CROCHESS_BOARD"`
	Recent       []string `env:"CROCHESS_RECENT" envSeparator:","`
}

// Load reads settings from environment. Zero Threads means half of CPUs.
func Load() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if settings.Threads == 0 {
		settings.Threads = max(1, runtime.NumCPU()/2)
	}
	return settings, nil
}

// Bind registers flags which override loaded settings.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.StringVar(&s.OutputFolder, "output", s.OutputFolder, "Path to folder with rendered scenes")
	fs.StringVar(&s.CatalogPath, "catalog", s.CatalogPath, "Path to scene catalog database")
	fs.IntVar(&s.Threads, "threads", s.Threads, "Number of render threads")
	fs.IntVar(&s.FieldSize, "size", s.FieldSize, "Field size in pixels")
	fs.StringVar(&s.LogLevel, "log", s.LogLevel, "Log level")
	fs.StringVar(&s.Addr, "addr", s.Addr, "Preview server address")
	fs.StringVar(&s.Board, "board", s.Board, "Board type label or name")
	fs.Func("recent", "Comma separated scenario names", func(v string) error {
		s.Recent = splitNames(v)
		return nil
	})
}

func (s *Settings) Validate() error {
	if s.OutputFolder == "" {
		return fmt.Errorf("output folder empty")
	}
	if s.Threads < 1 {
		return fmt.Errorf("bad threads %v", s.Threads)
	}
	if s.FieldSize < render.MinFieldSize {
		return fmt.Errorf("field size %v less than %v", s.FieldSize, render.MinFieldSize)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	if _, err := s.BoardType(); err != nil {
		return err
	}
	return nil
}

// CatalogFile defaults to catalog.db inside output folder.
func (s *Settings) CatalogFile() string {
	if s.CatalogPath != "" {
		return s.CatalogPath
	}
	return filepath.Join(s.OutputFolder, "catalog.db")
}

func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, fmt.Errorf("bad log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}

// BoardType returns BoardNone when no board is selected.
func (s *Settings) BoardType() (common.BoardType, error) {
	if s.Board == "" {
		return common.BoardNone, nil
	}
	return common.ParseBoardType(s.Board)
}

func splitNames(s string) []string {
	var result []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}
	return result
}
