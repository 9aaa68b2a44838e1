package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/crochess/scenes/internal/catalog"
	"github.com/crochess/scenes/internal/config"
	"github.com/crochess/scenes/internal/export"
	"github.com/crochess/scenes/internal/preview"
	"github.com/crochess/scenes/internal/render"
	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/mix"
	"github.com/crochess/scenes/pkg/scene"
)

type App struct {
	settings config.Settings
	registry *mix.Registry
	out      io.Writer
}

// List prints scenario names; recent ones are starred.
func (app *App) List() error {
	var recent = app.registry.Recent()
	for _, name := range app.registry.Names() {
		var mark = " "
		if slices.Contains(recent, name) {
			mark = "*"
		}
		var kind = "mix"
		if strings.HasPrefix(name, mix.BookScenePrefix) {
			kind = "book"
		}
		if _, err := fmt.Fprintf(app.out, "%s %-4s %s\n", mark, kind, name); err != nil {
			return err
		}
	}
	return nil
}

// Show writes scenes of named (or recent) scenarios to the terminal.
func (app *App) Show(ctx context.Context, names []string) error {
	if len(names) == 0 {
		names = app.registry.Recent()
	}
	bt, err := app.settings.BoardType()
	if err != nil {
		return err
	}
	var term = render.NewTerminal(app.out)
	return app.registry.Walk(ctx, names, func(sc *scene.Scene) error {
		if bt != common.BoardNone && sc.Board.Type != bt {
			return nil
		}
		if _, err := fmt.Fprintf(app.out, "\n%s\n", sc.FileName); err != nil {
			return err
		}
		return term.Render(sc)
	})
}

// Render exports named (or recent) scenarios to PNG files and the catalog.
func (app *App) Render(ctx context.Context, names []string) error {
	bt, err := app.settings.BoardType()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(app.settings.OutputFolder, 0o755); err != nil {
		return err
	}
	store, err := catalog.Open(app.settings.CatalogFile())
	if err != nil {
		return err
	}
	defer store.Close()
	renderer, err := render.NewPNG(app.settings.FieldSize)
	if err != nil {
		return err
	}
	defer renderer.Close()

	var exporter = &export.Exporter{
		Registry:     app.registry,
		Renderer:     renderer,
		Catalog:      store,
		OutputFolder: app.settings.OutputFolder,
		Threads:      app.settings.Threads,
		BoardType:    bt,
	}
	result, err := exporter.Run(ctx, names)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.out, "run %v: %v scenes in %v\n", result.RunID, result.Scenes, app.settings.OutputFolder)
	return err
}

// Serve runs the preview server over the catalog until interrupted.
func (app *App) Serve(ctx context.Context) error {
	store, err := catalog.Open(app.settings.CatalogFile())
	if err != nil {
		return err
	}
	defer store.Close()
	var accessLog = slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo).Writer()
	return preview.NewServer(store, accessLog).ListenAndServe(ctx, app.settings.Addr)
}
