// Package export renders named scenarios into a folder of PNG files.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/crochess/scenes/pkg/common"
	"github.com/crochess/scenes/pkg/mix"
	"github.com/crochess/scenes/pkg/scene"
)

type Renderer interface {
	Save(path string, sc *scene.Scene) error
}

type Catalog interface {
	BeginRun(ctx context.Context, scenarios []string) (string, error)
	SaveScene(ctx context.Context, runID string, sc *scene.Scene, path string) error
}

// Exporter renders scenes with Threads workers into OutputFolder.
// BoardType limits export to one variant, BoardNone exports all.
type Exporter struct {
	Registry     *mix.Registry
	Renderer     Renderer
	Catalog      Catalog
	OutputFolder string
	Threads      int
	BoardType    common.BoardType
}

type Result struct {
	RunID  string
	Scenes int
}

type rendered struct {
	sc   *scene.Scene
	path string
}

// Run renders scenes of named scenarios, Recent ones when names is empty.
func (e *Exporter) Run(ctx context.Context, names []string) (Result, error) {
	if len(names) == 0 {
		names = e.Registry.Recent()
	}
	if e.Threads < 1 {
		return Result{}, fmt.Errorf("bad threads %v", e.Threads)
	}
	if err := os.MkdirAll(e.OutputFolder, 0o755); err != nil {
		return Result{}, err
	}
	var runID, err = e.Catalog.BeginRun(ctx, names)
	if err != nil {
		return Result{}, err
	}
	slog.Info("export started",
		"run", runID,
		"scenarios", names,
		"output", e.OutputFolder)

	g, ctx := errgroup.WithContext(ctx)

	var scenes = make(chan *scene.Scene, 128)
	var results = make(chan rendered, 128)
	var count int

	g.Go(func() error {
		defer close(scenes)
		return e.produce(ctx, names, scenes)
	})

	g.Go(func() error {
		var err error
		count, err = e.saveCatalog(ctx, runID, results)
		return err
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < e.Threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return e.renderScenes(ctx, scenes, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	slog.Info("export finished",
		"run", runID,
		"scenes", count)
	return Result{RunID: runID, Scenes: count}, nil
}

// produce rejects duplicate file names before any of them reaches a render worker.
func (e *Exporter) produce(ctx context.Context, names []string, scenes chan<- *scene.Scene) error {
	var seen = make(map[string]struct{})
	return e.Registry.Walk(ctx, names, func(sc *scene.Scene) error {
		if e.BoardType != common.BoardNone && sc.Board.Type != e.BoardType {
			return nil
		}
		if _, found := seen[sc.FileName]; found {
			return fmt.Errorf("duplicate scene file name %v", sc.FileName)
		}
		seen[sc.FileName] = struct{}{}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case scenes <- sc:
			return nil
		}
	})
}

func (e *Exporter) renderScenes(ctx context.Context, scenes <-chan *scene.Scene, results chan<- rendered) error {
	for sc := range scenes {
		var path = filepath.Join(e.OutputFolder, sc.FileName+".png")
		if err := e.Renderer.Save(path, sc); err != nil {
			return fmt.Errorf("render %v: %w", sc.FileName, err)
		}
		slog.Debug("rendered",
			"scene", sc.FileName,
			"annotations", len(sc.Annotations()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- rendered{sc: sc, path: path}:
		}
	}
	return nil
}

func (e *Exporter) saveCatalog(ctx context.Context, runID string, results <-chan rendered) (int, error) {
	var count int
	for r := range results {
		if err := e.Catalog.SaveScene(ctx, runID, r.sc, r.path); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
