package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"github.com/crochess/scenes/internal/config"
	"github.com/crochess/scenes/pkg/mix"
)

func main() {
	var err = run(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("scenes failed", "err", err)
		}
		os.Exit(1)
	}
}

const usage = "usage: scenes list|show|render|serve [flags] [scenario...]"

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	var commandName = args[0]

	settings, err := config.Load()
	if err != nil {
		return err
	}
	var fs = flag.NewFlagSet(commandName, flag.ContinueOnError)
	settings.Bind(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	level, err := settings.Level()
	if err != nil {
		return err
	}
	var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	slog.Debug("settings", "settings", fmt.Sprintf("%+v", settings))

	var registry = mix.DefaultRegistry()
	if len(settings.Recent) != 0 {
		if err := registry.SetRecent(settings.Recent...); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var app = &App{
		settings: settings,
		registry: registry,
		out:      os.Stdout,
	}
	var names = fs.Args()
	var ch = NewCommandHandler()
	ch.Add("list", func() error { return app.List() })
	ch.Add("show", func() error { return app.Show(ctx, names) })
	ch.Add("render", func() error { return app.Render(ctx, names) })
	ch.Add("serve", func() error { return app.Serve(ctx) })
	return ch.Execute(commandName)
}
