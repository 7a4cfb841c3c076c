package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"lifeloop/internal/app"
	"lifeloop/internal/core"
	"lifeloop/internal/render"
	"lifeloop/pkg/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Headless {
		err = runHeadless(ctx, cfg, os.Stdout)
	} else {
		err = runGUI(ctx, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// runHeadless streams generations to out as terminal frames.
func runHeadless(ctx context.Context, cfg *app.Config, out io.Writer) error {
	term := render.NewTerminal(out, true)
	stats := app.NewStats()
	return app.Stream(ctx, cfg, core.NewThrottle(cfg.TPS), nil, func(g *life.Grid, gen int) error {
		stats.Observe(g, gen)
		return errors.Wrapf(term.Display(g, stats.Line()), "display generation %d", gen)
	})
}
