//go:build ebiten

package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeloop/internal/app"
	"lifeloop/internal/core"
	"lifeloop/pkg/life"
)

// runGUI runs the generation loop on a worker goroutine and displays the
// latest snapshot in a window until the user quits.
func runGUI(ctx context.Context, cfg *app.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	slot := &app.Slot{}
	controls := &app.Controls{}
	eg.Go(func() error {
		return app.Stream(ctx, cfg, core.NewThrottle(cfg.TPS), controls, func(g *life.Grid, gen int) error {
			slot.Store(g, gen)
			return nil
		})
	})

	ebiten.SetWindowTitle("lifeloop — Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	runErr := ebiten.RunGame(app.New(ctx, cfg, slot, controls))

	cancel()
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return errors.Wrap(runErr, "run game")
	}
	return nil
}
