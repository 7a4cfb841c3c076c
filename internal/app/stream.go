package app

import (
	"context"
	"sync/atomic"

	"lifeloop/internal/core"
	pcore "lifeloop/pkg/core"
	"lifeloop/pkg/life"
)

// Controls lets a consumer pause delivery or request single steps while the
// loop runs on another goroutine.
type Controls struct {
	paused atomic.Bool
	step   atomic.Bool
}

// TogglePause flips the paused state.
func (c *Controls) TogglePause() { c.paused.Store(!c.paused.Load()) }

// Resume clears the paused state.
func (c *Controls) Resume() { c.paused.Store(false) }

// Paused reports whether delivery is paused.
func (c *Controls) Paused() bool { return c.paused.Load() }

// StepOnce lets exactly one more generation through while paused.
func (c *Controls) StepOnce() { c.step.Store(true) }

// DeliverFunc consumes one generation. A non-nil error stops the stream.
type DeliverFunc func(g *life.Grid, generation int) error

// Stream seeds a grid from cfg and feeds every generation to deliver, paced
// by throttle. It stops after cfg.MaxGenerations advances (when positive),
// when deliver fails, or when ctx is done. controls may be nil.
func Stream(ctx context.Context, cfg *Config, throttle *core.Throttle, controls *Controls, deliver DeliverFunc) error {
	var (
		gen int
		err error
	)
	seed := pcore.RandomInitializer(cfg.Seed, cfg.Density)
	life.Run(cfg.Size(), seed, func(g *life.Grid) bool {
		if err = deliver(g, gen); err != nil {
			return false
		}
		if cfg.MaxGenerations > 0 && gen >= cfg.MaxGenerations {
			return false
		}
		gen++
		for {
			if err = throttle.Wait(ctx); err != nil {
				return false
			}
			if controls == nil {
				return true
			}
			if !controls.paused.Load() {
				// A step requested while running must not leak into the next pause.
				controls.step.Store(false)
				return true
			}
			if controls.step.CompareAndSwap(true, false) {
				return true
			}
		}
	})
	return err
}
