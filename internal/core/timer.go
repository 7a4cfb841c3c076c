package core

import (
	"context"
	"sync"
	"time"
)

// Throttle paces a producer at a steady ticks-per-second rate. Unlike a
// time.Ticker it never queues missed ticks: a producer that falls behind
// resumes at the current time instead of bursting to catch up.
type Throttle struct {
	mu   sync.Mutex
	step time.Duration
	next time.Time
}

// NewThrottle constructs a Throttle targeting the given TPS.
func NewThrottle(tps int) *Throttle {
	t := &Throttle{}
	t.SetTPS(tps)
	return t
}

// SetTPS changes the tick rate. Non-positive values fall back to 60. It is
// safe to call while another goroutine is blocked in Wait.
func (t *Throttle) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	t.mu.Lock()
	t.step = time.Second / time.Duration(tps)
	t.mu.Unlock()
}

// Step returns the current tick interval.
func (t *Throttle) Step() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step
}

// Wait blocks until the next tick is due or ctx is done. The first call
// returns immediately.
func (t *Throttle) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	now := time.Now()
	due := t.next
	if due.Before(now) {
		due = now
	}
	t.next = due.Add(t.step)
	t.mu.Unlock()

	delay := due.Sub(now)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
