package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestThrottleDefaultsNonPositiveTPS(t *testing.T) {
	th := NewThrottle(0)
	if got, want := th.Step(), time.Second/60; got != want {
		t.Fatalf("step = %v, want %v", got, want)
	}
	th.SetTPS(-5)
	if got, want := th.Step(), time.Second/60; got != want {
		t.Fatalf("step after SetTPS(-5) = %v, want %v", got, want)
	}
	th.SetTPS(200)
	if got, want := th.Step(), 5*time.Millisecond; got != want {
		t.Fatalf("step after SetTPS(200) = %v, want %v", got, want)
	}
}

func TestThrottleSpacesTicks(t *testing.T) {
	th := NewThrottle(100)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 4; i++ {
		if err := th.Wait(ctx); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	// The first tick is immediate, the remaining three are 10ms apart.
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("four ticks at 100 TPS took %v", elapsed)
	}
}

func TestThrottleWaitCancelled(t *testing.T) {
	th := NewThrottle(1)
	ctx, cancel := context.WithCancel(context.Background())
	if err := th.Wait(ctx); err != nil {
		t.Fatalf("first Wait: %v", err)
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if err := th.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait after cancel = %v, want context.Canceled", err)
	}
	if err := th.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait on done context = %v, want context.Canceled", err)
	}
}
