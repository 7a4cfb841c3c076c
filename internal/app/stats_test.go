package app

import (
	"math"
	"testing"
	"time"

	"lifeloop/pkg/core"
	"lifeloop/pkg/life"
)

func TestStatsTracksGenerations(t *testing.T) {
	size := core.Size{Height: 4, Width: 4}
	block := life.New(size, func(r, c int) bool { return r < 2 && c < 2 })

	s := NewStats()
	t0 := time.Unix(100, 0)
	s.observeAt(block, 0, t0)
	if s.Generation != 0 || s.Population != 4 || s.AveragePopulation != 4 {
		t.Fatalf("after first observe: %+v", s)
	}
	if s.Still || s.Extinct {
		t.Fatalf("first generation flagged as %s", s.Status())
	}
	if got := s.Density(); got != 25 {
		t.Fatalf("Density() = %v, want 25", got)
	}

	s.observeAt(life.Advance(block), 1, t0.Add(100*time.Millisecond))
	if s.Generation != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.Status() != "Still" {
		t.Fatalf("status = %q, want Still", s.Status())
	}

	empty := life.New(size, nil)
	s.observeAt(empty, 2, t0.Add(200*time.Millisecond))
	if s.Status() != "Extinct" {
		t.Fatalf("status = %q, want Extinct", s.Status())
	}
	if want := 4*0.9 + 0*0.1; math.Abs(s.AveragePopulation-want) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want %v", s.AveragePopulation, want)
	}
}

func TestStatsLine(t *testing.T) {
	s := NewStats()
	s.observeAt(life.New(core.Size{Height: 2, Width: 5}, func(r, c int) bool { return r == 0 }), 0, time.Unix(0, 0))
	want := "Gen: 0 | Living: 5 | Density: 50.0% | Status: Active | 0.0 gen/sec"
	if got := s.Line(); got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

func TestStatsWithSkippedGenerations(t *testing.T) {
	blinker := life.New(core.Size{Height: 5, Width: 5}, func(r, c int) bool {
		return r == 2 && c >= 1 && c <= 3
	})
	// Generations 0, 2 and 4 of a blinker all look identical.
	s := NewStats()
	t0 := time.Unix(100, 0)
	s.observeAt(blinker, 0, t0)
	s.observeAt(life.Advance(life.Advance(blinker)), 2, t0.Add(20*time.Millisecond))
	s.observeAt(blinker, 4, t0.Add(40*time.Millisecond))

	if s.Generation != 4 {
		t.Fatalf("generation = %d, want 4", s.Generation)
	}
	if s.Status() != "Active" {
		t.Fatalf("status = %q, want Active for an oscillator seen every other generation", s.Status())
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 100", s.GenerationsPerSecond)
	}
	want := "Gen: 4 | Living: 3 | Density: 12.0% | Status: Active | 100.0 gen/sec"
	if got := s.Line(); got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}
