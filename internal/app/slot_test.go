package app

import (
	"sync"
	"testing"

	"lifeloop/pkg/core"
	"lifeloop/pkg/life"
)

func TestSlotEmpty(t *testing.T) {
	var s Slot
	if _, _, ok := s.Load(); ok {
		t.Fatal("empty slot reported a snapshot")
	}
}

func TestSlotKeepsLatest(t *testing.T) {
	var s Slot
	size := core.Size{Height: 2, Width: 2}
	a := life.New(size, nil)
	b := life.New(size, func(int, int) bool { return true })
	s.Store(a, 0)
	s.Store(b, 1)
	g, gen, ok := s.Load()
	if !ok || g != b || gen != 1 {
		t.Fatalf("Load() = (%p, %d, %v), want (%p, 1, true)", g, gen, ok, b)
	}
}

func TestSlotConcurrentHandoff(t *testing.T) {
	var s Slot
	const generations = 200

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		gen := 0
		life.Run(core.Size{Height: 8, Width: 8}, core.RandomInitializer(3, 0.5), func(g *life.Grid) bool {
			s.Store(g, gen)
			gen++
			return gen < generations
		})
	}()

	last := -1
	for i := 0; i < 1000; i++ {
		_, gen, ok := s.Load()
		if !ok {
			continue
		}
		if gen < last {
			t.Fatalf("generation went backwards from %d to %d", last, gen)
		}
		last = gen
	}
	wg.Wait()

	if _, gen, _ := s.Load(); gen != generations-1 {
		t.Fatalf("final generation = %d, want %d", gen, generations-1)
	}
}
