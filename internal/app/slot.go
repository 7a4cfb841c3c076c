package app

import (
	"sync"

	"lifeloop/pkg/life"
)

// Slot hands the most recent generation from the loop goroutine to a
// consumer. Store overwrites, so a slow consumer skips generations rather than
// blocking the producer.
type Slot struct {
	mu         sync.RWMutex
	grid       *life.Grid
	generation int
}

// Store publishes g as the latest snapshot.
func (s *Slot) Store(g *life.Grid, generation int) {
	s.mu.Lock()
	s.grid = g
	s.generation = generation
	s.mu.Unlock()
}

// Load returns the latest snapshot. ok is false until the first Store.
func (s *Slot) Load() (g *life.Grid, generation int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid, s.generation, s.grid != nil
}
