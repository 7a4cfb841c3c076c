package app

import (
	"fmt"
	"time"

	"lifeloop/pkg/life"
)

// Stats tracks simple performance and population figures for the delivered
// generations.
type Stats struct {
	Generation           int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time

	// Extinct is set once a generation has no live cells.
	Extinct bool
	// Still is set when a generation equals its predecessor.
	Still bool

	prev     *life.Grid
	prevGen  int
	lastSeen time.Time
}

// NewStats returns a tracker whose clock starts now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records a delivered generation. Consumers that skip generations
// pass the real generation number so rates and status stay accurate.
func (s *Stats) Observe(g *life.Grid, generation int) {
	s.observeAt(g, generation, time.Now())
}

func (s *Stats) observeAt(g *life.Grid, generation int, now time.Time) {
	if s.prev != nil {
		if d := now.Sub(s.lastSeen); d > 0 && generation > s.prevGen {
			s.GenerationsPerSecond = float64(generation-s.prevGen) / d.Seconds()
		}
	}
	s.Generation = generation
	s.lastSeen = now

	s.Population = g.Population()
	// Simple moving average for population
	if s.prev == nil {
		s.AveragePopulation = float64(s.Population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(s.Population)*0.1
	}
	s.Extinct = s.Population == 0
	// Only an immediate predecessor can prove a still life.
	s.Still = s.prev != nil && generation == s.prevGen+1 && s.prev.Equal(g)
	s.prev = g
	s.prevGen = generation
}

// Density returns the live share of the latest generation as a percentage.
func (s *Stats) Density() float64 {
	if s.prev == nil {
		return 0
	}
	area := s.prev.Size().Area()
	if area == 0 {
		return 0
	}
	return float64(s.Population) / float64(area) * 100
}

// Status summarises the latest generation in one word.
func (s *Stats) Status() string {
	switch {
	case s.Extinct:
		return "Extinct"
	case s.Still:
		return "Still"
	default:
		return "Active"
	}
}

// Line formats the latest figures as a single status line.
func (s *Stats) Line() string {
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		s.Generation, s.Population, s.Density(), s.Status(), s.GenerationsPerSecond)
}
