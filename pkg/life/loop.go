package life

import "lifeloop/pkg/core"

// Observer receives each generation in order and reports whether the loop
// should continue. Returning false stops the loop after that generation.
type Observer func(g *Grid) bool

// Run seeds generation zero from size and init, then delivers it and every
// subsequent generation to observe until observe returns false. The observer
// is always called at least once and runs on the caller's goroutine. Run does
// not cap the number of generations.
func Run(size core.Size, init core.Initializer, observe Observer) {
	run(New(size, init), Advance, observe)
}

func run(g *Grid, advance func(*Grid) *Grid, observe Observer) {
	for observe(g) {
		g = advance(g)
	}
}
