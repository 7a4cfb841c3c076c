// Package life implements Conway's Game of Life on a bounded, non-wrapping
// grid together with the loop that streams generations to an observer.
package life

import (
	"strings"

	"lifeloop/pkg/core"
)

// Grid is an immutable generation snapshot. It has no mutators, so a *Grid
// can be shared with any number of readers once constructed.
type Grid struct {
	size  core.Size
	alive map[core.Coord]struct{}
}

// New builds a grid by evaluating init exactly once per in-range coordinate,
// row by row. A nil initializer yields an empty grid.
func New(size core.Size, init core.Initializer) *Grid {
	size.Height = max(size.Height, 0)
	size.Width = max(size.Width, 0)
	g := &Grid{size: size, alive: make(map[core.Coord]struct{})}
	if init == nil {
		return g
	}
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			if init(r, c) {
				g.alive[core.Coord{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	return g
}

// FromRows builds a grid from a row-major boolean matrix. The width is taken
// from the first row; shorter rows are padded with dead cells.
func FromRows(rows [][]bool) *Grid {
	size := core.Size{Height: len(rows)}
	if len(rows) > 0 {
		size.Width = len(rows[0])
	}
	return New(size, func(r, c int) bool {
		return c < len(rows[r]) && rows[r][c]
	})
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// HasCellAt reports whether the cell at (row, col) is alive. Coordinates
// outside the grid are always dead.
func (g *Grid) HasCellAt(row, col int) bool {
	if !g.size.Contains(row, col) {
		return false
	}
	_, ok := g.alive[core.Coord{Row: row, Col: col}]
	return ok
}

// Population returns the number of live cells.
func (g *Grid) Population() int { return len(g.alive) }

// Rows returns the grid as a freshly allocated row-major matrix.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.size.Height)
	for r := range rows {
		rows[r] = make([]bool, g.size.Width)
		for c := range rows[r] {
			rows[r][c] = g.HasCellAt(r, c)
		}
	}
	return rows
}

// Equal reports whether both grids have the same size and live cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil || g.size != other.size || len(g.alive) != len(other.alive) {
		return false
	}
	for coord := range g.alive {
		if _, ok := other.alive[coord]; !ok {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size.Height * (g.size.Width + 1))
	for r := 0; r < g.size.Height; r++ {
		for c := 0; c < g.size.Width; c++ {
			if g.HasCellAt(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ core.Grid = (*Grid)(nil)
