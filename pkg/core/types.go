package core

// Size describes the dimensions of a grid. Valid coordinates lie in
// [0,Height) x [0,Width).
type Size struct {
	Height int
	Width  int
}

// Contains reports whether (row, col) lies inside the grid bounds.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.Height && col >= 0 && col < s.Width
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	if s.Height <= 0 || s.Width <= 0 {
		return 0
	}
	return s.Height * s.Width
}

// Coord identifies a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Grid is the read-only view of a generation handed to renderers and other
// consumers.
type Grid interface {
	Size() Size
	HasCellAt(row, col int) bool
}

// Initializer decides whether the cell at (row, col) starts alive.
type Initializer func(row, col int) bool
