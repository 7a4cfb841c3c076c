package life

// Rule applies Conway's birth/survival rule: exactly three neighbors means
// alive, exactly two keeps the current state, anything else means dead.
func Rule(neighbors int, alive bool) bool {
	switch neighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}

// Neighbors counts the live cells in the Moore neighborhood of (row, col).
// The lower bound of the scan is clamped at zero; anything past the upper
// edge is answered by HasCellAt as dead.
func Neighbors(g *Grid, row, col int) int {
	n := 0
	for r := max(row-1, 0); r <= row+1; r++ {
		for c := max(col-1, 0); c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if g.HasCellAt(r, c) {
				n++
			}
		}
	}
	return n
}

// Advance computes the next generation. Every cell is decided from g alone,
// so the result never observes partially updated state.
func Advance(g *Grid) *Grid {
	return New(g.Size(), func(row, col int) bool {
		return Rule(Neighbors(g, row, col), g.HasCellAt(row, col))
	})
}
