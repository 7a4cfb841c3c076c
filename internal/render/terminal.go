package render

import (
	"bufio"
	"fmt"
	"io"

	"lifeloop/pkg/core"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearHome = "\x1b[H\x1b[2J"
)

// Terminal renders grids as text frames.
type Terminal struct {
	w     *bufio.Writer
	Clear bool
}

// NewTerminal returns a renderer writing to w. When clear is set each frame
// starts by clearing the screen.
func NewTerminal(w io.Writer, clear bool) *Terminal {
	return &Terminal{w: bufio.NewWriter(w), Clear: clear}
}

// Display writes one frame for g followed by the status line.
func (t *Terminal) Display(g core.Grid, status string) error {
	if t.Clear {
		t.w.WriteString(ansiClearHome)
	}
	size := g.Size()
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			if g.HasCellAt(r, c) {
				t.w.WriteString(gridPosBlock)
			} else {
				t.w.WriteString(gridPosEmpty)
			}
		}
		t.w.WriteByte('\n')
	}
	if status != "" {
		fmt.Fprintln(t.w, status)
	}
	return t.w.Flush()
}
