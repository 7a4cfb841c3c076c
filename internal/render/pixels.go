package render

import (
	"image/color"

	"lifeloop/pkg/core"
)

// FillRGBA rasterises g into buf with one pixel per cell in row-major order.
// buf must hold at least 4*width*height bytes; extra bytes are left untouched.
func FillRGBA(buf []byte, g core.Grid, on, off color.Color) {
	size := g.Size()
	if len(buf) < 4*size.Area() {
		return
	}
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			base := (r*size.Width + c) * 4
			if g.HasCellAt(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// Scale returns the per-axis factors that stretch a grid of the given size
// over a surface of surfaceW x surfaceH pixels.
func Scale(surfaceW, surfaceH int, size core.Size) (sx, sy float64) {
	if size.Width > 0 {
		sx = float64(surfaceW) / float64(size.Width)
	}
	if size.Height > 0 {
		sy = float64(surfaceH) / float64(size.Height)
	}
	return sx, sy
}
