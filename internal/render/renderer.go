//go:build ebiten

package render

import (
	"image/color"

	"lifeloop/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image in sync with the latest grid.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Area())}
	gp.img = ebiten.NewImage(size.Width, size.Height)
	return gp
}

// Blit uploads g into the painter image and draws it stretched over dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, on, off color.Color) {
	if g.Size() != gp.size {
		return
	}
	FillRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	b := dst.Bounds()
	sx, sy := Scale(b.Dx(), b.Dy(), gp.size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	dst.DrawImage(gp.img, op)
}
