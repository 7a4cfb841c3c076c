//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudHeight  = 18
)

// HUD draws a one-line status banner across the top of the view.
type HUD struct {
	pixel *ebiten.Image
	bg    color.Color
	fg    color.Color
}

// NewHUD constructs a HUD with a translucent background.
func NewHUD() *HUD {
	h := &HUD{
		bg: color.RGBA{A: 0xb0},
		fg: color.RGBA{R: 0x7f, G: 0xff, B: 0x7f, A: 0xff},
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw renders line over the top of dst. Empty lines draw nothing.
func (h *HUD) Draw(dst *ebiten.Image, line string) {
	if h == nil || line == "" {
		return
	}
	w := dst.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), hudHeight)
	op.ColorScale.ScaleWithColor(h.bg)
	dst.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	text.Draw(dst, line, face, hudPadding, hudPadding+face.Ascent, h.fg)
}
