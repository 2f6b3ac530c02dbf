package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawStatBox draws short summary lines onto a rendered raster at the given
// pixel position, inside a translucent dark box so the text stays readable
// on both themes. The raster is mutated in place.
func DrawStatBox(img *image.RGBA, lines []string, x, y int) {
	if img == nil || len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil() + 2
	ascent := face.Metrics().Ascent.Ceil()
	pad := 6

	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: img, Src: textCol, Face: face}
	maxW := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > maxW {
			maxW = w
		}
	}

	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-pad, x+maxW+pad, y+lineH*len(lines)+pad)
	draw.Draw(img, rect, bg, image.Point{}, draw.Over)

	for i, l := range lines {
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + ascent + i*lineH)}
		dr.DrawString(l)
	}
}
